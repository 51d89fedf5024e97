package storage

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gostonefire/dictmap/internal/model"
	"github.com/stretchr/testify/assert"
)

type testNode struct {
	key         int
	value       string
	left, right *testNode
}

func (n *testNode) Left() *testNode { return n.left }

func (n *testNode) Right() *testNode { return n.right }

func (n *testNode) Key() int { return n.key }

func (n *testNode) ValueRef() *string { return &n.value }

// buildTestTree - Returns the tree 4(2(1,3),6(5,7))
func buildTestTree() *testNode {
	leaf := func(k int, v string) *testNode { return &testNode{key: k, value: v} }
	return &testNode{
		key:   4,
		value: "d",
		left:  &testNode{key: 2, value: "b", left: leaf(1, "a"), right: leaf(3, "c")},
		right: &testNode{key: 6, value: "f", left: leaf(5, "e"), right: leaf(7, "g")},
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestCounters(t *testing.T) {
	t.Run("counts and resets", func(t *testing.T) {
		// Prepare
		var c Counters

		// Execute
		c.Compare(3)
		c.Compare(2)
		c.Rotate()
		c.Collide()
		c.Collide()

		// Check
		assert.Equal(t, uint64(5), c.Comparisons(), "comparisons counted")
		assert.Equal(t, uint64(1), c.Rotations(), "rotations counted")
		assert.Equal(t, uint64(2), c.Collisions(), "collisions counted")

		c.Reset()
		assert.Zero(t, c.Comparisons(), "comparisons reset")
		assert.Zero(t, c.Rotations(), "rotations reset")
		assert.Zero(t, c.Collisions(), "collisions reset")
	})
}

func TestSearch(t *testing.T) {
	t.Run("finds existing keys counting one comparison per visited node", func(t *testing.T) {
		// Prepare
		root := buildTestTree()
		var c Counters

		// Execute
		node, found := Search[int, string](root, 5, &c)

		// Check
		assert.True(t, found, "key found")
		assert.Equal(t, "e", node.value, "correct node")
		assert.Equal(t, uint64(3), c.Comparisons(), "root, 6 and 5 visited")
	})

	t.Run("misses absent keys", func(t *testing.T) {
		// Prepare
		root := buildTestTree()
		var c Counters

		// Execute
		node, found := Search[int, string](root, 8, &c)

		// Check
		assert.False(t, found, "key not found")
		assert.Nil(t, node, "no node returned")
		assert.Equal(t, uint64(3), c.Comparisons(), "full path visited")
	})

	t.Run("empty tree", func(t *testing.T) {
		var c Counters
		_, found := Search[int, string]((*testNode)(nil), 1, &c)
		assert.False(t, found, "nothing in empty tree")
		assert.Zero(t, c.Comparisons(), "no comparisons in empty tree")
	})
}

func TestWalk(t *testing.T) {
	t.Run("visits in ascending order", func(t *testing.T) {
		// Prepare
		var keys []int

		// Execute
		completed := Walk[int, string](buildTestTree(), func(key int, value string) bool {
			keys = append(keys, key)
			return true
		})

		// Check
		assert.True(t, completed, "walk completed")
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keys, "ascending order")
	})

	t.Run("stops when asked", func(t *testing.T) {
		// Prepare
		var keys []int

		// Execute
		completed := Walk[int, string](buildTestTree(), func(key int, value string) bool {
			keys = append(keys, key)
			return key < 3
		})

		// Check
		assert.False(t, completed, "walk stopped")
		assert.Equal(t, []int{1, 2, 3}, keys, "stopped after 3")
	})
}

func TestHeight(t *testing.T) {
	assert.Equal(t, 3, Height[int, string](buildTestTree()), "perfect tree of 7 has height 3")
	assert.Equal(t, 0, Height[int, string]((*testNode)(nil)), "empty tree has height 0")
}

func TestWritePairs(t *testing.T) {
	t.Run("aligns keys on widest key", func(t *testing.T) {
		// Prepare
		pairs := []model.Pair[string, int]{
			{Key: "ação", Value: 2},
			{Key: "de", Value: 10},
			{Key: "palavras", Value: 1},
		}
		var buf bytes.Buffer

		// Execute
		err := WritePairs(&buf, pairs)

		// Check
		assert.NoError(t, err, "writes pairs")
		assert.Equal(t, "ação     | 2\nde       | 10\npalavras | 1\n", buf.String(), "aligned output")
	})

	t.Run("aligns wide keys by columns", func(t *testing.T) {
		// Prepare
		pairs := []model.Pair[string, int]{{Key: "東京", Value: 1}, {Key: "rio", Value: 2}}
		var buf bytes.Buffer

		// Execute
		err := WritePairs(&buf, pairs)

		// Check
		assert.NoError(t, err, "writes pairs")
		assert.Equal(t, "東京 | 1\nrio  | 2\n", buf.String(), "aligned output")
	})

	t.Run("writes nothing for no pairs", func(t *testing.T) {
		var buf bytes.Buffer
		err := WritePairs[int, int](&buf, nil)
		assert.NoError(t, err, "no error")
		assert.Empty(t, buf.String(), "no output")
	})

	t.Run("returns writer errors", func(t *testing.T) {
		err := WritePairs(failingWriter{}, []model.Pair[int, int]{{Key: 1, Value: 1}})
		assert.Error(t, err, "error returned")
	})
}

func TestCollectPairs(t *testing.T) {
	t.Run("collects walked pairs", func(t *testing.T) {
		// Execute
		pairs := CollectPairs[int, string](7, func(fn func(key int, value string) bool) {
			Walk[int, string](buildTestTree(), fn)
		})

		// Check
		assert.Len(t, pairs, 7, "all pairs collected")
		assert.Equal(t, model.Pair[int, string]{Key: 1, Value: "a"}, pairs[0], "first pair")
		assert.Equal(t, model.Pair[int, string]{Key: 7, Value: "g"}, pairs[6], "last pair")
	})
}

func TestSortPairs(t *testing.T) {
	t.Run("sorts by key", func(t *testing.T) {
		// Prepare
		pairs := []model.Pair[string, int]{{Key: "pear", Value: 3}, {Key: "apple", Value: 1}, {Key: "fig", Value: 2}}

		// Execute
		SortPairs(pairs)

		// Check
		assert.Equal(t, "apple", pairs[0].Key, "first key")
		assert.Equal(t, "fig", pairs[1].Key, "second key")
		assert.Equal(t, "pear", pairs[2].Key, "third key")
		assert.Equal(t, 3, pairs[2].Value, "value follows key")
	})
}
