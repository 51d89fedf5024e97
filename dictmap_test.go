package dictmap

import (
	"bytes"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/gostonefire/dictmap/dtype"
	"github.com/gostonefire/dictmap/internal/storage/avl"
	"github.com/gostonefire/dictmap/internal/storage/openaddressing"
	"github.com/gostonefire/dictmap/internal/storage/redblack"
	"github.com/gostonefire/dictmap/internal/storage/separatechaining"
	"github.com/hashicorp/go-uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTypes = []int{dtype.AVL, dtype.RedBlack, dtype.SeparateChaining, dtype.OpenAddressing}

func randomKeys(t *testing.T, n int) []string {
	keys := make([]string, n)
	for i := range keys {
		key, err := uuid.GenerateUUID()
		require.NoError(t, err, "generate uuid")
		keys[i] = key
	}

	return keys
}

func newDict(t *testing.T, dictType int) Dictionary[string, int] {
	dict, err := NewDictionary[string, int](DictConf[string]{Type: dictType})
	require.NoError(t, err, "create dictionary")

	return dict
}

func TestNewDictionary(t *testing.T) {
	t.Run("creates every type", func(t *testing.T) {
		// Execute
		avlDict, errAVL := NewDictionary[string, int](DictConf[string]{Type: dtype.AVL})
		rbDict, errRB := NewDictionary[string, int](DictConf[string]{Type: dtype.RedBlack})
		scDict, errSC := NewDictionary[string, int](DictConf[string]{Type: dtype.SeparateChaining, InitialSize: 5})
		oaDict, errOA := NewDictionary[string, int](DictConf[string]{Type: dtype.OpenAddressing, InitialSize: 7})

		// Check
		assert.NoError(t, errors.Join(errAVL, errRB, errSC, errOA), "all created")
		assert.IsType(t, &avl.Tree[string, int]{}, avlDict, "avl tree")
		assert.IsType(t, &redblack.Tree[string, int]{}, rbDict, "red-black tree")
		assert.IsType(t, &separatechaining.SCTable[string, int]{}, scDict, "separate chaining table")
		assert.IsType(t, &openaddressing.OATable[string, int]{}, oaDict, "open addressing table")
		assert.Equal(t, int64(7), scDict.Capacity(), "prime capacity")
		assert.Equal(t, int64(8), oaDict.Capacity(), "power of two capacity")
		assert.Zero(t, avlDict.Capacity(), "empty tree has no nodes")
	})

	t.Run("fails on unknown type", func(t *testing.T) {
		// Execute
		dict, err := NewDictionary[string, int](DictConf[string]{Type: 42})

		// Check
		assert.True(t, errors.Is(err, dtype.TypeNotFound{}), "error is of type TypeNotFound")
		assert.Nil(t, dict, "no dictionary")
	})

	t.Run("fails on invalid table configuration", func(t *testing.T) {
		// Execute
		dict, err := NewDictionary[string, int](DictConf[string]{Type: dtype.OpenAddressing, MaxLoadFactor: 2})

		// Check
		assert.Error(t, err, "load factor above 1 rejected")
		assert.Nil(t, dict, "no dictionary")
	})
}

func TestNewDictionaryFromName(t *testing.T) {
	t.Run("accepts configuration names", func(t *testing.T) {
		for name, expected := range map[string]int{
			"avl_dictionary":      dtype.AVL,
			"redblack_dictionary": dtype.RedBlack,
			"Chained_Dictionary":  dtype.SeparateChaining,
			"open":                dtype.OpenAddressing,
		} {
			// Execute
			dict, err := NewDictionaryFromName[string, int](name, DictConf[string]{})

			// Check
			assert.NoErrorf(t, err, "name %s accepted", name)
			assert.Equalf(t, expected, dict.Metrics().Type, "name %s gives the right type", name)
		}
	})

	t.Run("fails on unknown name", func(t *testing.T) {
		// Execute
		_, err := NewDictionaryFromName[string, int]("skiplist_dictionary", DictConf[string]{})

		// Check
		assert.True(t, errors.Is(err, dtype.TypeNotFound{}), "error is of type TypeNotFound")
	})
}

func TestDictionary_Contract(t *testing.T) {
	for _, dictType := range allTypes {
		t.Run(dtype.Label(dictType), func(t *testing.T) {
			// Prepare
			dict := newDict(t, dictType)
			keys := randomKeys(t, 500)

			// Execute and Check round trip
			for i, k := range keys {
				require.NoError(t, dict.Insert(k, i), "insert")
			}
			assert.Equal(t, int64(len(keys)), dict.Len(), "all inserted")
			for i, k := range keys {
				value, found := dict.Find(k)
				assert.True(t, found, "key found")
				assert.Equal(t, i, value, "value round trips")
			}

			// Duplicate rejection
			err := dict.Insert(keys[0], -1)
			assert.True(t, errors.Is(err, dtype.KeyAlreadyExists{}), "error is of type KeyAlreadyExists")
			value, _ := dict.Find(keys[0])
			assert.Equal(t, 0, value, "first value intact")

			// Update and At
			assert.NoError(t, dict.Update(keys[1], 1000), "update existing")
			value, err = dict.At(keys[1])
			assert.NoError(t, err, "at existing")
			assert.Equal(t, 1000, value, "updated value")
			assert.True(t, errors.Is(dict.Update("missing", 1), dtype.KeyNotFound{}), "update missing")
			_, err = dict.At("missing")
			assert.True(t, errors.Is(err, dtype.KeyNotFound{}), "at missing")

			// Remove half, removing twice is idempotent
			for _, k := range keys[:250] {
				dict.Remove(k)
			}
			comparisons := dict.Comparisons()
			metrics := dict.Metrics()
			for _, k := range keys[:250] {
				dict.Remove(k)
			}
			assert.Equal(t, comparisons, dict.Comparisons(), "absent removes count nothing")
			assert.Equal(t, metrics, dict.Metrics(), "metrics unchanged by absent removes")
			assert.Equal(t, int64(250), dict.Len(), "half left")
			for _, k := range keys[:250] {
				_, found := dict.Find(k)
				assert.False(t, found, "removed key absent")
			}

			// Ordered traversal
			var walked []string
			dict.Walk(func(key string, _ int) bool {
				walked = append(walked, key)
				return true
			})
			assert.Len(t, walked, 250, "walk visits every entry")
			assert.True(t, sort.StringsAreSorted(walked), "walk in ascending order")

			var buf bytes.Buffer
			assert.NoError(t, dict.InOrder(&buf), "in order")
			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			assert.Len(t, lines, 250, "one line per entry")
			assert.True(t, strings.HasPrefix(lines[0], walked[0]+" | "), "first line holds the smallest key")

			// Clear
			dict.Clear()
			assert.Zero(t, dict.Len(), "empty after clear")
			assert.Zero(t, dict.Comparisons(), "comparisons reset")
			assert.Zero(t, dict.Metrics().SpecificValue, "specific metric reset")
		})
	}
}

func TestDictionary_Upsert(t *testing.T) {
	for _, dictType := range allTypes {
		t.Run(dtype.Label(dictType), func(t *testing.T) {
			// Prepare
			dict := newDict(t, dictType)
			words := strings.Fields("o rato roeu a roupa do rei de roma e a rainha roeu o resto")

			// Execute
			for _, w := range words {
				*dict.Upsert(w)++
			}

			// Check
			counts := map[string]int{"o": 2, "roeu": 2, "a": 2, "rato": 1, "rainha": 1}
			for w, expected := range counts {
				value, err := dict.At(w)
				assert.NoError(t, err, "word counted")
				assert.Equalf(t, expected, value, "count of %q", w)
			}
			assert.Equal(t, int64(12), dict.Len(), "distinct words")
		})
	}
}

func TestDictionary_Metrics(t *testing.T) {
	t.Run("names the structure specific metric", func(t *testing.T) {
		for _, dictType := range allTypes {
			// Prepare
			dict := newDict(t, dictType)
			for _, k := range randomKeys(t, 50) {
				require.NoError(t, dict.Insert(k, 0), "insert")
			}

			// Execute
			m := dict.Metrics()

			// Check
			assert.Equal(t, dictType, m.Type, "type")
			assert.Equal(t, dtype.Label(dictType), m.Label, "label")
			assert.Equal(t, dict.Comparisons(), m.Comparisons, "comparisons")
			if dtype.IsTree(dictType) {
				assert.Equal(t, dtype.RotationsMetric, m.SpecificName, "trees report rotations")
				assert.NotZero(t, m.SpecificValue, "50 random keys rotate")
			} else {
				assert.Equal(t, dtype.CollisionsMetric, m.SpecificName, "hash tables report collisions")
			}
		}
	})
}
