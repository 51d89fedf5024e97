package storage

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/gostonefire/dictmap/internal/model"
	"github.com/gostonefire/dictmap/internal/utils"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Counters - Operation counters shared by all dictionary implementations.
// Counters are monotonic and only reset by Reset (which every Clear calls).
type Counters struct {
	comparisons uint64
	rotations   uint64
	collisions  uint64
}

// Compare - Records n key comparisons
func (C *Counters) Compare(n uint64) {
	C.comparisons += n
}

// Rotate - Records one tree rotation
func (C *Counters) Rotate() {
	C.rotations++
}

// Collide - Records one hash collision
func (C *Counters) Collide() {
	C.collisions++
}

// Comparisons - Returns the number of key comparisons recorded
func (C *Counters) Comparisons() uint64 {
	return C.comparisons
}

// Rotations - Returns the number of rotations recorded
func (C *Counters) Rotations() uint64 {
	return C.rotations
}

// Collisions - Returns the number of collisions recorded
func (C *Counters) Collisions() uint64 {
	return C.collisions
}

// Reset - Sets all counters to zero
func (C *Counters) Reset() {
	*C = Counters{}
}

// Branch - The capability set a binary search tree node exposes to the shared search and traversal.
// B is the node handle type itself (typically a pointer), its zero value marks "no node".
type Branch[K constraints.Ordered, V any, B any] interface {
	comparable
	Left() B
	Right() B
	Key() K
	ValueRef() *V
}

// Search - Descends from node looking for key, counting one comparison per visited node.
// Keys are ordered by cmp.Compare, so NaN sorts before every other float and matches only NaN.
// It returns the matching node and true, or the zero handle and false.
func Search[K constraints.Ordered, V any, B Branch[K, V, B]](node B, key K, counters *Counters) (match B, found bool) {
	var none B
	for node != none {
		counters.Compare(1)
		switch c := cmp.Compare(key, node.Key()); {
		case c < 0:
			node = node.Left()
		case c > 0:
			node = node.Right()
		default:
			return node, true
		}
	}

	return none, false
}

// Walk - Visits the subtree rooted at node in ascending key order until fn returns false.
// It returns false if the walk was stopped by fn.
func Walk[K constraints.Ordered, V any, B Branch[K, V, B]](node B, fn func(key K, value V) bool) bool {
	var none B
	if node == none {
		return true
	}

	if !Walk[K, V](node.Left(), fn) {
		return false
	}
	if !fn(node.Key(), *node.ValueRef()) {
		return false
	}

	return Walk[K, V](node.Right(), fn)
}

// Height - Returns the number of nodes on the longest path from node down to a leaf
func Height[K constraints.Ordered, V any, B Branch[K, V, B]](node B) int {
	var none B
	if node == none {
		return 0
	}

	return 1 + max(Height[K, V](node.Left()), Height[K, V](node.Right()))
}

// WritePairs - Writes pairs to w, one "key | value" line per pair, with keys left aligned and padded
// to the widest key measured in terminal columns.
func WritePairs[K any, V any](w io.Writer, pairs []model.Pair[K, V]) (err error) {
	var keyWidth int
	for _, p := range pairs {
		keyWidth = max(keyWidth, utils.DisplayWidth(p.Key))
	}

	for _, p := range pairs {
		key := fmt.Sprint(p.Key)
		padding := keyWidth - utils.DisplayWidth(p.Key)
		_, err = fmt.Fprintf(w, "%s%s | %v\n", key, strings.Repeat(" ", padding), p.Value)
		if err != nil {
			err = fmt.Errorf("error while writing pair: %w", err)
			return
		}
	}

	return
}

// CollectPairs - Returns all pairs visited by walk in the order they are visited
func CollectPairs[K any, V any](size int64, walk func(fn func(key K, value V) bool)) (pairs []model.Pair[K, V]) {
	pairs = make([]model.Pair[K, V], 0, size)
	walk(func(key K, value V) bool {
		pairs = append(pairs, model.Pair[K, V]{Key: key, Value: value})
		return true
	})

	return
}

// SortPairs - Sorts pairs in ascending cmp.Compare key order, used by the hash tables that store entries unordered
func SortPairs[K constraints.Ordered, V any](pairs []model.Pair[K, V]) {
	slices.SortFunc(pairs, func(a, b model.Pair[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
}
