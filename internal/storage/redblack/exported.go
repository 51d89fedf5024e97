package redblack

import (
	"cmp"
	"io"

	"github.com/gostonefire/dictmap/dtype"
	"github.com/gostonefire/dictmap/internal/model"
	"github.com/gostonefire/dictmap/internal/storage"
	"golang.org/x/exp/constraints"
)

// Tree - Represents a color balanced binary search tree (red-black tree).
// Missing children and the parent of the root are nil and count as black leaves. The tree keeps three
// invariants: the root is black, no red node has a red child, and every path from a node down to a missing
// child passes the same number of black nodes.
// A Tree is not safe for concurrent use.
type Tree[K constraints.Ordered, V any] struct {
	root     *node[K, V]
	size     int64
	counters storage.Counters
}

// NewTree - Returns a pointer to a new empty red-black tree
func NewTree[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Insert - Adds a new entry to the tree.
//   - key is the key of the entry, it must not already be in the tree
//   - value is the value to store with the key
//
// It returns:
//   - err is of type dtype.KeyAlreadyExists if the key is already in the tree, the tree is then left unchanged
func (T *Tree[K, V]) Insert(key K, value V) (err error) {
	parent, found := T.descend(key)
	if found {
		err = dtype.KeyAlreadyExists{}
		return
	}

	n := T.attach(parent, key)
	n.value = value

	return
}

// Find - Returns the value stored with key.
// The found flag is false if the key is not in the tree.
func (T *Tree[K, V]) Find(key K) (value V, found bool) {
	n, found := storage.Search[K, V](T.root, key, &T.counters)
	if found {
		value = n.value
	}

	return
}

// Update - Replaces the value of an existing entry.
// It returns an error of type dtype.KeyNotFound if the key is not in the tree.
func (T *Tree[K, V]) Update(key K, value V) (err error) {
	n, found := storage.Search[K, V](T.root, key, &T.counters)
	if !found {
		err = dtype.KeyNotFound{}
		return
	}

	n.value = value

	return
}

// Remove - Removes the entry with the given key, removing an absent key is a no-op
func (T *Tree[K, V]) Remove(key K) {
	n := T.root
	for n != nil {
		c := cmp.Compare(key, n.key)
		if c == 0 {
			break
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}

	if n != nil {
		T.delete(n)
	}
}

// Clear - Releases all entries and resets all counters
func (T *Tree[K, V]) Clear() {
	T.root = nil
	T.size = 0
	T.counters.Reset()
}

// Upsert - Returns a pointer to the value stored with key, inserting a zero value first if the key is absent.
// The pointer is valid until the next call that modifies the tree.
func (T *Tree[K, V]) Upsert(key K) (value *V) {
	parent, found := T.descend(key)
	if found {
		return &parent.value
	}

	return &T.attach(parent, key).value
}

// At - Returns the value stored with key, or an error of type dtype.KeyNotFound if the key is not in the tree
func (T *Tree[K, V]) At(key K) (value V, err error) {
	value, found := T.Find(key)
	if !found {
		err = dtype.KeyNotFound{}
	}

	return
}

// Walk - Visits all entries in ascending key order until fn returns false
func (T *Tree[K, V]) Walk(fn func(key K, value V) bool) {
	storage.Walk[K, V](T.root, fn)
}

// InOrder - Writes all entries in ascending key order to w, one "key | value" line per entry
func (T *Tree[K, V]) InOrder(w io.Writer) (err error) {
	return storage.WritePairs(w, storage.CollectPairs(T.size, T.Walk))
}

// Comparisons - Returns the number of key comparisons made since creation or last Clear
func (T *Tree[K, V]) Comparisons() uint64 {
	return T.counters.Comparisons()
}

// Rotations - Returns the number of rotations made since creation or last Clear
func (T *Tree[K, V]) Rotations() uint64 {
	return T.counters.Rotations()
}

// Capacity - Returns the number of allocated nodes, which for a tree is the number of entries
func (T *Tree[K, V]) Capacity() int64 {
	return T.size
}

// Len - Returns the number of entries in the tree
func (T *Tree[K, V]) Len() int64 {
	return T.size
}

// Height - Returns the height of the tree, an empty tree has height 0
func (T *Tree[K, V]) Height() int {
	return storage.Height[K, V](T.root)
}

// Metrics - Returns a snapshot of the tree counters for reporting
func (T *Tree[K, V]) Metrics() model.Metrics {
	return model.Metrics{
		Type:          dtype.RedBlack,
		Label:         dtype.Label(dtype.RedBlack),
		Comparisons:   T.counters.Comparisons(),
		SpecificName:  dtype.RotationsMetric,
		SpecificValue: T.counters.Rotations(),
	}
}
