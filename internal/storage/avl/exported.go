package avl

import (
	"io"

	"github.com/gostonefire/dictmap/dtype"
	"github.com/gostonefire/dictmap/internal/model"
	"github.com/gostonefire/dictmap/internal/storage"
	"golang.org/x/exp/constraints"
)

// Tree - Represents a height balanced binary search tree (AVL tree).
// For every node the heights of its two subtrees differ by at most one. The balance is restored with
// single or double rotations on the way back up after every structural change.
// A Tree is not safe for concurrent use.
type Tree[K constraints.Ordered, V any] struct {
	root     *node[K, V]
	size     int64
	counters storage.Counters
}

// NewTree - Returns a pointer to a new empty AVL tree
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
	T.root, err = T.insert(T.root, key, value)
	if err == nil {
		T.size++
	}

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
	T.root, err = T.update(T.root, key, value)

	return
}

// Remove - Removes the entry with the given key, removing an absent key is a no-op
func (T *Tree[K, V]) Remove(key K) {
	var removed bool
	T.root, removed = T.remove(T.root, key)
	if removed {
		T.size--
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
	var inserted bool
	T.root, inserted = T.upsert(T.root, key, &value)
	if inserted {
		T.size++
	}

	return
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
	return height(T.root)
}

// Metrics - Returns a snapshot of the tree counters for reporting
func (T *Tree[K, V]) Metrics() model.Metrics {
	return model.Metrics{
		Type:          dtype.AVL,
		Label:         dtype.Label(dtype.AVL),
		Comparisons:   T.counters.Comparisons(),
		SpecificName:  dtype.RotationsMetric,
		SpecificValue: T.counters.Rotations(),
	}
}
