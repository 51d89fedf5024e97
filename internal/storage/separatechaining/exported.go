package separatechaining

import (
	"cmp"
	"fmt"
	"io"
	"math"

	"github.com/gostonefire/dictmap/dtype"
	"github.com/gostonefire/dictmap/hashfunc"
	"github.com/gostonefire/dictmap/internal/hash"
	"github.com/gostonefire/dictmap/internal/model"
	"github.com/gostonefire/dictmap/internal/storage"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Each bucket holds its entries in insertion order, the table grows by rehashing into roughly twice as many
// buckets before an insert would push the load factor above the configured max.
// An SCTable is not safe for concurrent use.
type SCTable[K constraints.Ordered, V any] struct {
	buckets       [][]model.Pair[K, V]
	size          int64
	maxLoadFactor float64
	hashAlgorithm hashfunc.HashAlgorithm[K]
	counters      storage.Counters
}

// NewSCTable - Returns a pointer to a new empty separate chaining hash table.
//   - conf is a model.TableConf struct, zero values select the internal defaults
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is a standard Go type of error, returned for a negative size or a load factor that is not finite
//     or below model.MinMaxLoadFactor
func NewSCTable[K constraints.Ordered, V any](conf model.TableConf[K]) (table *SCTable[K, V], err error) {
	if conf.InitialSize < 0 {
		err = fmt.Errorf("initial size must not be negative, got %d", conf.InitialSize)
		return
	}
	if conf.MaxLoadFactor == 0 {
		conf.MaxLoadFactor = model.DefaultMaxLoadFactor
	}
	if math.IsNaN(conf.MaxLoadFactor) || math.IsInf(conf.MaxLoadFactor, 0) || conf.MaxLoadFactor < model.MinMaxLoadFactor {
		err = fmt.Errorf("max load factor must be finite and at least %v, got %v", model.MinMaxLoadFactor, conf.MaxLoadFactor)
		return
	}
	if conf.InitialSize == 0 {
		conf.InitialSize = model.DefaultInitialSize
	}

	// If no HashAlgorithm was given then use the default internal
	if conf.HashAlgorithm == nil {
		conf.HashAlgorithm = hash.NewSeparateChainingHashAlgorithm[K](conf.InitialSize)
	} else {
		conf.HashAlgorithm.SetTableSize(conf.InitialSize)
	}

	if conf.HashAlgorithm.GetTableSize() < 1 {
		err = fmt.Errorf("hash algorithm reports a table size of %d", conf.HashAlgorithm.GetTableSize())
		return
	}

	table = &SCTable[K, V]{
		buckets:       make([][]model.Pair[K, V], conf.HashAlgorithm.GetTableSize()),
		maxLoadFactor: conf.MaxLoadFactor,
		hashAlgorithm: conf.HashAlgorithm,
	}

	return
}

// Insert - Adds a new entry to the table, growing the table first if the entry would exceed the max load factor.
//   - key is the key of the entry, it must not already be in the table
//   - value is the value to store with the key
//
// It returns:
//   - err is of type dtype.KeyAlreadyExists if the key is already in the table, stored entries are then left unchanged
func (S *SCTable[K, V]) Insert(key K, value V) (err error) {
	S.ensureCapacity()

	bucketNo := S.bucketNo(key)
	if S.scan(bucketNo, key) >= 0 {
		err = dtype.KeyAlreadyExists{}
		return
	}

	S.add(bucketNo, key, value)

	return
}

// Find - Returns the value stored with key.
// The found flag is false if the key is not in the table.
func (S *SCTable[K, V]) Find(key K) (value V, found bool) {
	bucketNo := S.bucketNo(key)
	if i := S.scan(bucketNo, key); i >= 0 {
		value, found = S.buckets[bucketNo][i].Value, true
	}

	return
}

// Update - Replaces the value of an existing entry.
// It returns an error of type dtype.KeyNotFound if the key is not in the table.
func (S *SCTable[K, V]) Update(key K, value V) (err error) {
	bucketNo := S.bucketNo(key)
	i := S.scan(bucketNo, key)
	if i < 0 {
		err = dtype.KeyNotFound{}
		return
	}

	S.buckets[bucketNo][i].Value = value

	return
}

// Remove - Removes the entry with the given key, removing an absent key is a no-op
func (S *SCTable[K, V]) Remove(key K) {
	bucketNo := S.bucketNo(key)
	for i, p := range S.buckets[bucketNo] {
		if cmp.Compare(p.Key, key) == 0 {
			S.buckets[bucketNo] = slices.Delete(S.buckets[bucketNo], i, i+1)
			S.size--
			return
		}
	}
}

// Clear - Releases all entries and resets all counters, the number of buckets is retained
func (S *SCTable[K, V]) Clear() {
	for i := range S.buckets {
		S.buckets[i] = nil
	}
	S.size = 0
	S.counters.Reset()
}

// Upsert - Returns a pointer to the value stored with key, inserting a zero value first if the key is absent.
// The pointer is valid until the next call that modifies the table.
func (S *SCTable[K, V]) Upsert(key K) (value *V) {
	S.ensureCapacity()

	bucketNo := S.bucketNo(key)
	i := S.scan(bucketNo, key)
	if i < 0 {
		var zero V
		S.add(bucketNo, key, zero)
		i = len(S.buckets[bucketNo]) - 1
	}

	return &S.buckets[bucketNo][i].Value
}

// At - Returns the value stored with key, or an error of type dtype.KeyNotFound if the key is not in the table
func (S *SCTable[K, V]) At(key K) (value V, err error) {
	value, found := S.Find(key)
	if !found {
		err = dtype.KeyNotFound{}
	}

	return
}

// Walk - Visits all entries in ascending key order until fn returns false
func (S *SCTable[K, V]) Walk(fn func(key K, value V) bool) {
	for _, p := range S.sortedPairs() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

// InOrder - Writes all entries in ascending key order to w, one "key | value" line per entry
func (S *SCTable[K, V]) InOrder(w io.Writer) (err error) {
	return storage.WritePairs(w, S.sortedPairs())
}

// Comparisons - Returns the number of key comparisons made since creation or last Clear
func (S *SCTable[K, V]) Comparisons() uint64 {
	return S.counters.Comparisons()
}

// Collisions - Returns the number of entries appended to non-empty buckets since creation or last Clear
func (S *SCTable[K, V]) Collisions() uint64 {
	return S.counters.Collisions()
}

// Capacity - Returns the number of buckets
func (S *SCTable[K, V]) Capacity() int64 {
	return int64(len(S.buckets))
}

// Len - Returns the number of entries in the table
func (S *SCTable[K, V]) Len() int64 {
	return S.size
}

// LoadFactor - Returns the current ratio between entries and buckets
func (S *SCTable[K, V]) LoadFactor() float64 {
	return float64(S.size) / float64(len(S.buckets))
}

// MaxLoadFactor - Returns the load factor the table never exceeds after an insert
func (S *SCTable[K, V]) MaxLoadFactor() float64 {
	return S.maxLoadFactor
}

// Metrics - Returns a snapshot of the table counters for reporting
func (S *SCTable[K, V]) Metrics() model.Metrics {
	return model.Metrics{
		Type:          dtype.SeparateChaining,
		Label:         dtype.Label(dtype.SeparateChaining),
		Comparisons:   S.counters.Comparisons(),
		SpecificName:  dtype.CollisionsMetric,
		SpecificValue: S.counters.Collisions(),
	}
}
