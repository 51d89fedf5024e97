package openaddressing

import (
	"fmt"
	"io"

	"github.com/gostonefire/dictmap/dtype"
	"github.com/gostonefire/dictmap/hashfunc"
	"github.com/gostonefire/dictmap/internal/hash"
	"github.com/gostonefire/dictmap/internal/model"
	"github.com/gostonefire/dictmap/internal/storage"
	"golang.org/x/exp/constraints"
)

// OATable - Represents an implementation of the Open Addressing Collision Resolution Technique using Quadratic Probing.
// Removed entries leave a tombstone (model.SlotDeleted) behind so probe sequences of other keys stay intact.
// Tombstones are reused by later inserts and dropped when the table is rehashed.
// An OATable is not safe for concurrent use.
type OATable[K constraints.Ordered, V any] struct {
	slots         []model.Slot[K, V]
	size          int64
	maxLoadFactor float64
	hashAlgorithm hashfunc.HashAlgorithm[K]
	counters      storage.Counters
}

// NewOATable - Returns a pointer to a new empty open addressing hash table.
//   - conf is a model.TableConf struct, zero values select the internal defaults
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is a standard Go type of error, returned for a negative size or a load factor outside
//     [model.MinMaxLoadFactor, 1], NaN included
func NewOATable[K constraints.Ordered, V any](conf model.TableConf[K]) (table *OATable[K, V], err error) {
	if conf.InitialSize < 0 {
		err = fmt.Errorf("initial size must not be negative, got %d", conf.InitialSize)
		return
	}
	if conf.MaxLoadFactor == 0 {
		conf.MaxLoadFactor = model.DefaultMaxLoadFactor
	}
	if !(conf.MaxLoadFactor >= model.MinMaxLoadFactor && conf.MaxLoadFactor <= 1) {
		err = fmt.Errorf("max load factor must be in [%v, 1], got %v", model.MinMaxLoadFactor, conf.MaxLoadFactor)
		return
	}
	if conf.InitialSize == 0 {
		conf.InitialSize = model.DefaultInitialSize
	}

	// If no HashAlgorithm was given then use the default internal
	if conf.HashAlgorithm == nil {
		conf.HashAlgorithm = hash.NewQuadraticProbingHashAlgorithm[K](conf.InitialSize)
	} else {
		conf.HashAlgorithm.SetTableSize(conf.InitialSize)
	}

	if conf.HashAlgorithm.GetTableSize() < 1 {
		err = fmt.Errorf("hash algorithm reports a table size of %d", conf.HashAlgorithm.GetTableSize())
		return
	}

	table = &OATable[K, V]{
		slots:         make([]model.Slot[K, V], conf.HashAlgorithm.GetTableSize()),
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
//   - err is of type dtype.KeyAlreadyExists if the key is already in the table, stored entries are then left
//     unchanged. An error of type dtype.ProbingAlgorithm means the probe sequence never reached a free slot.
func (Q *OATable[K, V]) Insert(key K, value V) (err error) {
	err = Q.ensureCapacity()
	if err != nil {
		return
	}

	match, free, err := Q.probe(key, probeInsert)
	if err != nil {
		return
	}
	if match >= 0 {
		err = dtype.KeyAlreadyExists{}
		return
	}
	if free < 0 {
		err = dtype.ProbingAlgorithm{}
		return
	}

	Q.occupy(free, key, value)

	return
}

// Find - Returns the value stored with key.
// The found flag is false if the key is not in the table.
func (Q *OATable[K, V]) Find(key K) (value V, found bool) {
	match, _, _ := Q.probe(key, probeFind)
	if match >= 0 {
		value, found = Q.slots[match].Value, true
	}

	return
}

// Update - Replaces the value of an existing entry.
// It returns an error of type dtype.KeyNotFound if the key is not in the table.
func (Q *OATable[K, V]) Update(key K, value V) (err error) {
	match, _, _ := Q.probe(key, probeFind)
	if match < 0 {
		err = dtype.KeyNotFound{}
		return
	}

	Q.slots[match].Value = value

	return
}

// Remove - Turns the slot holding key into a tombstone, removing an absent key is a no-op
func (Q *OATable[K, V]) Remove(key K) {
	match, _, _ := Q.probe(key, probeRemove)
	if match < 0 {
		return
	}

	var zero model.Slot[K, V]
	Q.slots[match] = zero
	Q.slots[match].State = model.SlotDeleted
	Q.size--
}

// Clear - Releases all entries and resets all counters, the number of slots is retained
func (Q *OATable[K, V]) Clear() {
	clear(Q.slots)
	Q.size = 0
	Q.counters.Reset()
}

// Upsert - Returns a pointer to the value stored with key, inserting a zero value first if the key is absent.
// The pointer is valid until the next call that modifies the table.
// It panics with a dtype.ProbingAlgorithm error if an external hash algorithm never probes a free slot, which the
// internal quadratic probing cannot do.
func (Q *OATable[K, V]) Upsert(key K) (value *V) {
	err := Q.ensureCapacity()
	if err != nil {
		panic(err)
	}

	match, free, err := Q.probe(key, probeInsert)
	switch {
	case err != nil:
		panic(err)
	case match >= 0:
		return &Q.slots[match].Value
	case free < 0:
		panic(dtype.ProbingAlgorithm{})
	}

	var zero V
	Q.occupy(free, key, zero)

	return &Q.slots[free].Value
}

// At - Returns the value stored with key, or an error of type dtype.KeyNotFound if the key is not in the table
func (Q *OATable[K, V]) At(key K) (value V, err error) {
	value, found := Q.Find(key)
	if !found {
		err = dtype.KeyNotFound{}
	}

	return
}

// Walk - Visits all entries in ascending key order until fn returns false
func (Q *OATable[K, V]) Walk(fn func(key K, value V) bool) {
	for _, p := range Q.sortedPairs() {
		if !fn(p.Key, p.Value) {
			return
		}
	}
}

// InOrder - Writes all entries in ascending key order to w, one "key | value" line per entry
func (Q *OATable[K, V]) InOrder(w io.Writer) (err error) {
	return storage.WritePairs(w, Q.sortedPairs())
}

// Comparisons - Returns the number of key comparisons made since creation or last Clear
func (Q *OATable[K, V]) Comparisons() uint64 {
	return Q.counters.Comparisons()
}

// Collisions - Returns the number of occupied slots probed past while inserting since creation or last Clear
func (Q *OATable[K, V]) Collisions() uint64 {
	return Q.counters.Collisions()
}

// Capacity - Returns the number of slots
func (Q *OATable[K, V]) Capacity() int64 {
	return int64(len(Q.slots))
}

// Len - Returns the number of entries in the table, tombstones not included
func (Q *OATable[K, V]) Len() int64 {
	return Q.size
}

// LoadFactor - Returns the current ratio between entries and slots
func (Q *OATable[K, V]) LoadFactor() float64 {
	return float64(Q.size) / float64(len(Q.slots))
}

// MaxLoadFactor - Returns the load factor the table never exceeds after an insert
func (Q *OATable[K, V]) MaxLoadFactor() float64 {
	return Q.maxLoadFactor
}

// Metrics - Returns a snapshot of the table counters for reporting
func (Q *OATable[K, V]) Metrics() model.Metrics {
	return model.Metrics{
		Type:          dtype.OpenAddressing,
		Label:         dtype.Label(dtype.OpenAddressing),
		Comparisons:   Q.counters.Comparisons(),
		SpecificName:  dtype.CollisionsMetric,
		SpecificValue: Q.counters.Collisions(),
	}
}
