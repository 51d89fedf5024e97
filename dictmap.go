package dictmap

import (
	"fmt"
	"io"

	"github.com/gostonefire/dictmap/dtype"
	"github.com/gostonefire/dictmap/hashfunc"
	"github.com/gostonefire/dictmap/internal/model"
	"github.com/gostonefire/dictmap/internal/storage/avl"
	"github.com/gostonefire/dictmap/internal/storage/openaddressing"
	"github.com/gostonefire/dictmap/internal/storage/redblack"
	"github.com/gostonefire/dictmap/internal/storage/separatechaining"
	"golang.org/x/exp/constraints"
)

// Dictionary - The contract every dictionary implementation satisfies, so callers can swap implementations freely.
// No implementation is safe for concurrent use, callers needing that must serialize access themselves.
type Dictionary[K constraints.Ordered, V any] interface {
	// Insert - Adds a new entry, fails with dtype.KeyAlreadyExists if the key is already stored
	Insert(key K, value V) error
	// Find - Returns the value stored with key and whether it was found
	Find(key K) (value V, found bool)
	// Update - Replaces the value of an existing entry, fails with dtype.KeyNotFound if the key is absent
	Update(key K, value V) error
	// Remove - Removes the entry with the given key, an absent key is a no-op
	Remove(key K)
	// Clear - Releases all entries and resets all counters
	Clear()
	// InOrder - Writes all entries in ascending key order to w as "key | value" lines
	InOrder(w io.Writer) error
	// Walk - Visits all entries in ascending key order until fn returns false
	Walk(fn func(key K, value V) bool)
	// Upsert - Returns a pointer to the value stored with key, inserting a zero value first if absent.
	// The pointer stays valid until the next call that modifies the dictionary.
	Upsert(key K) *V
	// At - Returns the value stored with key, fails with dtype.KeyNotFound if the key is absent
	At(key K) (V, error)
	// Comparisons - Returns the number of key comparisons made since creation or last Clear
	Comparisons() uint64
	// Capacity - Returns the number of nodes for trees and the number of buckets or slots for hash tables
	Capacity() int64
	// Len - Returns the number of entries
	Len() int64
	// Metrics - Returns a snapshot of the counters, including the structure specific one
	Metrics() Metrics
}

// Metrics - Snapshot of the counters of a dictionary, see model.Metrics
type Metrics = model.Metrics

// DictConf - Is a struct to be passed in the call to NewDictionary and contains configuration affecting which
// dictionary is created and how.
//   - Type is one of the dictionary types defined in package dtype
//   - InitialSize is the requested number of buckets for hash tables, zero selects the default (7). Ignored by trees.
//   - MaxLoadFactor is the load factor hash tables never exceed, zero selects the default (0.7). Ignored by trees.
//   - HashAlgorithm is an optional custom hash algorithm for hash tables, nil selects the internal. Ignored by trees.
type DictConf[K any] struct {
	Type          int
	InitialSize   int64
	MaxLoadFactor float64
	HashAlgorithm hashfunc.HashAlgorithm[K]
}

// NewDictionary - Returns a new empty dictionary of the type given in conf.
//   - conf is a DictConf struct
//
// It returns:
//   - dict is the created dictionary
//   - err is of type dtype.TypeNotFound if conf.Type is unknown, or a standard error if the hash table
//     configuration is invalid
func NewDictionary[K constraints.Ordered, V any](conf DictConf[K]) (dict Dictionary[K, V], err error) {
	if !dtype.Valid(conf.Type) {
		err = fmt.Errorf("type %d: %w", conf.Type, dtype.TypeNotFound{})
		return
	}

	tableConf := model.TableConf[K]{
		InitialSize:   conf.InitialSize,
		MaxLoadFactor: conf.MaxLoadFactor,
		HashAlgorithm: conf.HashAlgorithm,
	}

	switch conf.Type {
	case dtype.AVL:
		dict = avl.NewTree[K, V]()

	case dtype.RedBlack:
		dict = redblack.NewTree[K, V]()

	case dtype.SeparateChaining:
		var table *separatechaining.SCTable[K, V]
		table, err = separatechaining.NewSCTable[K, V](tableConf)
		if err != nil {
			err = fmt.Errorf("error while creating separate chaining table: %w", err)
			return
		}
		dict = table

	case dtype.OpenAddressing:
		var table *openaddressing.OATable[K, V]
		table, err = openaddressing.NewOATable[K, V](tableConf)
		if err != nil {
			err = fmt.Errorf("error while creating open addressing table: %w", err)
			return
		}
		dict = table
	}

	return
}

// NewDictionaryFromName - Same as NewDictionary but with the type given by name, e.g. "avl_dictionary" or "open".
// The Type field of conf is ignored. Unknown names fail with an error of type dtype.TypeNotFound.
func NewDictionaryFromName[K constraints.Ordered, V any](name string, conf DictConf[K]) (dict Dictionary[K, V], err error) {
	conf.Type, err = dtype.Parse(name)
	if err != nil {
		return
	}

	return NewDictionary[K, V](conf)
}

var (
	_ Dictionary[string, int] = (*avl.Tree[string, int])(nil)
	_ Dictionary[string, int] = (*redblack.Tree[string, int])(nil)
	_ Dictionary[string, int] = (*separatechaining.SCTable[string, int])(nil)
	_ Dictionary[string, int] = (*openaddressing.OATable[string, int])(nil)
)
