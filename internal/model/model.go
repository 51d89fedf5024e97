package model

import hashfunc "github.com/gostonefire/dictmap/hashfunc"

// SlotEmpty - State indicating a slot that is or has never been in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that is in use
const SlotOccupied uint8 = 1

// SlotDeleted - State indicating a slot that has been in use but was deleted (a tombstone)
const SlotDeleted uint8 = 2

// Pair - Represents one key/value entry, used in separate chaining buckets and in ordered traversal
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Slot - Represents one slot in an open addressing table
type Slot[K any, V any] struct {
	State uint8
	Key   K
	Value V
}

// Metrics - Snapshot of the instrumentation of a dictionary, used by reporting without knowing the concrete type
//   - Type is the dictionary type as defined in package dtype
//   - Label is a human readable name of the structure
//   - Comparisons is the number of key comparisons performed since creation or last Clear
//   - SpecificName is either "rotations" (trees) or "collisions" (hash tables)
//   - SpecificValue is the value of the structure specific counter
type Metrics struct {
	Type          int
	Label         string
	Comparisons   uint64
	SpecificName  string
	SpecificValue uint64
}

// TableConf - Is a struct to be passed in the call to NewSCTable or NewOATable and contains configuration
// for the hash table.
//   - InitialSize is the requested number of buckets, rounded by the hash algorithm
//   - MaxLoadFactor is the max ratio between stored entries and buckets before the table grows
//   - HashAlgorithm is the hash function(s) to use, nil selects the internal algorithm
type TableConf[K any] struct {
	InitialSize   int64
	MaxLoadFactor float64
	HashAlgorithm hashfunc.HashAlgorithm[K]
}

// DefaultInitialSize - Requested number of buckets when a configuration leaves InitialSize at zero
const DefaultInitialSize int64 = 7

// DefaultMaxLoadFactor - Max load factor used when a configuration leaves MaxLoadFactor at zero
const DefaultMaxLoadFactor float64 = 0.7

// MinMaxLoadFactor - Smallest max load factor a hash table accepts, lower values would grow the table without bound
const MinMaxLoadFactor float64 = 0.05
