package hashfunc

// HashAlgorithm - Interface that permits a caller of the hash table dictionaries to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
// An instance is stateful (it holds the table size) and must not be shared between dictionaries.
type HashAlgorithm[K any] interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when the hash table is created and every time it grows. The implementation is free to
	// round the requested size, e.g. up to the nearest prime or power of 2, but GetTableSize must then
	// report the rounded size.
	//   - tableSize is the number of buckets requested
	SetTableSize(tableSize int64)

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(key K) int64

	// ProbeIteration - Returns the bucket to try in a given probe iteration, given the value from HashFunc1.
	// Iteration 0 must return hf1Value. Only used by the open addressing hash table, and it must visit every
	// bucket exactly once within table size iterations.
	ProbeIteration(hf1Value, iteration int64) int64
}
