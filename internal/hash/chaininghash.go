package hash

import (
	"github.com/gostonefire/dictmap/internal/utils"
)

// SeparateChainingHashAlgorithm - The internally used bucket selection algorithm is implemented using crc32.ChecksumIEEE to
// create a hash value over the key and then applying bucket = hash % actualTableSize to get the bucket number,
// where actualTableSize is the nearest prime strictly bigger than the requested table size.
type SeparateChainingHashAlgorithm[K any] struct {
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm[K any](tableSize int64) *SeparateChainingHashAlgorithm[K] {
	ha := &SeparateChainingHashAlgorithm[K]{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest prime strictly bigger than the requested size,
// so a request for twice an existing prime size lands on the smallest prime >= that double.
//   - tableSize is the number of buckets the table will address
func (S *SeparateChainingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	S.tableSize = utils.NextPrime(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (S *SeparateChainingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return Checksum(key) % S.tableSize
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (S *SeparateChainingHashAlgorithm[K]) GetTableSize() int64 {
	return S.tableSize
}

// ProbeIteration - Not used in separate chaining collision resolution techniques, returns the bucket unchanged
func (S *SeparateChainingHashAlgorithm[K]) ProbeIteration(hf1Value, iteration int64) int64 {
	return hf1Value
}
