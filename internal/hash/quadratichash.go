package hash

import (
	"github.com/gostonefire/dictmap/internal/utils"
)

// QuadraticProbingHashAlgorithm - The internally used bucket selection algorithm is implemented using crc32.ChecksumIEEE to
// create a hash value over the key and then applying bucket = hash & (actualTableSize - 1) to get the bucket number,
// where actualTableSize is the nearest bigger exponent of 2 of the requested table size.
type QuadraticProbingHashAlgorithm[K any] struct {
	tableSize int64
}

// NewQuadraticProbingHashAlgorithm - Returns a pointer to a new QuadraticProbingHashAlgorithm instance
func NewQuadraticProbingHashAlgorithm[K any](tableSize int64) *QuadraticProbingHashAlgorithm[K] {
	ha := &QuadraticProbingHashAlgorithm[K]{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it updates the table size to the nearest bigger exponent of 2 of the requested table size.
// The triangular probe sequence of ProbeIteration visits every bucket exactly once only for such sizes.
func (Q *QuadraticProbingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	Q.tableSize = utils.RoundUp2(tableSize)
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (Q *QuadraticProbingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return Checksum(key) & (Q.tableSize - 1)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (Q *QuadraticProbingHashAlgorithm[K]) GetTableSize() int64 {
	return Q.tableSize
}

// ProbeIteration - Implements Quadratic Probing
func (Q *QuadraticProbingHashAlgorithm[K]) ProbeIteration(hf1Value, iteration int64) int64 {
	return (hf1Value + (iteration*iteration+iteration)/2) & (Q.tableSize - 1)
}
