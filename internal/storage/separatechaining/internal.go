package separatechaining

import (
	"cmp"

	"github.com/gostonefire/dictmap/internal/model"
	"github.com/gostonefire/dictmap/internal/storage"
)

// bucketNo - Returns the bucket for key, folding values from external hash algorithms into range
func (S *SCTable[K, V]) bucketNo(key K) int64 {
	n := int64(len(S.buckets))
	b := S.hashAlgorithm.HashFunc1(key) % n
	if b < 0 {
		b += n
	}

	return b
}

// scan - Returns the index of key within the bucket, or -1. Each examined entry counts as one comparison.
func (S *SCTable[K, V]) scan(bucketNo int64, key K) int {
	for i, p := range S.buckets[bucketNo] {
		S.counters.Compare(1)
		if cmp.Compare(p.Key, key) == 0 {
			return i
		}
	}

	return -1
}

// add - Appends a new entry to the bucket, recording a collision if the bucket was already in use
func (S *SCTable[K, V]) add(bucketNo int64, key K, value V) {
	if len(S.buckets[bucketNo]) > 0 {
		S.counters.Collide()
	}

	S.buckets[bucketNo] = append(S.buckets[bucketNo], model.Pair[K, V]{Key: key, Value: value})
	S.size++
}

// ensureCapacity - Rehashes the table until one more entry would not exceed the max load factor
func (S *SCTable[K, V]) ensureCapacity() {
	for float64(S.size+1)/float64(len(S.buckets)) > S.maxLoadFactor {
		S.rehash()
	}
}

// rehash - Moves all entries to a new bucket array of at least twice the size.
// Entries are inserted anew, so comparisons and collisions are counted as for ordinary inserts.
func (S *SCTable[K, V]) rehash() {
	old := S.buckets

	S.hashAlgorithm.SetTableSize(2 * int64(len(old)))
	S.buckets = make([][]model.Pair[K, V], max(S.hashAlgorithm.GetTableSize(), int64(len(old))+1))
	S.size = 0

	for _, bucket := range old {
		for _, p := range bucket {
			bucketNo := S.bucketNo(p.Key)
			S.scan(bucketNo, p.Key)
			S.add(bucketNo, p.Key, p.Value)
		}
	}
}

// sortedPairs - Returns all entries in ascending key order
func (S *SCTable[K, V]) sortedPairs() (pairs []model.Pair[K, V]) {
	pairs = make([]model.Pair[K, V], 0, S.size)
	for _, bucket := range S.buckets {
		pairs = append(pairs, bucket...)
	}
	storage.SortPairs(pairs)

	return
}
