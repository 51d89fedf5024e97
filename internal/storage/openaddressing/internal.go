package openaddressing

import (
	"cmp"

	"github.com/gostonefire/dictmap/dtype"
	"github.com/gostonefire/dictmap/internal/model"
	"github.com/gostonefire/dictmap/internal/storage"
)

// Probe modes, deciding what a probe counts
const (
	probeFind = iota
	probeInsert
	probeRemove
)

// probe - Is the Probing Collision Resolution Technique algorithm shared by all operations.
// It walks the probe sequence of key until it reaches the slot holding key, an empty slot or has seen every slot.
// Tombstones do not end the walk.
//   - key is the key to look for
//   - mode is probeFind or probeInsert, which count one comparison per occupied slot and for probeInsert one
//     collision per occupied slot holding another key, or probeRemove which counts nothing
//
// It returns:
//   - match is the index of the slot holding key, or -1
//   - free is the index a new entry for key should occupy: the first tombstone passed or else the empty slot
//     that ended the walk, -1 if there is neither
//   - err is of type dtype.ProbingAlgorithm if the hash algorithm kept probing outside the table
func (Q *OATable[K, V]) probe(key K, mode int) (match, free int64, err error) {
	var n int64
	match, free = -1, -1
	capacity := int64(len(Q.slots))

	hf1Value := Q.hashAlgorithm.HashFunc1(key)

	iMax := capacity * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		p := Q.hashAlgorithm.ProbeIteration(hf1Value, i)
		if p < capacity && p >= 0 {
			slot := &Q.slots[p]

			switch slot.State {
			case model.SlotEmpty:
				if free < 0 {
					free = p
				}
				return

			case model.SlotOccupied:
				if mode != probeRemove {
					Q.counters.Compare(1)
				}
				if cmp.Compare(slot.Key, key) == 0 {
					match = p
					return
				}
				if mode == probeInsert {
					Q.counters.Collide()
				}

			case model.SlotDeleted:
				if free < 0 {
					free = p
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= capacity {
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur with the internal algorithm
	err = dtype.ProbingAlgorithm{}
	return
}

// occupy - Stores a new entry in the slot at index p
func (Q *OATable[K, V]) occupy(p int64, key K, value V) {
	Q.slots[p] = model.Slot[K, V]{State: model.SlotOccupied, Key: key, Value: value}
	Q.size++
}

// ensureCapacity - Rehashes the table until one more entry would not exceed the max load factor
func (Q *OATable[K, V]) ensureCapacity() (err error) {
	for float64(Q.size+1)/float64(len(Q.slots)) > Q.maxLoadFactor {
		err = Q.rehash()
		if err != nil {
			return
		}
	}

	return
}

// rehash - Moves all entries to a new slot array of at least twice the size, dropping all tombstones.
// Entries are inserted anew, so comparisons and collisions are counted as for ordinary inserts.
func (Q *OATable[K, V]) rehash() (err error) {
	old := Q.slots

	Q.hashAlgorithm.SetTableSize(2 * int64(len(old)))
	Q.slots = make([]model.Slot[K, V], max(Q.hashAlgorithm.GetTableSize(), int64(len(old))+1))
	Q.size = 0

	for _, slot := range old {
		if slot.State != model.SlotOccupied {
			continue
		}

		_, free, err := Q.probe(slot.Key, probeInsert)
		if err != nil {
			return err
		}
		if free < 0 {
			return dtype.ProbingAlgorithm{}
		}

		Q.occupy(free, slot.Key, slot.Value)
	}

	return
}

// sortedPairs - Returns all entries in ascending key order
func (Q *OATable[K, V]) sortedPairs() (pairs []model.Pair[K, V]) {
	pairs = make([]model.Pair[K, V], 0, Q.size)
	for _, slot := range Q.slots {
		if slot.State == model.SlotOccupied {
			pairs = append(pairs, model.Pair[K, V]{Key: slot.Key, Value: slot.Value})
		}
	}
	storage.SortPairs(pairs)

	return
}
