package hash

import (
	"encoding/binary"
	"hash/crc32"
	"math"
	"reflect"
)

// KeyBytes - Returns a byte representation of an ordered key suitable for hashing.
// Strings are used as is, integers are encoded as 8 bytes little endian and floats by their IEEE 754 bits
// (with negative zero folded into zero and every NaN folded into one NaN so that equal keys always hash equal).
func KeyBytes(key any) []byte {
	switch k := key.(type) {
	case string:
		return []byte(k)
	case int:
		return uint64Bytes(uint64(k))
	case int64:
		return uint64Bytes(uint64(k))
	case float64:
		return float64Bytes(k)
	}

	// Named types and the remaining numeric kinds
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.String:
		return []byte(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64Bytes(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uint64Bytes(v.Uint())
	case reflect.Float32, reflect.Float64:
		return float64Bytes(v.Float())
	}

	return nil
}

// Checksum - Returns the crc32 (IEEE) checksum of the key bytes as a non-negative int64
func Checksum(key any) int64 {
	return int64(crc32.ChecksumIEEE(KeyBytes(key)))
}

func uint64Bytes(u uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, u)
	return buf
}

func float64Bytes(f float64) []byte {
	switch {
	case f == 0:
		f = 0
	case math.IsNaN(f):
		f = math.NaN()
	}
	return uint64Bytes(math.Float64bits(f))
}
