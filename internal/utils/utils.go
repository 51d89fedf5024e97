package utils

import (
	"fmt"
	"unicode"

	"golang.org/x/text/width"
)

// RoundUp2 - Rounds up to the nearest exponent of 2, values below 1 are rounded up to 1
func RoundUp2(a int64) int64 {
	if a <= 1 {
		return 1
	}

	r := uint64(a - 1)
	r |= r >> 1
	r |= r >> 2
	r |= r >> 4
	r |= r >> 8
	r |= r >> 16
	r |= r >> 32

	return int64(r + 1)
}

// IsPrime - Returns true if n is a prime number
func IsPrime(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest prime strictly greater than n
func NextPrime(n int64) int64 {
	if n < 2 {
		return 2
	}

	candidate := n + 1
	for !IsPrime(candidate) {
		candidate++
	}

	return candidate
}

// DisplayWidth - Returns the number of terminal columns taken by the default string representation of v.
// East Asian wide and fullwidth runes take two columns, combining marks and control characters none.
func DisplayWidth(v any) (columns int) {
	for _, r := range fmt.Sprint(v) {
		switch {
		case unicode.In(r, unicode.Mn, unicode.Me, unicode.Cc, unicode.Cf):
		case isWide(r):
			columns += 2
		default:
			columns++
		}
	}

	return
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}
