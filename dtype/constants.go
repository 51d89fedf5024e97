package dtype

import (
	"fmt"
	"strings"
)

// AVL - Height balanced binary search tree
const AVL int = 1

// RedBlack - Color balanced binary search tree
const RedBlack int = 2

// SeparateChaining - Hash table resolving collisions with a list per bucket
const SeparateChaining int = 3

// OpenAddressing - Hash table resolving collisions with quadratic probing
const OpenAddressing int = 4

// RotationsMetric - Name of the structure specific metric reported by trees
const RotationsMetric = "rotations"

// CollisionsMetric - Name of the structure specific metric reported by hash tables
const CollisionsMetric = "collisions"

var names = map[string]int{
	"avl_dictionary":      AVL,
	"avl":                 AVL,
	"redblack_dictionary": RedBlack,
	"redblack":            RedBlack,
	"chained_dictionary":  SeparateChaining,
	"chained":             SeparateChaining,
	"open_dictionary":     OpenAddressing,
	"open":                OpenAddressing,
}

var labels = map[int]string{
	AVL:              "AVL tree",
	RedBlack:         "Red-black tree",
	SeparateChaining: "Separate chaining hash table",
	OpenAddressing:   "Open addressing hash table",
}

// Parse - Returns the dictionary type matching a configuration name such as "avl_dictionary" or "open".
// Matching is case-insensitive. An unknown name results in an error of type TypeNotFound.
func Parse(name string) (dictType int, err error) {
	dictType, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		err = fmt.Errorf("%q: %w", name, TypeNotFound{})
	}

	return
}

// Label - Returns a human readable label for the dictionary type, or an empty string if unknown
func Label(dictType int) string {
	return labels[dictType]
}

// IsTree - Returns true if the dictionary type is one of the tree implementations
func IsTree(dictType int) bool {
	return dictType == AVL || dictType == RedBlack
}

// Valid - Returns true if the dictionary type is known
func Valid(dictType int) bool {
	_, ok := labels[dictType]
	return ok
}
