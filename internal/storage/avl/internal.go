package avl

import (
	"cmp"

	"github.com/gostonefire/dictmap/dtype"
	"golang.org/x/exp/constraints"
)

// node - One entry of the tree. height is the cached height of the subtree rooted at the node (a leaf has 1).
type node[K constraints.Ordered, V any] struct {
	key    K
	value  V
	height int
	left   *node[K, V]
	right  *node[K, V]
}

func (n *node[K, V]) Left() *node[K, V] { return n.left }

func (n *node[K, V]) Right() *node[K, V] { return n.right }

func (n *node[K, V]) Key() K { return n.key }

func (n *node[K, V]) ValueRef() *V { return &n.value }

// height - Returns the cached height of n, 0 for an empty subtree
func height[K constraints.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return n.height
}

// calcHeight - Computes the height of n from the cached heights of its children
func calcHeight[K constraints.Ordered, V any](n *node[K, V]) int {
	return 1 + max(height(n.left), height(n.right))
}

// balanceFactor - Returns height(right) - height(left)
func balanceFactor[K constraints.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return height(n.right) - height(n.left)
}

// rotateLeft - Moves the right child of y up to take its place and returns it
func (T *Tree[K, V]) rotateLeft(y *node[K, V]) *node[K, V] {
	x := y.right

	y.right = x.left
	x.left = y

	y.height = calcHeight(y)
	x.height = calcHeight(x)

	T.counters.Rotate()

	return x
}

// rotateRight - Moves the left child of y up to take its place and returns it
func (T *Tree[K, V]) rotateRight(y *node[K, V]) *node[K, V] {
	x := y.left

	y.left = x.right
	x.right = y

	y.height = calcHeight(y)
	x.height = calcHeight(x)

	T.counters.Rotate()

	return x
}

// fixup - Restores the balance of y after one of its subtrees changed height and returns the new subtree root.
// A same-sign imbalance takes a single rotation, an opposite-sign imbalance a double rotation.
func (T *Tree[K, V]) fixup(y *node[K, V]) *node[K, V] {
	switch bf := balanceFactor(y); {
	case bf < -1:
		if balanceFactor(y.left) > 0 {
			y.left = T.rotateLeft(y.left)
		}
		return T.rotateRight(y)

	case bf > 1:
		if balanceFactor(y.right) < 0 {
			y.right = T.rotateRight(y.right)
		}
		return T.rotateLeft(y)
	}

	y.height = calcHeight(y)

	return y
}

// insert - Inserts key/value into the subtree rooted at n and returns the new subtree root
func (T *Tree[K, V]) insert(n *node[K, V], key K, value V) (*node[K, V], error) {
	if n == nil {
		return &node[K, V]{key: key, value: value, height: 1}, nil
	}

	var err error
	T.counters.Compare(1)
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, err = T.insert(n.left, key, value)
	case c > 0:
		n.right, err = T.insert(n.right, key, value)
	default:
		return n, dtype.KeyAlreadyExists{}
	}

	if err != nil {
		return n, err
	}

	return T.fixup(n), nil
}

// update - Replaces the value for key in the subtree rooted at n, re-validating balance along the path
func (T *Tree[K, V]) update(n *node[K, V], key K, value V) (*node[K, V], error) {
	if n == nil {
		return nil, dtype.KeyNotFound{}
	}

	var err error
	T.counters.Compare(1)
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, err = T.update(n.left, key, value)
	case c > 0:
		n.right, err = T.update(n.right, key, value)
	default:
		n.value = value
	}

	if err != nil {
		return n, err
	}

	return T.fixup(n), nil
}

// upsert - Finds or inserts key in the subtree rooted at n, setting ref to the value of the matching node
func (T *Tree[K, V]) upsert(n *node[K, V], key K, ref **V) (*node[K, V], bool) {
	if n == nil {
		n = &node[K, V]{key: key, height: 1}
		*ref = &n.value
		return n, true
	}

	var inserted bool
	T.counters.Compare(1)
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, inserted = T.upsert(n.left, key, ref)
	case c > 0:
		n.right, inserted = T.upsert(n.right, key, ref)
	default:
		*ref = &n.value
		return n, false
	}

	if !inserted {
		return n, false
	}

	return T.fixup(n), true
}

// remove - Removes key from the subtree rooted at n and returns the new subtree root.
// A node without right child is replaced by its left child, otherwise it takes over key and value of its
// in-order successor which is then removed from the right subtree.
func (T *Tree[K, V]) remove(n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch c := cmp.Compare(key, n.key); {
	case c < 0:
		n.left, removed = T.remove(n.left, key)
	case c > 0:
		n.right, removed = T.remove(n.right, key)
	case n.right == nil:
		return n.left, true
	default:
		n.right = T.removeSuccessor(n, n.right)
		removed = true
	}

	if !removed {
		return n, false
	}

	return T.fixup(n), true
}

// removeSuccessor - Removes the leftmost node of the subtree rooted at n after moving its entry into target
func (T *Tree[K, V]) removeSuccessor(target, n *node[K, V]) *node[K, V] {
	if n.left == nil {
		target.key, target.value = n.key, n.value
		return n.right
	}

	n.left = T.removeSuccessor(target, n.left)

	return T.fixup(n)
}
