package redblack

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

type color bool

const (
	red   color = false
	black color = true
)

// node - One entry of the tree. A nil child or parent stands for the black leaf sentinel.
type node[K constraints.Ordered, V any] struct {
	key    K
	value  V
	color  color
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

func (n *node[K, V]) Left() *node[K, V] { return n.left }

func (n *node[K, V]) Right() *node[K, V] { return n.right }

func (n *node[K, V]) Key() K { return n.key }

func (n *node[K, V]) ValueRef() *V { return &n.value }

// isRed - Returns true if n is a real node colored red, missing nodes are black
func isRed[K constraints.Ordered, V any](n *node[K, V]) bool {
	return n != nil && n.color == red
}

// descend - Walks from the root towards key counting one comparison per step.
// If key is found the matching node is returned with found true, otherwise the node that would become the
// parent of a new node for key (nil for an empty tree).
func (T *Tree[K, V]) descend(key K) (n *node[K, V], found bool) {
	cur := T.root
	for cur != nil {
		n = cur
		T.counters.Compare(1)
		switch c := cmp.Compare(key, cur.key); {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			found = true
			return
		}
	}

	return
}

// attach - Links a new red node for key under parent, restores the invariants and returns the new node
func (T *Tree[K, V]) attach(parent *node[K, V], key K) *node[K, V] {
	z := &node[K, V]{key: key, color: red, parent: parent}

	switch {
	case parent == nil:
		T.root = z
	case cmp.Less(key, parent.key):
		parent.left = z
	default:
		parent.right = z
	}

	T.size++
	T.insertFixup(z)

	return z
}

// rotateLeft - Moves the right child of x up to take its place
func (T *Tree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right

	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}

	y.parent = x.parent
	switch {
	case x.parent == nil:
		T.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}

	y.left = x
	x.parent = y

	T.counters.Rotate()
}

// rotateRight - Moves the left child of x up to take its place
func (T *Tree[K, V]) rotateRight(x *node[K, V]) {
	y := x.left

	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}

	y.parent = x.parent
	switch {
	case x.parent == nil:
		T.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}

	y.right = x
	x.parent = y

	T.counters.Rotate()
}

// insertFixup - Restores the invariants after z was attached as a red node
func (T *Tree[K, V]) insertFixup(z *node[K, V]) {
	for isRed(z.parent) {
		p := z.parent
		g := p.parent // a red node is never the root, so g exists

		if p == g.left {
			if u := g.right; isRed(u) {
				// Case 1: red uncle, push the red up
				p.color = black
				u.color = black
				g.color = red
				z = g
				continue
			}

			if z == p.right {
				// Case 2: inner child, turn it into an outer child
				z = p
				T.rotateLeft(z)
				p = z.parent
			}

			// Case 3: outer child
			p.color = black
			g.color = red
			T.rotateRight(g)
		} else {
			if u := g.left; isRed(u) {
				p.color = black
				u.color = black
				g.color = red
				z = g
				continue
			}

			if z == p.left {
				z = p
				T.rotateRight(z)
				p = z.parent
			}

			p.color = black
			g.color = red
			T.rotateLeft(g)
		}
	}

	T.root.color = black
}

// delete - Unlinks n from the tree. A node with two children first takes over the entry of its in-order
// successor, and the successor is unlinked instead.
func (T *Tree[K, V]) delete(n *node[K, V]) {
	if n.left != nil && n.right != nil {
		s := n.right
		for s.left != nil {
			s = s.left
		}
		n.key, n.value = s.key, s.value
		n = s
	}

	child := n.left
	if child == nil {
		child = n.right
	}

	parent := n.parent
	if child != nil {
		child.parent = parent
	}

	switch {
	case parent == nil:
		T.root = child
	case n == parent.left:
		parent.left = child
	default:
		parent.right = child
	}

	T.size--

	if n.color == black {
		T.deleteFixup(child, parent)
	}
}

// deleteFixup - Removes the extra black carried by x after a black node was unlinked above it.
// x may be nil, so its parent is passed along explicitly.
func (T *Tree[K, V]) deleteFixup(x, parent *node[K, V]) {
	for x != T.root && !isRed(x) {
		if x == parent.left {
			w := parent.right
			if isRed(w) {
				// Case 1: red sibling, rotate it away
				w.color = black
				parent.color = red
				T.rotateLeft(parent)
				w = parent.right
			}

			if !isRed(w.left) && !isRed(w.right) {
				// Case 2: black sibling with black children, move the extra black up
				w.color = red
				x = parent
				parent = x.parent
				continue
			}

			if !isRed(w.right) {
				// Case 3: make the far child of the sibling red
				w.left.color = black
				w.color = red
				T.rotateRight(w)
				w = parent.right
			}

			// Case 4
			w.color = parent.color
			parent.color = black
			w.right.color = black
			T.rotateLeft(parent)
			x = T.root
			parent = nil
		} else {
			w := parent.left
			if isRed(w) {
				w.color = black
				parent.color = red
				T.rotateRight(parent)
				w = parent.left
			}

			if !isRed(w.left) && !isRed(w.right) {
				w.color = red
				x = parent
				parent = x.parent
				continue
			}

			if !isRed(w.left) {
				w.right.color = black
				w.color = red
				T.rotateLeft(w)
				w = parent.left
			}

			w.color = parent.color
			parent.color = black
			w.left.color = black
			T.rotateRight(parent)
			x = T.root
			parent = nil
		}
	}

	if x != nil {
		x.color = black
	}
}
