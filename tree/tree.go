// Package tree holds the owned binary tree the parser builds.
//
// Every node owns its children outright: a subtree is handed to exactly one
// parent when that parent is created, so trees can neither share nodes nor
// form cycles.
package tree

type Tree[T any] struct {
	key   T
	left  *Tree[T]
	right *Tree[T]
}

func New[T any](key T) *Tree[T] {
	return &Tree[T]{key: key}
}

// NewBinary makes key the root over left and right, taking ownership of both.
func NewBinary[T any](key T, left, right *Tree[T]) *Tree[T] {
	return &Tree[T]{key: key, left: left, right: right}
}

func (t *Tree[T]) Key() T {
	return t.key
}

func (t *Tree[T]) Left() *Tree[T] {
	return t.left
}

func (t *Tree[T]) Right() *Tree[T] {
	return t.right
}

func (t *Tree[T]) IsLeaf() bool {
	return t.left == nil && t.right == nil
}

// Size counts the nodes of t.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return 1 + t.left.Size() + t.right.Size()
}

// Height is the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	l, r := t.left.Height(), t.right.Height()
	if l > r {
		return l + 1
	}
	return r + 1
}

// PostOrder calls fn on the left subtree, then the right, then t itself.
func (t *Tree[T]) PostOrder(fn func(*Tree[T])) {
	if t == nil {
		return
	}
	t.left.PostOrder(fn)
	t.right.PostOrder(fn)
	fn(t)
}
