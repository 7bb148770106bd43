// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

// node is a single entry of the tree. A node exclusively owns both of its
// subtrees; there are no parent pointers.
type node[K, V any] struct {
	key         K
	value       V
	color       Color
	left, right subtree[K, V]
}

// subtree is whatever occupies a child position. It is one of:
//
//   - empty: n == nil, deficit == false
//   - deficient: n == nil, deficit == true. The position used to hold one
//     unit of black height that an ancestor still has to restore.
//   - present: n != nil, deficit == false
type subtree[K, V any] struct {
	n       *node[K, V]
	deficit bool
}

func present[K, V any](n *node[K, V]) subtree[K, V] {
	return subtree[K, V]{n: n}
}

func deficient[K, V any]() subtree[K, V] {
	return subtree[K, V]{deficit: true}
}

func (s subtree[K, V]) isEmpty() bool { return s.n == nil && !s.deficit }

func (s subtree[K, V]) isRed() bool { return s.n != nil && s.n.color == Red }

// isBlack is true for black nodes and for plain empty subtrees.
func (s subtree[K, V]) isBlack() bool {
	if s.n == nil {
		return !s.deficit
	}
	return s.n.color == Black
}

// isDoubleBlack is true for the deficiency marker and for DoubleBlack nodes.
func (s subtree[K, V]) isDoubleBlack() bool {
	return s.deficit || (s.n != nil && s.n.color == DoubleBlack)
}

func (s subtree[K, V]) mustNode() *node[K, V] {
	assertf(s.n != nil, "expected a node, found an empty subtree (deficit=%t)", s.deficit)
	return s.n
}

func (n *node[K, V]) increment() { n.color = n.color.increment() }

func (n *node[K, V]) decrement() { n.color = n.color.decrement() }

// pushBlack moves one unit of blackness from n into both of its children.
func (n *node[K, V]) pushBlack() {
	n.decrement()
	n.left.mustNode().increment()
	n.right.mustNode().increment()
}

// pullBlack moves one unit of blackness from both children up into n. A
// deficient child has nothing left to give and simply becomes empty.
func (n *node[K, V]) pullBlack() {
	n.increment()
	n.left = n.left.pulled()
	n.right = n.right.pulled()
}

func (s subtree[K, V]) pulled() subtree[K, V] {
	if s.deficit {
		return subtree[K, V]{}
	}
	s.mustNode().decrement()
	return s
}

// rotateLeft makes n the left child of its right child and returns the new
// subtree root.
//
//	    n                u
//	   / \              / \
//	  a   u     →      n   c
//	     / \          / \
//	    b   c        a   b
func rotateLeft[K, V any](n *node[K, V]) *node[K, V] {
	u := n.right.mustNode()
	n.right = u.left
	u.left = present(n)
	return u
}

// rotateRight is the mirror image of rotateLeft.
func rotateRight[K, V any](n *node[K, V]) *node[K, V] {
	u := n.left.mustNode()
	n.left = u.right
	u.right = present(n)
	return u
}

// flipLeft swaps the colors of n and its right child, then rotates left.
// The new root ends up with the color n had.
func flipLeft[K, V any](n *node[K, V]) *node[K, V] {
	u := n.right.mustNode()
	n.color, u.color = u.color, n.color
	return rotateLeft(n)
}

func flipRight[K, V any](n *node[K, V]) *node[K, V] {
	u := n.left.mustNode()
	n.color, u.color = u.color, n.color
	return rotateRight(n)
}
