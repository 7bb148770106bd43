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

// remove removes key from the subtree s and returns the new subtree root,
// which may be the deficiency marker or a DoubleBlack node. The removed
// value is returned when found is set. A missing key leaves s untouched.
func (td *treeData[K, V]) remove(
	s subtree[K, V], key K,
) (_ subtree[K, V], old V, found bool) {
	n := s.n
	if n == nil {
		return s, old, false
	}
	switch c := td.cmp(key, n.key); {
	case c < 0:
		if n.left, old, found = td.remove(n.left, key); !found {
			return s, old, false
		}
	case c > 0:
		if n.right, old, found = td.remove(n.right, key); !found {
			return s, old, false
		}
	default:
		old = n.value
		if n.left.n == nil || n.right.n == nil {
			return td.splice(n), old, true
		}
		// Replace n's entry with its in-order successor and remove the
		// successor's node instead.
		n.right = td.extractMin(n.right.n, n)
	}
	return td.fixDoubleBlack(n), old, true
}

// extractMin removes the smallest entry of the subtree rooted at u after
// copying its key and value into dst. It returns the new subtree root.
func (td *treeData[K, V]) extractMin(u, dst *node[K, V]) subtree[K, V] {
	if u.left.n != nil {
		u.left = td.extractMin(u.left.n, dst)
		return td.fixDoubleBlack(u)
	}
	dst.key, dst.value = u.key, u.value
	return td.splice(u)
}

// splice removes w, which has at most one child, and returns what takes its
// place. Removing a black leaf leaves a deficiency behind.
func (td *treeData[K, V]) splice(w *node[K, V]) subtree[K, V] {
	var out subtree[K, V]
	switch {
	case w.color == Red:
		assertf(w.left.isEmpty() && w.right.isEmpty(),
			"spliced red node %v has children", w.key)
	case w.left.n != nil:
		assertf(w.left.isRed(), "only child of %v is %v", w.key, w.left.n.color)
		out = w.left
		out.n.color = Black
	case w.right.n != nil:
		assertf(w.right.isRed(), "only child of %v is %v", w.key, w.right.n.color)
		out = w.right
		out.n.color = Black
	default:
		assertf(w.color == Black, "spliced leaf %v is %v", w.key, w.color)
		td.trace("remove", "splice-black-leaf", w.key)
		out = deficient[K, V]()
	}
	td.np.putNode(w)
	return out
}

// fixDoubleBlack repairs a deficiency in either child of z. The returned
// root may itself be DoubleBlack, pushing the deficiency up one level.
func (td *treeData[K, V]) fixDoubleBlack(z *node[K, V]) subtree[K, V] {
	switch {
	case z.left.isDoubleBlack():
		return present(td.fixLeftDoubleBlack(z))
	case z.right.isDoubleBlack():
		return present(td.fixRightDoubleBlack(z))
	default:
		return present(z)
	}
}

func (td *treeData[K, V]) fixLeftDoubleBlack(z *node[K, V]) *node[K, V] {
	if z.right.isRed() {
		td.trace("remove", "flip-left-red-sibling", z.key)
		z = flipLeft(z)
		z.left = present(td.fixLeftDoubleBlackBlackSibling(z.left.n))
		return z
	}
	return td.fixLeftDoubleBlackBlackSibling(z)
}

func (td *treeData[K, V]) fixLeftDoubleBlackBlackSibling(z *node[K, V]) *node[K, V] {
	assertf(z.left.isDoubleBlack() && z.right.isBlack(),
		"left deficit at %v without a black sibling", z.key)
	td.trace("remove", "pull-black", z.key)
	z.pullBlack()
	sib := z.right.n
	if sib.left.isRed() && sib.right.isBlack() {
		td.trace("remove", "rotate-right-sibling", z.key)
		z.right = present(rotateRight(sib))
	}
	if z.right.n.right.isRed() {
		td.trace("remove", "flip-left-push-black", z.key)
		z = flipLeft(z)
		z.pushBlack()
	}
	return z
}

func (td *treeData[K, V]) fixRightDoubleBlack(z *node[K, V]) *node[K, V] {
	if z.left.isRed() {
		td.trace("remove", "flip-right-red-sibling", z.key)
		z = flipRight(z)
		z.right = present(td.fixRightDoubleBlackBlackSibling(z.right.n))
		return z
	}
	return td.fixRightDoubleBlackBlackSibling(z)
}

func (td *treeData[K, V]) fixRightDoubleBlackBlackSibling(z *node[K, V]) *node[K, V] {
	assertf(z.right.isDoubleBlack() && z.left.isBlack(),
		"right deficit at %v without a black sibling", z.key)
	td.trace("remove", "pull-black", z.key)
	z.pullBlack()
	sib := z.left.n
	if sib.right.isRed() && sib.left.isBlack() {
		td.trace("remove", "rotate-left-sibling", z.key)
		z.left = present(rotateLeft(sib))
	}
	if z.left.n.left.isRed() {
		td.trace("remove", "flip-right-push-black", z.key)
		z = flipRight(z)
		z.pushBlack()
	}
	return z
}
