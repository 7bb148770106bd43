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

// insert adds key to the subtree s, returning the new subtree root. If the
// key was already present only its value is overwritten, the previous value
// is returned with replaced set, and no rebalancing happens on the way up.
func (td *treeData[K, V]) insert(
	s subtree[K, V], key K, value V,
) (_ subtree[K, V], old V, replaced bool) {
	n := s.n
	if n == nil {
		return present(td.np.getNode(key, value)), old, false
	}
	switch c := td.cmp(key, n.key); {
	case c < 0:
		n.left, old, replaced = td.insert(n.left, key, value)
	case c > 0:
		n.right, old, replaced = td.insert(n.right, key, value)
	default:
		old, n.value = n.value, value
		return s, old, true
	}
	if replaced {
		return s, old, true
	}
	return present(td.fixRedEdge(n)), old, false
}

// fixRedEdge removes a red-red edge between a child of g and a grandchild
// of g, returning the new root of the subtree.
func (td *treeData[K, V]) fixRedEdge(g *node[K, V]) *node[K, V] {
	if g.left.isRed() && g.right.isRed() {
		td.trace("insert", "push-black", g.key)
		g.pushBlack()
		return g
	}

	// Red edge to the left of g.
	if g.left.isRed() && g.left.n.right.isRed() {
		td.trace("insert", "rotate-left-child", g.key)
		g.left = present(rotateLeft(g.left.n))
	}
	if g.left.isRed() && g.left.n.left.isRed() {
		td.trace("insert", "flip-right", g.key)
		return flipRight(g)
	}

	// Red edge to the right of g.
	if g.right.isRed() && g.right.n.left.isRed() {
		td.trace("insert", "rotate-right-child", g.key)
		g.right = present(rotateRight(g.right.n))
	}
	if g.right.isRed() && g.right.n.right.isRed() {
		td.trace("insert", "flip-left", g.key)
		return flipLeft(g)
	}
	return g
}
