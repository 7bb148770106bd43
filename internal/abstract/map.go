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

import (
	"fmt"
	"io"
	"strings"
)

// Map is an ordered map implemented as a red-black tree.
//
// Map is not safe for concurrent use. Callers that share a Map between
// goroutines must synchronize all access to it.
type Map[K, V any] struct {
	root   subtree[K, V]
	length int
	td     treeData[K, V]
}

// MakeMap constructs a new Map ordered by cmp.
func MakeMap[K, V any](cmp func(K, K) int, opts ...Option) Map[K, V] {
	return Map[K, V]{td: makeTreeData[K, V](cmp, opts...)}
}

// Insert adds key with value to the map. If key is already present its value
// is replaced and the previous value is returned with replaced set; the
// shape and colors of the tree do not change in that case.
func (t *Map[K, V]) Insert(key K, value V) (old V, replaced bool) {
	t.root, old, replaced = t.td.insert(t.root, key, value)
	if t.root.isRed() {
		t.root.n.color = Black
	}
	if !replaced {
		t.length++
	}
	t.checkAfter("insert")
	return old, replaced
}

// Remove deletes key from the map, returning its value. Removing a key which
// is not present is a no-op and reports removed as false.
func (t *Map[K, V]) Remove(key K) (old V, removed bool) {
	t.root, old, removed = t.td.remove(t.root, key)
	if t.root.isDoubleBlack() {
		// Nothing above the root needs the missing unit of black height.
		if t.root.deficit {
			t.root = subtree[K, V]{}
		} else {
			t.root.n.color = Black
		}
	}
	if removed {
		t.length--
	}
	t.checkAfter("remove")
	return old, removed
}

func (t *Map[K, V]) checkAfter(op string) {
	if !t.td.CheckInvariants {
		return
	}
	if _, err := t.Validate(); err != nil {
		panic(fmt.Errorf("%s: %w", op, err))
	}
}

// Get returns the value stored for key.
func (t *Map[K, V]) Get(key K) (_ V, ok bool) {
	for n := t.root.n; n != nil; {
		switch c := t.td.cmp(key, n.key); {
		case c < 0:
			n = n.left.n
		case c > 0:
			n = n.right.n
		default:
			return n.value, true
		}
	}
	var v V
	return v, false
}

// Validate walks the whole tree and checks every structural invariant. It
// returns a *Violation describing the first problem found in pre-order.
func (t *Map[K, V]) Validate() (Stats, error) {
	return t.td.validate(t.root, t.length)
}

// Dump returns every node in pre-order along with its color and depth.
func (t *Map[K, V]) Dump() []Entry[K, V] {
	return dump(t.root)
}

// Keys returns all keys in ascending order.
func (t *Map[K, V]) Keys() []K {
	return keys(t.root)
}

// Fprint writes an indented, pre-order rendering of the tree to w.
func (t *Map[K, V]) Fprint(w io.Writer) error {
	return fprint(w, t.root)
}

// Reset removes all items from the Map. In doing so, it allows memory held
// by the Map to be recycled.
func (t *Map[K, V]) Reset() {
	t.td.log.WithField("len", t.length).Debug("reset")
	preorder(t.root, func(n *node[K, V], _ int) {
		t.td.np.putNode(n)
	})
	t.root = subtree[K, V]{}
	t.length = 0
}

// Height returns the number of nodes on the longest path from the root.
func (t *Map[K, V]) Height() int {
	return height(t.root)
}

// Len returns the number of items currently in the Map.
func (t *Map[K, V]) Len() int {
	return t.length
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Map[K, V]) String() string {
	if t.root.n == nil {
		return ";"
	}
	var b strings.Builder
	t.root.n.writeString(&b)
	return b.String()
}
