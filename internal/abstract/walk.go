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

// Entry is one node of the tree as reported by Dump.
type Entry[K, V any] struct {
	Key   K
	Value V
	Color Color
	// Depth is the distance from the root, which has depth 0.
	Depth int
}

// preorder calls f on every node, parents before children and left before
// right. Both children of a node are pushed before f runs, so f may release
// the node.
func preorder[K, V any](root subtree[K, V], f func(n *node[K, V], depth int)) {
	if root.n == nil {
		return
	}
	var s iterStack[K, V]
	s.push(iterFrame[K, V]{node: root.n})
	for s.len() > 0 {
		fr := s.pop()
		if fr.right.n != nil {
			s.push(iterFrame[K, V]{node: fr.right.n, depth: fr.depth + 1})
		}
		if fr.left.n != nil {
			s.push(iterFrame[K, V]{node: fr.left.n, depth: fr.depth + 1})
		}
		f(fr.node, fr.depth)
	}
}

// inorder calls f on every node in key order.
func inorder[K, V any](root subtree[K, V], f func(n *node[K, V])) {
	var s iterStack[K, V]
	for cur := root.n; cur != nil || s.len() > 0; {
		for ; cur != nil; cur = cur.left.n {
			s.push(iterFrame[K, V]{node: cur})
		}
		fr := s.pop()
		f(fr.node)
		cur = fr.right.n
	}
}

func dump[K, V any](root subtree[K, V]) []Entry[K, V] {
	var out []Entry[K, V]
	preorder(root, func(n *node[K, V], depth int) {
		out = append(out, Entry[K, V]{
			Key: n.key, Value: n.value, Color: n.color, Depth: depth,
		})
	})
	return out
}

func keys[K, V any](root subtree[K, V]) []K {
	var out []K
	inorder(root, func(n *node[K, V]) { out = append(out, n.key) })
	return out
}

func height[K, V any](root subtree[K, V]) (h int) {
	preorder(root, func(_ *node[K, V], depth int) {
		if depth+1 > h {
			h = depth + 1
		}
	})
	return h
}

// fprint writes one line per position in pre-order, indenting children by
// four spaces. A node prints as key:COLOR:value. An empty child prints as
// nil, but only when its sibling is present.
func fprint[K, V any](w io.Writer, root subtree[K, V]) error {
	var s iterStack[K, V]
	s.push(iterFrame[K, V]{node: root.n})
	for s.len() > 0 {
		fr := s.pop()
		indent := strings.Repeat(" ", 4*fr.depth)
		if fr.node == nil {
			if _, err := fmt.Fprintf(w, "%snil\n", indent); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%v:%v:%v\n", indent, fr.key, fr.color, fr.value); err != nil {
			return err
		}
		if fr.left.n != nil || fr.right.n != nil {
			s.push(iterFrame[K, V]{node: fr.right.n, depth: fr.depth + 1})
			s.push(iterFrame[K, V]{node: fr.left.n, depth: fr.depth + 1})
		}
	}
	return nil
}

// writeString renders the subtree in a format similar to
// https://en.wikipedia.org/wiki/Newick_format. A node with children is
// written as (left)key:value(right); a leaf as key:value.
func (n *node[K, V]) writeString(b *strings.Builder) {
	if n.left.n == nil && n.right.n == nil {
		fmt.Fprintf(b, "%v:%v", n.key, n.value)
		return
	}
	b.WriteString("(")
	if n.left.n != nil {
		n.left.n.writeString(b)
	}
	fmt.Fprintf(b, ")%v:%v(", n.key, n.value)
	if n.right.n != nil {
		n.right.n.writeString(b)
	}
	b.WriteString(")")
}
