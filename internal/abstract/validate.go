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

	"github.com/sirupsen/logrus"
)

// ViolationKind identifies which structural invariant a Violation breaks.
type ViolationKind int

const (
	_ ViolationKind = iota
	// InvalidColor is a node colored DoubleBlack, or with no known color.
	InvalidColor
	// DeficientSubtree is a deficiency marker left behind by a removal.
	DeficientSubtree
	// OrderViolation is a key outside the range implied by its ancestors,
	// which includes duplicate keys.
	OrderViolation
	// RedRedAdjacency is a red node with a red child.
	RedRedAdjacency
	// BlackHeightMismatch is a node whose subtrees have different
	// black-heights.
	BlackHeightMismatch
	// LengthMismatch is a disagreement between the tracked length of the
	// tree and the number of nodes actually reachable.
	LengthMismatch
)

var violationKindStrings = [...]string{
	InvalidColor:        "invalid color",
	DeficientSubtree:    "deficient subtree",
	OrderViolation:      "order violation",
	RedRedAdjacency:     "red-red adjacency",
	BlackHeightMismatch: "black-height mismatch",
	LengthMismatch:      "length mismatch",
}

func (k ViolationKind) String() string {
	if k <= 0 || int(k) >= len(violationKindStrings) {
		return fmt.Sprintf("ViolationKind(%d)", int(k))
	}
	return violationKindStrings[k]
}

// Violation describes the first broken invariant found by Validate.
type Violation struct {
	Kind ViolationKind

	// Path is the route from the root to the offending position, one 'L' or
	// 'R' per level. The root is the empty path.
	Path string

	// Key is the key of the offending node. It is nil for an empty
	// position and for LengthMismatch.
	Key interface{}

	// Color is the color of the offending node.
	Color Color

	// Left and Right are the black-heights of the two subtrees for
	// BlackHeightMismatch, and the tracked and counted lengths for
	// LengthMismatch.
	Left, Right int
}

func (v *Violation) Error() string {
	switch v.Kind {
	case BlackHeightMismatch:
		return fmt.Sprintf("%v at %q (key %v): left %d, right %d",
			v.Kind, v.Path, v.Key, v.Left, v.Right)
	case LengthMismatch:
		return fmt.Sprintf("%v: tracked %d, counted %d", v.Kind, v.Left, v.Right)
	case DeficientSubtree:
		return fmt.Sprintf("%v at %q", v.Kind, v.Path)
	default:
		return fmt.Sprintf("%v at %q (key %v, color %v)", v.Kind, v.Path, v.Key, v.Color)
	}
}

// Unwrap makes every Violation match ErrInvariantViolated.
func (v *Violation) Unwrap() error { return ErrInvariantViolated }

// Stats summarizes a tree which passed validation.
type Stats struct {
	// Len is the number of entries.
	Len int
	// Height is the number of nodes on the longest root-to-leaf path.
	Height int
	// BlackHeight counts the black nodes on any path from the root down to
	// an empty subtree, counting the empty subtree itself as one.
	BlackHeight int
}

type bound[K any] struct {
	key K
	ok  bool
}

// check validates the subtree s and returns its black-height, height, and
// node count.
func (td *treeData[K, V]) check(
	s subtree[K, V], path []byte, lo, hi bound[K],
) (blackHeight, height, count int, v *Violation) {
	if s.deficit {
		return 0, 0, 0, &Violation{Kind: DeficientSubtree, Path: string(path)}
	}
	n := s.n
	if n == nil {
		return 1, 0, 0, nil
	}
	at := func(kind ViolationKind) *Violation {
		return &Violation{Kind: kind, Path: string(path), Key: n.key, Color: n.color}
	}
	if n.color != Red && n.color != Black {
		return 0, 0, 0, at(InvalidColor)
	}
	if (lo.ok && td.cmp(n.key, lo.key) <= 0) || (hi.ok && td.cmp(n.key, hi.key) >= 0) {
		return 0, 0, 0, at(OrderViolation)
	}
	if n.color == Red && (n.left.isRed() || n.right.isRed()) {
		return 0, 0, 0, at(RedRedAdjacency)
	}
	here := bound[K]{key: n.key, ok: true}
	lbh, lh, lc, v := td.check(n.left, append(path, 'L'), lo, here)
	if v != nil {
		return 0, 0, 0, v
	}
	rbh, rh, rc, v := td.check(n.right, append(path, 'R'), here, hi)
	if v != nil {
		return 0, 0, 0, v
	}
	if lbh != rbh {
		v = at(BlackHeightMismatch)
		v.Left, v.Right = lbh, rbh
		return 0, 0, 0, v
	}
	if n.color == Black {
		lbh++
	}
	if rh > lh {
		lh = rh
	}
	return lbh, lh + 1, lc + rc + 1, nil
}

// validate checks the tree rooted at root holding length entries.
func (td *treeData[K, V]) validate(root subtree[K, V], length int) (Stats, error) {
	bh, h, count, v := td.check(root, nil, bound[K]{}, bound[K]{})
	if v == nil && count != length {
		v = &Violation{Kind: LengthMismatch, Left: length, Right: count}
	}
	if v != nil {
		td.log.WithFields(logrus.Fields{
			"kind": v.Kind.String(), "path": v.Path, "key": v.Key,
		}).Warn("invariant violated")
		return Stats{}, v
	}
	return Stats{Len: count, Height: h, BlackHeight: bh}, nil
}
