// Package rbtree provides an ordered map backed by a red-black tree.
//
// Insert, Remove and Get run in O(log n) worst-case time. The tree keeps
// itself balanced by repairing red-red edges bottom-up after an insertion
// and double-black deficiencies bottom-up after a removal.
package rbtree

import (
	"cmp"
	"io"

	"github.com/ajwerner/rbtree/internal/abstract"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

type (
	// Color is the color of a node as reported by Dump.
	Color = abstract.Color
	// Violation describes a broken invariant reported by Validate.
	Violation = abstract.Violation
	// ViolationKind identifies the invariant a Violation breaks.
	ViolationKind = abstract.ViolationKind
	// Stats summarizes a valid tree.
	Stats = abstract.Stats
	// Option configures a Map.
	Option = abstract.Option
)

const (
	Red   = abstract.Red
	Black = abstract.Black
)

const (
	InvalidColor        = abstract.InvalidColor
	DeficientSubtree    = abstract.DeficientSubtree
	OrderViolation      = abstract.OrderViolation
	RedRedAdjacency     = abstract.RedRedAdjacency
	BlackHeightMismatch = abstract.BlackHeightMismatch
	LengthMismatch      = abstract.LengthMismatch
)

// ErrInvariantViolated matches every Violation via errors.Is.
var ErrInvariantViolated = abstract.ErrInvariantViolated

// WithLogger sets the logger which receives rebalancing traces and
// validation warnings. The default is logrus.StandardLogger().
func WithLogger(l *logrus.Logger) Option { return abstract.WithLogger(l) }

// WithInvariantChecks validates the whole tree after every mutation and
// panics on a violation.
func WithInvariantChecks() Option { return abstract.WithInvariantChecks() }

// Entry is a node of the tree as reported by Dump.
type Entry[K, V any] struct {
	Key   K
	Value V
	Color Color
	Depth int
}

// Map is an ordered map from K to V.
type Map[K, V any] struct {
	m abstract.Map[K, V]
}

// MakeMap returns an empty Map ordered by compare, which must return a
// negative number, zero, or a positive number as a is less than, equal to,
// or greater than b.
func MakeMap[K, V any](compare func(a, b K) int, opts ...Option) *Map[K, V] {
	return &Map[K, V]{abstract.MakeMap[K, V](compare, opts...)}
}

// MakeOrderedMap returns an empty Map using the natural order of K.
func MakeOrderedMap[K constraints.Ordered, V any](opts ...Option) *Map[K, V] {
	return MakeMap[K, V](cmp.Compare[K], opts...)
}

// Insert sets the value for key, returning the previous value if there was
// one.
func (t *Map[K, V]) Insert(key K, value V) (old V, replaced bool) {
	return t.m.Insert(key, value)
}

// Remove deletes key, returning its value if it was present.
func (t *Map[K, V]) Remove(key K) (old V, removed bool) {
	return t.m.Remove(key)
}

// Get returns the value for key.
func (t *Map[K, V]) Get(key K) (V, bool) { return t.m.Get(key) }

// Len returns the number of entries.
func (t *Map[K, V]) Len() int { return t.m.Len() }

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Map[K, V]) Height() int { return t.m.Height() }

// Reset removes all entries.
func (t *Map[K, V]) Reset() { t.m.Reset() }

// Validate checks the red-black invariants. On failure the error is a
// *Violation.
func (t *Map[K, V]) Validate() (Stats, error) { return t.m.Validate() }

// Keys returns all keys in ascending order.
func (t *Map[K, V]) Keys() []K { return t.m.Keys() }

// Dump returns the nodes of the tree in pre-order.
func (t *Map[K, V]) Dump() []Entry[K, V] {
	d := t.m.Dump()
	out := make([]Entry[K, V], len(d))
	for i, e := range d {
		out[i] = Entry[K, V](e)
	}
	return out
}

// Fprint writes an indented rendering of the tree to w, one node per line.
func (t *Map[K, V]) Fprint(w io.Writer) error { return t.m.Fprint(w) }

func (t *Map[K, V]) String() string { return t.m.String() }
