package types

import (
	"fmt"
	"strconv"
)

// Unbounded marks the open upper end of a Range, written "*" in its
// declaration form.
const Unbounded = -1

// Range bounds a count: how many value tokens an argument consumes (arity),
// which operand slots a positional parameter covers (index), or how often an
// argument group may occur (multiplicity).
type Range struct {
	Min int
	Max int
}

// NewRange returns a bounded range. Pass Unbounded as max for an open upper
// end.
func NewRange(min, max int) Range {
	return Range{Min: min, Max: max}
}

// Exactly returns a range with identical lower and upper bounds.
func Exactly(n int) Range {
	return Range{Min: n, Max: n}
}

// Variable reports whether the upper bound is open.
func (r Range) Variable() bool {
	return r.Max == Unbounded
}

// Contains reports whether n falls within the range.
func (r Range) Contains(n int) bool {
	if n < r.Min {
		return false
	}
	return r.Variable() || n <= r.Max
}

// CanTake reports whether the range admits more than the n items already
// taken.
func (r Range) CanTake(n int) bool {
	return r.Variable() || n < r.Max
}

// Valid reports whether the bounds are ordered and non-negative.
func (r Range) Valid() bool {
	if r.Min < 0 {
		return false
	}
	return r.Variable() || r.Max >= r.Min
}

// String renders the range in its declaration form: "1", "0..2", "1..*".
func (r Range) String() string {
	if r.Variable() {
		return fmt.Sprintf("%d..*", r.Min)
	}
	if r.Min == r.Max {
		return strconv.Itoa(r.Min)
	}
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// KeyValue denotes one parsed key/value pair (map-typed arguments produce one
// per consumed fragment).
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
