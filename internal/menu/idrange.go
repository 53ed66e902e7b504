package menu

import (
	"fmt"
	"iter"
)

// Range maps a contiguous block of command identifiers onto an ordered list
// of values: the identifier first+i stands for values[i].
type Range[T comparable] struct {
	name   string
	first  CommandID
	last   CommandID
	values []T
}

// newRange panics unless the identifier span matches the number of distinct
// values exactly.
func newRange[T comparable](name string, first, last CommandID, values []T) Range[T] {
	if span := int(last-first) + 1; span != len(values) {
		panic(fmt.Sprintf("menu: %s range %d..%d spans %d identifiers but lists %d values",
			name, first, last, span, len(values)))
	}

	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			panic(fmt.Sprintf("menu: %s range lists %v twice", name, v))
		}
		seen[v] = struct{}{}
	}

	return Range[T]{name: name, first: first, last: last, values: values}
}

func (r Range[T]) First() CommandID { return r.first }
func (r Range[T]) Last() CommandID  { return r.last }
func (r Range[T]) Len() int         { return len(r.values) }

// Contains reports whether id belongs to the range.
func (r Range[T]) Contains(id CommandID) bool {
	return id >= r.first && id <= r.last
}

// ID returns the identifier standing for v.
func (r Range[T]) ID(v T) (CommandID, bool) {
	for i, x := range r.values {
		if x == v {
			return r.first + CommandID(i), true
		}
	}
	return 0, false
}

// Value returns the value id stands for. Calling it with an identifier
// outside the range is a programming error and panics.
func (r Range[T]) Value(id CommandID) T {
	if !r.Contains(id) {
		panic(fmt.Sprintf("menu: identifier %d outside %s range %d..%d", id, r.name, r.first, r.last))
	}
	return r.values[id-r.first]
}

// All iterates identifiers and values in range order.
func (r Range[T]) All() iter.Seq2[CommandID, T] {
	return func(yield func(CommandID, T) bool) {
		for i, v := range r.values {
			if !yield(r.first+CommandID(i), v) {
				return
			}
		}
	}
}
