package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, each associated with a month.
//
// A month can hold several values, they are kept in insertion order. Months are
// always sorted, whatever the order they were appended in.
type History[T any] struct {
	months []Month
	values [][]T
}

// Len returns the number of values in the history.
func (h *History[T]) Len() int {
	n := 0
	for _, v := range h.values {
		n += len(v)
	}
	return n
}

// Append adds a value to the history at the given month.
//
// Existing values at that month are kept, q is appended after them.
func (h *History[T]) Append(on Month, q T) *History[T] {
	i, found := slices.BinarySearchFunc(h.months, on, Month.Compare)
	if found {
		h.values[i] = append(h.values[i], q)
		return h
	}
	h.months = slices.Insert(h.months, i, on)
	h.values = slices.Insert(h.values, i, []T{q})
	return h
}

// Latest returns the latest month and value in the history.
// If the history is empty, it returns zero values and false.
func (h *History[T]) Latest() (on Month, value T, ok bool) {
	last := len(h.months) - 1
	if last < 0 {
		return Month{}, value, false
	}
	bucket := h.values[last]
	return h.months[last], bucket[len(bucket)-1], true
}

// Values returns an iterator over all month/value pairs in the history, in chronological order.
func (h *History[T]) Values() iter.Seq2[Month, T] {
	return func(yield func(Month, T) bool) {
		for i, on := range h.months {
			for _, v := range h.values[i] {
				if !yield(on, v) {
					return
				}
			}
		}
	}
}

// Backward returns an iterator over all month/value pairs in the history,
// from the most recent to the oldest.
func (h *History[T]) Backward() iter.Seq2[Month, T] {
	return func(yield func(Month, T) bool) {
		for i := len(h.months) - 1; i >= 0; i-- {
			bucket := h.values[i]
			for j := len(bucket) - 1; j >= 0; j-- {
				if !yield(h.months[i], bucket[j]) {
					return
				}
			}
		}
	}
}
