package internal

import (
	"iter"
	"slices"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Flatten concatenates groups of values.
func Flatten[T any](groups [][]T) []T {
	seqs := make([]iter.Seq[T], len(groups))
	for n, group := range groups {
		seqs[n] = slices.Values(group)
	}

	return slices.Collect(IterSeqConcat(seqs...))
}
