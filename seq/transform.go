package seq

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
)

type (
	// MapFunc is a pure mapping function used by Map that transforms a
	// value of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// Predicate reports whether the provided value should be kept.
	Predicate[T any] func(item T) bool

	// EqFunc reports whether two values are equal. Used by UniqueFunc for
	// element types that are not comparable.
	EqFunc[T any] func(a, b T) bool

	// KeyFunc extracts the dedup key of a value for UniqueByKey.
	KeyFunc[T any] func(item T) []byte
)

// Map applies fn to every element in order and returns the owning result.
// The output element type may differ from the input's; length is preserved.
func Map[In, Out any](src Seq[In], fn MapFunc[In, Out]) Buffer[Out] {
	out := make([]Out, src.Len())
	for i := range out {
		out[i] = fn(src.At(i))
	}
	return Buffer[Out]{items: out}
}

// Filter keeps the elements for which predicate returns true, preserving
// their relative order.
func Filter[T any](src Seq[T], predicate Predicate[T]) Buffer[T] {
	out := make([]T, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		if item := src.At(i); predicate(item) {
			out = append(out, item)
		}
	}
	return Buffer[T]{items: out}
}

// Reverse returns the elements in reverse order: out[i] = src[len-1-i].
func Reverse[T any](src Seq[T]) Buffer[T] {
	n := src.Len()
	out := make([]T, n)
	for i := range out {
		out[i] = src.At(n - 1 - i)
	}
	return Buffer[T]{items: out}
}

// Unique deduplicates, keeping the first occurrence of each element and the
// order of first occurrences. Runs in O(n) over a comparable element type.
func Unique[T comparable](src Seq[T]) Buffer[T] {
	out := make([]T, 0, src.Len())
	seen := make(map[T]struct{}, src.Len())
	for i := 0; i < src.Len(); i++ {
		item := src.At(i)
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return Buffer[T]{items: out}
}

// UniqueFunc is Unique for element types that are not comparable: eq decides
// equality. First occurrences win and keep their order. O(n²); prefer Unique
// or UniqueByKey when the element type allows it.
func UniqueFunc[T any](src Seq[T], eq EqFunc[T]) Buffer[T] {
	out := make([]T, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		item := src.At(i)
		dup := false
		for _, kept := range out {
			if eq(kept, item) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, item)
		}
	}
	return Buffer[T]{items: out}
}

// UniqueByKey deduplicates by an explicit key, bucketing keys by 64-bit
// xxhash so the expected cost stays O(n) regardless of key width. Keys that
// collide on the hash are disambiguated byte-wise. First occurrences win and
// keep their order.
func UniqueByKey[T any](src Seq[T], key KeyFunc[T]) Buffer[T] {
	out := make([]T, 0, src.Len())
	buckets := make(map[uint64][][]byte, src.Len())
	for i := 0; i < src.Len(); i++ {
		item := src.At(i)
		k := key(item)
		h := xxhash.Sum64(k)
		dup := false
		for _, seen := range buckets[h] {
			if bytes.Equal(seen, k) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		buckets[h] = append(buckets[h], k)
		out = append(out, item)
	}
	return Buffer[T]{items: out}
}

// Concat returns a's elements followed by b's.
func Concat[T any](a, b Seq[T]) Buffer[T] {
	out := make([]T, 0, a.Len()+b.Len())
	out = append(out, a.Items()...)
	out = append(out, b.Items()...)
	return Buffer[T]{items: out}
}

// Pad returns a sequence of exactly newlen elements: src truncated when it is
// longer, otherwise src followed by copies of padval. Negative newlen is
// clamped to zero.
func Pad[T any](src Seq[T], newlen int, padval T) Buffer[T] {
	if newlen < 0 {
		newlen = 0
	}
	out := make([]T, newlen)
	n := copy(out, src.Items())
	for i := n; i < newlen; i++ {
		out[i] = padval
	}
	return Buffer[T]{items: out}
}

// Repeat concatenates src with itself times times, in order. Non-positive
// times yields an empty sequence.
func Repeat[T any](src Seq[T], times int) Buffer[T] {
	if times < 0 {
		times = 0
	}
	out := make([]T, 0, src.Len()*times)
	for i := 0; i < times; i++ {
		out = append(out, src.Items()...)
	}
	return Buffer[T]{items: out}
}

// Scan computes the inclusive prefix scan of src: out[0] = fn(init, src[0]),
// out[i] = fn(out[i-1], src[i]). Output length equals input length.
func Scan[T any](src Seq[T], init T, fn func(acc, item T) T) Buffer[T] {
	out := make([]T, src.Len())
	acc := init
	for i := range out {
		acc = fn(acc, src.At(i))
		out[i] = acc
	}
	return Buffer[T]{items: out}
}

// Zip pairs a and b index-wise, truncating to the shorter input:
// out[i] = Pair{a[i], b[i]} for i < min(len(a), len(b)).
func Zip[A, B any](a Seq[A], b Seq[B]) Buffer[Pair[A, B]] {
	n := min(a.Len(), b.Len())
	out := make([]Pair[A, B], n)
	for i := range out {
		out[i] = Pair[A, B]{A: a.At(i), B: b.At(i)}
	}
	return Buffer[Pair[A, B]]{items: out}
}

// ZipWith pairs a and b index-wise and combines each pair with fn.
// Equivalent to Map(Zip(a, b), ...) without the intermediate pairs.
func ZipWith[A, B, Out any](a Seq[A], b Seq[B], fn func(a A, b B) Out) Buffer[Out] {
	n := min(a.Len(), b.Len())
	out := make([]Out, n)
	for i := range out {
		out[i] = fn(a.At(i), b.At(i))
	}
	return Buffer[Out]{items: out}
}

// Flatten concatenates the inner sequences of src in appearance order.
func Flatten[T any](src Seq[Seq[T]]) Buffer[T] {
	total := 0
	for i := 0; i < src.Len(); i++ {
		total += src.At(i).Len()
	}
	out := make([]T, 0, total)
	for i := 0; i < src.Len(); i++ {
		out = append(out, src.At(i).Items()...)
	}
	return Buffer[T]{items: out}
}

// Partition splits src into the elements that satisfy predicate (Yes) and
// those that do not (No). The split is stable: both halves preserve the
// relative order of the source, and together they are a permutation of it.
func Partition[T any](src Seq[T], predicate Predicate[T]) PartitionResult[T] {
	yes := make([]T, 0, src.Len())
	no := make([]T, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		if item := src.At(i); predicate(item) {
			yes = append(yes, item)
		} else {
			no = append(no, item)
		}
	}
	return PartitionResult[T]{
		Yes: Buffer[T]{items: yes},
		No:  Buffer[T]{items: no},
	}
}
