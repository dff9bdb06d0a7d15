package seq

// ForEach invokes op on every element in order, for side effects only, and
// returns src unchanged so it can sit in the middle of a pipeline.
func ForEach[T any](src Seq[T], op func(item T)) Seq[T] {
	for i := 0; i < src.Len(); i++ {
		op(src.At(i))
	}
	return src
}

// Sum adds all elements, starting from the type's zero value. Zero for an
// empty sequence.
func Sum[T Numeric](src Seq[T]) T {
	var sum T
	for i := 0; i < src.Len(); i++ {
		sum += src.At(i)
	}
	return sum
}

// FoldLeft folds left to right: acc starts at init and per element becomes
// fn(acc, item). Note the combiner order; FoldRight's is flipped.
func FoldLeft[T, A any](src Seq[T], init A, fn func(acc A, item T) A) A {
	acc := init
	for i := 0; i < src.Len(); i++ {
		acc = fn(acc, src.At(i))
	}
	return acc
}

// FoldRight folds right to left: acc starts at init and per element, from
// last to first, becomes fn(item, acc).
func FoldRight[T, A any](src Seq[T], init A, fn func(item T, acc A) A) A {
	acc := init
	for i := src.Len() - 1; i >= 0; i-- {
		acc = fn(src.At(i), acc)
	}
	return acc
}

// Any reports whether predicate holds for at least one element, returning on
// the first match. False for an empty sequence.
func Any[T any](src Seq[T], predicate Predicate[T]) bool {
	for i := 0; i < src.Len(); i++ {
		if predicate(src.At(i)) {
			return true
		}
	}
	return false
}

// All reports whether predicate holds for every element, returning on the
// first miss. True for an empty sequence.
func All[T any](src Seq[T], predicate Predicate[T]) bool {
	for i := 0; i < src.Len(); i++ {
		if !predicate(src.At(i)) {
			return false
		}
	}
	return true
}
