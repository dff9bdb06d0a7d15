package seq

// The three window combinators alias their source's storage instead of
// copying it. Out-of-range arguments are clamped into [0, len], never
// reported as errors.

// Take borrows the first min(n, len) elements of src.
func Take[T any](src Seq[T], n int) View[T] {
	items := src.Items()
	return View[T]{items: items[:clampIndex(n, len(items))]}
}

// Drop borrows src without its first min(n, len) elements.
func Drop[T any](src Seq[T], n int) View[T] {
	items := src.Items()
	return View[T]{items: items[clampIndex(n, len(items)):]}
}

// Slice borrows the window [start, end) of src, both bounds clamped into
// [0, len]. Empty when start >= end after clamping.
func Slice[T any](src Seq[T], start, end int) View[T] {
	items := src.Items()
	s := clampIndex(start, len(items))
	e := clampIndex(end, len(items))
	if e < s {
		e = s
	}
	return View[T]{items: items[s:e]}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
