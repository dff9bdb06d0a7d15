package seq

// Seq is the read-only handle over a contiguous run of same-typed elements.
// Combinators accept Seq and return one of its two concrete implementations,
// Buffer (owning) or View (borrowing).
type Seq[T any] interface {
	// Len reports the number of elements.
	Len() int
	// At returns the element at index i. It panics if i is out of range.
	At(i int) T
	// Items exposes the backing storage. Callers must treat it as
	// read-only; writing through it breaks the purity contract of every
	// combinator that produced or aliased it.
	Items() []T
}

// Buffer is an owning sequence: its backing storage was freshly allocated by
// whichever combinator produced it and is referenced by nothing else. There
// is no release operation; the garbage collector reclaims the storage when
// the Buffer (and every View borrowed from it) becomes unreachable.
type Buffer[T any] struct {
	items []T
}

func (b Buffer[T]) Len() int   { return len(b.items) }
func (b Buffer[T]) At(i int) T { return b.items[i] }
func (b Buffer[T]) Items() []T { return b.items }

// View is a borrowing sequence: a zero-copy window into storage owned
// elsewhere. A View keeps that storage alive, and it observes any mutation
// of it.
type View[T any] struct {
	items []T
}

func (v View[T]) Len() int   { return len(v.items) }
func (v View[T]) At(i int) T { return v.items[i] }
func (v View[T]) Items() []T { return v.items }

// Pair is the element type of a zipped sequence.
type Pair[A, B any] struct {
	A A
	B B
}

// PartitionResult holds the two owning halves produced by Partition. Both
// preserve the relative order of elements from the source.
type PartitionResult[T any] struct {
	Yes Buffer[T]
	No  Buffer[T]
}

type (
	// Integer constrains Range's element type.
	Integer interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
			~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	}

	// Numeric constrains Sum's element type.
	Numeric interface {
		Integer | ~float32 | ~float64
	}
)

// FromSlice borrows the entire slice as a View. Zero-copy: the View sees
// later mutations of items.
func FromSlice[T any](items []T) View[T] {
	return View[T]{items: items}
}

// Of builds an owning sequence from its arguments.
func Of[T any](items ...T) Buffer[T] {
	out := make([]T, len(items))
	copy(out, items)
	return Buffer[T]{items: out}
}

// Range returns the ascending integers [start, end), owning. Empty when
// end <= start.
func Range[T Integer](start, end T) Buffer[T] {
	if end <= start {
		return Buffer[T]{items: []T{}}
	}
	out := make([]T, 0, int(end-start))
	for v := start; v < end; v++ {
		out = append(out, v)
	}
	return Buffer[T]{items: out}
}
