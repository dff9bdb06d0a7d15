// Package seq provides eager, pure transformations over homogeneous in-memory
// sequences.
//
// The package is built around two handle types with one read-only contract:
//
//   - Buffer[T] owns freshly allocated storage. Every eager combinator
//     (Map, Filter, Reverse, ...) returns a Buffer, so its result is
//     independent of its inputs.
//   - View[T] borrows a window into storage owned elsewhere. FromSlice,
//     Take, Drop, and Slice return Views: they are zero-copy, and they see
//     any mutation of the storage they alias.
//
// Both satisfy Seq[T], which is what every combinator accepts. The element
// type is a type parameter, so mixing element types across a pipeline is a
// compile error rather than a runtime surprise.
//
// # Purity and ordering
//
// No combinator mutates its input. Every combinator is deterministic, runs
// eagerly to completion, and preserves the relative order of the elements it
// keeps. Filter, Unique, and Partition are stable; Zip truncates to the
// shorter input; out-of-range arguments to Take, Drop, Slice, and Pad are
// clamped, never reported as errors.
//
// Sequences are not goroutine-safe: this package is for single-threaded,
// synchronous transformation. Nothing here blocks.
//
// # Equality and dedup
//
// Unique requires a comparable element type and deduplicates in O(n) with a
// map. For element types that are not comparable, UniqueFunc takes an
// explicit equality function (O(n²)), and UniqueByKey takes an explicit key
// extractor and buckets by 64-bit xxhash. There is no byte-level equality
// anywhere: what "equal" means is always part of the call.
package seq
