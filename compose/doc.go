// Package compose provides two small, independent function-composition
// utilities.
//
// Chain-style composition is type-changing: Then glues two unary stages
// where each stage may return a different type than it received, and any
// number of Then applications builds an arbitrarily long, statically typed
// chain. Chain2 through Chain4 apply short chains directly.
//
// Pipe-style composition is type-preserving: one accumulator of the seed's
// type is threaded through every stage, and each stage is free to wrap a
// call of any arity as long as exactly one argument position reads the
// accumulator. Pipe trades Chain's type flexibility for per-stage arity
// flexibility.
//
// Neither utility knows anything about sequences; both are plain function
// plumbing.
package compose
