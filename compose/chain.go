package compose

// Fn is a unary stage in a type-changing chain.
type Fn[In, Out any] func(In) Out

// Identity returns its argument. It is the left and right unit of Then.
func Identity[T any](t T) T { return t }

// Then composes f before g: Then(f, g)(x) == g(f(x)). Repeated applications
// build a chain of any length, each stage free to change the value's type.
func Then[In, Mid, Out any](f Fn[In, Mid], g func(Mid) Out) Fn[In, Out] {
	return func(in In) Out {
		return g(f(in))
	}
}

// Chain2 applies two stages to x: g(f(x)).
func Chain2[A, B, C any](x A, f func(A) B, g func(B) C) C {
	return g(f(x))
}

// Chain3 applies three stages to x: h(g(f(x))).
func Chain3[A, B, C, D any](x A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(x)))
}

// Chain4 applies four stages to x. Longer chains compose with Then.
func Chain4[A, B, C, D, E any](x A, f func(A) B, g func(B) C, h func(C) D, k func(D) E) E {
	return k(h(g(f(x))))
}
