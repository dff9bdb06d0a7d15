// Package curry turns n-ary functions into chains of unary functions.
//
// Curry2 through Curry5 are fully typed: each returns nested closures where
// every partial application captures the arguments supplied so far by value.
// Two chains built from the same curried function, or from the same partial
// prefix, never share capture state, so applying one can never disturb the
// other.
//
//	add := curry.Curry3(func(a, b, c int) int { return a + b + c })
//	add10 := add(10)
//	fmt.Println(add10(1)(2))  // 13
//	fmt.Println(add10(4)(5))  // 19, add10 unaffected by the line above
//
// N is the arbitrary-arity escape hatch: it curries a variadic func(...any)
// any one argument at a time, growing a copied argument list per
// application. As recovers a typed result from N's final application.
package curry
