package compose

// Stage reads the accumulator and returns its replacement. A Stage may wrap
// a call of any arity by closing over the other arguments; the accumulator
// fills exactly one argument position.
type Stage[T any] func(acc T) T

// Pipe threads one accumulator of x's type through the stages in order and
// returns the final accumulator. With no stages it returns x.
func Pipe[T any](x T, stages ...Stage[T]) T {
	acc := x
	for _, stage := range stages {
		acc = stage(acc)
	}
	return acc
}
