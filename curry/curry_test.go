package curry_test

import (
	"testing"

	"github.com/on-the-ground/flow_ive_go/curry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurry2_EqualsDirectApplication(t *testing.T) {
	add := func(a, b int) int { return a + b }
	curried := curry.Curry2(add)
	assert.Equal(t, add(3, 4), curried(3)(4))
}

func TestCurry3_EqualsDirectApplication(t *testing.T) {
	volume := func(a, b, c int) int { return a * b * c }
	assert.Equal(t, volume(2, 3, 4), curry.Curry3(volume)(2)(3)(4))
}

func TestCurry4_MixedArgumentTypes(t *testing.T) {
	describe := func(name string, age int, height float64, active bool) string {
		if !active {
			return "inactive"
		}
		return name
	}
	curried := curry.Curry4(describe)
	assert.Equal(t, "ada", curried("ada")(36)(1.7)(true))
	assert.Equal(t, "inactive", curried("ada")(36)(1.7)(false))
}

func TestCurry5_EqualsDirectApplication(t *testing.T) {
	add5 := func(a, b, c, d, e float32) float32 { return a + b + c + d + e }
	assert.InDelta(t, float64(add5(10, 1, 2, 4, 5)), float64(curry.Curry5(add5)(10)(1)(2)(4)(5)), 1e-6)
}

func TestCurry_PartialChainsDoNotShareState(t *testing.T) {
	add3 := curry.Curry3(func(a, b, c int) int { return a + b + c })
	addTen := add3(10)

	// two chains branching from the same partial prefix
	first := addTen(1)
	second := addTen(100)

	assert.Equal(t, 13, first(2))
	assert.Equal(t, 112, second(2))
	// reusing the first branch afterwards still sees its own capture
	assert.Equal(t, 14, first(3))
}

func TestN_AppliesAllArgumentsThenInvokes(t *testing.T) {
	sum4 := curry.N(func(args ...any) any {
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		return total
	}, 4)

	step1, ok := curry.Next(sum4(1))
	require.True(t, ok)
	step2, ok := curry.Next(step1(2))
	require.True(t, ok)
	step3, ok := curry.Next(step2(3))
	require.True(t, ok)

	got, ok := curry.As[int](step3(4))
	require.True(t, ok)
	assert.Equal(t, 10, got)
}

func TestN_ArityOneInvokesImmediately(t *testing.T) {
	double := curry.N(func(args ...any) any { return args[0].(int) * 2 }, 1)
	got, ok := curry.As[int](double(21))
	require.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestN_BranchedChainsStayIndependent(t *testing.T) {
	concat := curry.N(func(args ...any) any {
		out := ""
		for _, a := range args {
			out += a.(string)
		}
		return out
	}, 3)

	prefix, ok := curry.Next(concat("a"))
	require.True(t, ok)

	left, ok := curry.Next(prefix("b"))
	require.True(t, ok)
	right, ok := curry.Next(prefix("z"))
	require.True(t, ok)

	gotLeft, ok := curry.As[string](left("c"))
	require.True(t, ok)
	gotRight, ok := curry.As[string](right("c"))
	require.True(t, ok)

	assert.Equal(t, "abc", gotLeft)
	assert.Equal(t, "azc", gotRight)
}

func TestN_NonPositiveArityPanics(t *testing.T) {
	assert.Panics(t, func() {
		curry.N(func(args ...any) any { return nil }, 0)
	})
}

func TestMustAs_ReturnsTypedResult(t *testing.T) {
	double := curry.N(func(args ...any) any { return args[0].(int) * 2 }, 1)
	assert.Equal(t, 42, curry.MustAs[int](double(21)))
}

func TestMustAs_PanicsOnPartialApplication(t *testing.T) {
	sum2 := curry.N(func(args ...any) any { return args[0].(int) + args[1].(int) }, 2)
	assert.Panics(t, func() {
		curry.MustAs[int](sum2(1))
	})
}

func TestAs_ReportsFalseOnPartialApplication(t *testing.T) {
	sum2 := curry.N(func(args ...any) any { return args[0].(int) + args[1].(int) }, 2)
	// one application in, the chain is not a result yet
	_, ok := curry.As[int](sum2(1))
	assert.False(t, ok)
}
