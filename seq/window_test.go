package seq_test

import (
	"testing"

	"github.com/on-the-ground/flow_ive_go/seq"

	"github.com/stretchr/testify/assert"
)

func TestTake_FirstN(t *testing.T) {
	src := seq.Of(1, 2, 3, 4, 5)
	assert.Equal(t, []int{1, 2, 3}, seq.Take[int](src, 3).Items())
}

func TestTake_ClampsOutOfRange(t *testing.T) {
	src := seq.Of(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, seq.Take[int](src, 10).Items())
	assert.Equal(t, 0, seq.Take[int](src, -1).Len())
}

func TestDrop_SkipsFirstN(t *testing.T) {
	src := seq.Of(1, 2, 3, 4, 5)
	assert.Equal(t, []int{3, 4, 5}, seq.Drop[int](src, 2).Items())
}

func TestDrop_ClampsOutOfRange(t *testing.T) {
	src := seq.Of(1, 2, 3)
	assert.Equal(t, 0, seq.Drop[int](src, 10).Len())
	assert.Equal(t, []int{1, 2, 3}, seq.Drop[int](src, -1).Items())
}

func TestTakeDropConcat_RebuildsSource(t *testing.T) {
	src := seq.Of(9, 8, 7, 6, 5, 4)
	for n := 0; n <= src.Len(); n++ {
		rebuilt := seq.Concat[int](seq.Take[int](src, n), seq.Drop[int](src, n))
		assert.Equalf(t, src.Items(), rebuilt.Items(), "split at %d", n)
	}
}

func TestSlice_HalfOpenWindow(t *testing.T) {
	src := seq.Of(4, 3, 2, 1, 99, 99, 99, 99, 99, 99)
	assert.Equal(t, []int{2, 1, 99, 99, 99}, seq.Slice[int](src, 2, 7).Items())
}

func TestSlice_ClampsBothBounds(t *testing.T) {
	src := seq.Of(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, seq.Slice[int](src, -5, 100).Items())
	assert.Equal(t, 0, seq.Slice[int](src, 2, 1).Len())
	assert.Equal(t, 0, seq.Slice[int](src, 5, 9).Len())
}

func TestWindows_AliasSourceStorage(t *testing.T) {
	backing := []int{1, 2, 3, 4, 5}
	src := seq.FromSlice(backing)

	taken := seq.Take[int](src, 2)
	dropped := seq.Drop[int](src, 3)
	window := seq.Slice[int](src, 1, 4)

	backing[0] = 10
	backing[3] = 40

	assert.Equal(t, 10, taken.At(0))
	assert.Equal(t, 40, dropped.At(0))
	assert.Equal(t, 40, window.At(2))
}
