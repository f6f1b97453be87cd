package promise2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecursionPromise_Then_NilOnError(t *testing.T) {
	rp := Iterate[int](SliceIterator([]int{1, 2, 3}), syncScheduler{})
	var got []int
	assert.NotPanics(t, func() {
		rp.Then(func(v int) { got = append(got, v) }, nil, syncScheduler{})
	})
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestRecursionPromise_Then_AsyncDelivery(t *testing.T) {
	sched := newGoScheduler()
	rp := Iterate[int](SliceIterator([]int{1, 2, 3}), sched)
	sched.wait()

	var got []int
	rp.Then(func(v int) { got = append(got, v) }, nil, sched)
	sched.wait()

	assert.ElementsMatch(t, []int{1, 2, 3}, got)
	assert.True(t, rp.Final().IsFulfilled())
}

func TestRecursionPromise_DoubleThen_PanicsOnSecondRegistration(t *testing.T) {
	rp := Iterate[int](SliceIterator([]int{1}), syncScheduler{})
	rp.Then(func(int) {}, nil, syncScheduler{})
	assert.Panics(t, func() {
		rp.Then(func(int) {}, nil, syncScheduler{})
	})
	require.True(t, rp.Final().IsFulfilled())
}
