package promise2

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecursionNode_EmitsInOrderThenCompletes(t *testing.T) {
	it := SliceIterator([]int{1, 2, 3})
	n := newRecursionNode[int](it, syncScheduler{})

	var got []int
	require.NoError(t, n.values.doChaining(func(cell *ValueCell[int]) {
		v, _ := cell.getValue()
		got = append(got, v)
	}))

	var finalErr error
	finalSet := false
	require.NoError(t, n.term.forward().doChaining(func(cell *ValueCell[Unit]) {
		finalSet = true
		_, finalErr = cell.getValue()
	}))

	n.start()

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.True(t, finalSet)
	assert.NoError(t, finalErr)
}

func TestRecursionNode_StepError_RejectsTerminal(t *testing.T) {
	sentinel := errors.New("step failed")
	calls := 0
	it := FuncIterator[int](func() (int, bool, error) {
		calls++
		if calls == 2 {
			return 0, false, sentinel
		}
		return calls, true, nil
	})
	n := newRecursionNode[int](it, syncScheduler{})

	var got []int
	require.NoError(t, n.values.doChaining(func(cell *ValueCell[int]) {
		v, _ := cell.getValue()
		got = append(got, v)
	}))

	var finalErr error
	require.NoError(t, n.term.forward().doChaining(func(cell *ValueCell[Unit]) {
		_, finalErr = cell.getValue()
	}))

	n.start()

	assert.Equal(t, []int{1}, got)
	assert.ErrorIs(t, finalErr, sentinel)
}

func TestRecursionNode_IteratorPanic_TreatedAsError(t *testing.T) {
	it := FuncIterator[int](func() (int, bool, error) {
		panic("iterator exploded")
	})
	n := newRecursionNode[int](it, syncScheduler{})

	var finalErr error
	require.NoError(t, n.term.forward().doChaining(func(cell *ValueCell[Unit]) {
		_, finalErr = cell.getValue()
	}))

	n.start()

	require.Error(t, finalErr)
	var perr *Error
	require.ErrorAs(t, finalErr, &perr)
	assert.Equal(t, UserError, perr.Kind)
}

func TestRecursionPromise_ThenAndFinal(t *testing.T) {
	it := SliceIterator([]string{"a", "b"})
	rp := Iterate[string](it, syncScheduler{})

	var got []string
	rp.Then(func(v string) { got = append(got, v) }, nil, syncScheduler{})

	final := rp.Final()
	require.True(t, final.IsValid())
	assert.True(t, final.IsFulfilled())
	assert.Equal(t, []string{"a", "b"}, got)
}
