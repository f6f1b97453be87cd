package promise2

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainNode_Start_Fulfills(t *testing.T) {
	n := newPlainNode[Unit, int](func(Unit) (int, error) { return 5, nil }, syncScheduler{}, nil)
	n.start()

	cell := n.snapshot()
	require.NotNil(t, cell)
	v, err := cell.getValue()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestPlainNode_Error_NoHandler_Rejects(t *testing.T) {
	sentinel := errors.New("boom")
	n := newPlainNode[Unit, int](func(Unit) (int, error) { return 0, sentinel }, syncScheduler{}, nil)
	n.start()

	cell := n.snapshot()
	require.True(t, cell.isErrorCase())
	_, err := cell.getValue()
	assert.ErrorIs(t, err, sentinel)
}

func TestPlainNode_Panic_RecoveredAsUserError(t *testing.T) {
	n := newPlainNode[Unit, int](func(Unit) (int, error) { panic("kaboom") }, syncScheduler{}, nil)
	n.start()

	cell := n.snapshot()
	require.True(t, cell.isErrorCase())
	_, err := cell.getValue()
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, UserError, perr.Kind)
}

func TestPlainNode_RunsExactlyOnce(t *testing.T) {
	calls := 0
	n := newPlainNode[Unit, int](func(Unit) (int, error) { calls++; return calls, nil }, syncScheduler{}, nil)
	n.start()
	n.start()

	cell := n.snapshot()
	v, _ := cell.getValue()
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, calls)
}

func TestPlainNode_ErrorHandler_Recovers(t *testing.T) {
	sentinel := errors.New("boom")
	handler := func(error) *Promise[int] { return Resolved[int](99) }
	n := newPlainNode[Unit, int](func(Unit) (int, error) { return 0, sentinel }, syncScheduler{}, handler)
	n.start()

	cell := n.snapshot()
	require.False(t, cell.isErrorCase())
	v, _ := cell.getValue()
	assert.Equal(t, 99, v)
}

func TestPlainNode_ErrorHandler_InvalidPromise_KeepsOriginal(t *testing.T) {
	sentinel := errors.New("boom")
	handler := func(error) *Promise[int] { return nil }
	n := newPlainNode[Unit, int](func(Unit) (int, error) { return 0, sentinel }, syncScheduler{}, handler)
	n.start()

	cell := n.snapshot()
	require.True(t, cell.isErrorCase())
	_, err := cell.getValue()
	assert.ErrorIs(t, err, sentinel)
}

func TestPlainNode_ErrorHandler_Panics_UsesNewError(t *testing.T) {
	sentinel := errors.New("boom")
	handlerErr := errors.New("handler exploded")
	handler := func(error) *Promise[int] { panic(handlerErr) }
	n := newPlainNode[Unit, int](func(Unit) (int, error) { return 0, sentinel }, syncScheduler{}, handler)
	n.start()

	cell := n.snapshot()
	require.True(t, cell.isErrorCase())
	_, err := cell.getValue()
	assert.ErrorIs(t, err, handlerErr)
	assert.NotErrorIs(t, err, sentinel)
}
