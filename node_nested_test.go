package promise2

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNestedNode_SplicesInnerOutcome(t *testing.T) {
	n := newNestedNode[Unit, int](func(Unit) (*Promise[int], error) {
		return Resolved[int](7), nil
	}, syncScheduler{}, nil)
	n.start()

	cell := n.snapshot()
	require.NotNil(t, cell)
	v, err := cell.getValue()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestNestedNode_SplicesInnerRejection(t *testing.T) {
	sentinel := errors.New("inner failed")
	n := newNestedNode[Unit, int](func(Unit) (*Promise[int], error) {
		return Rejected[int](sentinel), nil
	}, syncScheduler{}, nil)
	n.start()

	cell := n.snapshot()
	require.True(t, cell.isErrorCase())
	_, err := cell.getValue()
	assert.ErrorIs(t, err, sentinel)
}

func TestNestedNode_FunctionError_Rejects(t *testing.T) {
	sentinel := errors.New("boom")
	n := newNestedNode[Unit, int](func(Unit) (*Promise[int], error) {
		return nil, sentinel
	}, syncScheduler{}, nil)
	n.start()

	cell := n.snapshot()
	require.True(t, cell.isErrorCase())
	_, err := cell.getValue()
	assert.ErrorIs(t, err, sentinel)
}

func TestNestedNode_InvalidInnerPromise_Rejects(t *testing.T) {
	n := newNestedNode[Unit, int](func(Unit) (*Promise[int], error) {
		return nil, nil
	}, syncScheduler{}, nil)
	n.start()

	cell := n.snapshot()
	require.True(t, cell.isErrorCase())
	_, err := cell.getValue()
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, UserError, perr.Kind)
}

func TestNestedNode_DeepChain(t *testing.T) {
	// a nested stage whose inner promise is itself still pending when
	// spliced (deferred resolution), then resolved afterward.
	var d *Defer[int]
	inner := newDeferredNode[Unit, int](func(dd *Defer[int], _ Unit) {
		d = dd
	}, syncScheduler{}, nil)
	inner.start()
	innerPromise := newPromise[int](inner)

	n := newNestedNode[Unit, int](func(Unit) (*Promise[int], error) {
		return innerPromise, nil
	}, syncScheduler{}, nil)
	n.start()

	require.NotNil(t, d)
	d.SetResult(55)

	cell := n.snapshot()
	require.NotNil(t, cell)
	v, _ := cell.getValue()
	assert.Equal(t, 55, v)
}
