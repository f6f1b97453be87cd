package promise2

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinally_RunsOnFulfillment_KeepsValue(t *testing.T) {
	calls := 0
	root := Resolved[int](7)
	p := Finally[int](root, func() { calls++ }, syncScheduler{})

	require.True(t, p.IsFulfilled())
	v, _ := p.node.snapshot().getValue()
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, calls)
}

func TestFinally_RunsOnRejection_KeepsError(t *testing.T) {
	sentinel := errors.New("boom")
	calls := 0
	root := Rejected[int](sentinel)
	p := Finally[int](root, func() { calls++ }, syncScheduler{})

	require.True(t, p.IsRejected())
	_, err := p.node.snapshot().getValue()
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}
