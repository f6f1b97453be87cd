package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInline_RunsSynchronously(t *testing.T) {
	s := NewInline(nil, nil)
	ran := false
	s.Submit(func() { ran = true })
	assert.True(t, ran)
}

func TestInline_NilLoggerAndProviderAreSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		s := NewInline(nil, nil)
		s.Submit(func() {})
	})
}
