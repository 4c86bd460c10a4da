package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInterruptHandler(t *testing.T) {
	tests := []struct {
		writer io.Writer
		name   string
	}{
		{
			name:   "with custom writer",
			writer: &bytes.Buffer{},
		},
		{
			name:   "with nil writer",
			writer: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInterruptHandler(tt.writer)
			assert.NotNil(t, handler)
			assert.NotNil(t, handler.writer)
			assert.False(t, handler.WasInterrupted())
		})
	}
}

func TestHandleInterrupts_ParentCancel(t *testing.T) {
	var out bytes.Buffer
	handler := NewInterruptHandler(&out)

	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := handler.HandleInterrupts(parent)
	defer cancel()

	select {
	case <-ctx.Done():
		t.Fatal("Context should not be canceled initially")
	default:
	}

	cancelParent()
	<-ctx.Done()

	assert.False(t, handler.WasInterrupted(), "parent cancellation is not an interrupt")
	assert.Empty(t, out.String())
}

func TestMarkInterrupted_OnlyOnce(t *testing.T) {
	var out bytes.Buffer
	handler := NewInterruptHandler(&out)

	handler.markInterrupted()
	first := out.String()
	handler.markInterrupted()

	assert.True(t, handler.WasInterrupted())
	assert.Contains(t, first, "Interrupted!")
	assert.Equal(t, first, out.String())
}
