package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLoggerCapturesMessages(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("fetching %s", "host:path")
	l.Info("refreshed %d targets", 3)
	l.Warn("queue full")
	l.Error("scp failed: %v", "exit status 1")

	assert.Len(t, l.Messages, 4)
	assert.Equal(t, "fetching host:path", l.Messages[0].Message)
	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.True(t, l.HasLevel("warn"))
	assert.True(t, l.HasLevel("error"))
	assert.False(t, l.HasLevel("fatal"))
}

func TestBufferLoggerClear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("one")
	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestNoopDiscardsMessages(t *testing.T) {
	l := Noop()
	// Just make sure nothing panics.
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	buf := NewBufferLogger()
	SetDefault(buf)
	Default().Info("hello")

	assert.Len(t, buf.Messages, 1)
}
