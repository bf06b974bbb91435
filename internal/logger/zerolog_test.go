package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroLogger(t *testing.T) {
	t.Parallel()

	t.Run("info includes message and fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := New(&buf, false)

		log.Info("request dispatched", map[string]interface{}{"path": "zones"})

		out := buf.String()
		assert.Contains(t, out, "request dispatched")
		assert.Contains(t, out, "zones")
	})

	t.Run("debug suppressed unless verbose", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := New(&buf, false)

		log.Debug("cache hit", nil)
		assert.Empty(t, buf.String())
	})

	t.Run("debug emitted when verbose", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := New(&buf, true)

		log.Debug("cache hit", nil)
		assert.Contains(t, buf.String(), "cache hit")
	})

	t.Run("error emitted at any level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := New(&buf, false)

		log.Error("request failed", map[string]interface{}{"status": 500})
		assert.Contains(t, buf.String(), "request failed")
	})
}
