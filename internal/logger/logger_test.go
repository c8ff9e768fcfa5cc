package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"info", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, tt.verbose)

			log.Debug("debug message")
			log.Info("info message", "view", "orders")

			assert.Contains(t, buf.String(), "info message")
			assert.Contains(t, buf.String(), "view=orders")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug message")))
		})
	}
}

func TestNew_DropsEmptyStrings(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Info("msg", "empty", "", "kept", "x")

	assert.NotContains(t, buf.String(), "empty=")
	assert.Contains(t, buf.String(), "kept=x")
}

func TestNew_NoColorForBuffers(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Info("msg")

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestFormatRFC3339Millis(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 30, 9, 123456789, time.FixedZone("X", 3600))
	assert.Equal(t, "2024-03-05T13:30:09.123Z", formatRFC3339Millis(ts))
}
