package formatter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinnerWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Thinking...")

	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "Thinking...")
	// The line is erased on stop so the reply can take its place.
	assert.Contains(t, out, "\r\033[K")
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "working")

	s.Start()
	s.Stop()
	s.Stop()
}

func TestStartSpinnerReturnsStop(t *testing.T) {
	var buf bytes.Buffer

	stop := StartSpinner(&buf, "working")
	time.Sleep(100 * time.Millisecond)
	stop()

	assert.Contains(t, buf.String(), "working")
}
