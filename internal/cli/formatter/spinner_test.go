package formatter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_StopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Searching")
	s.Start()
	time.Sleep(3 * searchSpinner.FPS)
	s.Stop()
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "Searching")
	assert.Contains(t, out, searchSpinner.Frames[0])
	assert.Equal(t, "\r\033[K", out[len(out)-4:])
}
