package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Success("task created")
	w.Error("request failed")

	assert.Equal(t, "✓ task created\n✗ request failed\n", buf.String())
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	var rec Recorder
	rec.Success("one")
	rec.Error("two")

	msgs := rec.Messages()
	assert.Equal(t, []Message{
		{Tone: "success", Text: "one"},
		{Tone: "error", Text: "two"},
	}, msgs)

	rec.Reset()
	assert.Empty(t, rec.Messages())
}
