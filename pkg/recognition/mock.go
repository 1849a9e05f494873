package recognition

import (
	"context"
	"fmt"
	"sync/atomic"
)

// MockSpeech stands in for a speech engine. Every non-empty buffer is
// "recognised" as a numbered chunk marker, which lets the audio pipeline run
// end to end without a model installed.
type MockSpeech struct {
	count atomic.Int64
}

// RecognizeAudio returns "[Recognized speech chunk #N]" for every non-empty buffer.
func (m *MockSpeech) RecognizeAudio(_ context.Context, buf []byte, n int) (string, error) {
	if n <= 0 || len(buf) == 0 {
		return "", nil
	}
	return fmt.Sprintf("[Recognized speech chunk #%d]", m.count.Add(1)), nil
}
