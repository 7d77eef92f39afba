package player

import (
	"io"
	"testing"
	"time"
)

// finishedEncodeSession returns a session whose frame stream has already
// ended, as after a skip killed the encoder.
func finishedEncodeSession() *EncodeSession {
	frames := make(chan []byte)
	close(frames)
	done := make(chan struct{})
	close(done)
	return &EncodeSession{
		options: StdEncodeOptions,
		frames:  frames,
		done:    done,
	}
}

func TestStreamFinishesWithoutReceiver(t *testing.T) {
	// The playback loop leaves its select on stop and skip without ever
	// reading the done channel. The stream goroutine must still be able to
	// hand off its result and exit instead of blocking on the send.
	done := make(chan error, 1)
	NewStream(finishedEncodeSession(), nil, done)

	deadline := time.After(2 * time.Second)
	for len(done) == 0 {
		select {
		case <-deadline:
			t.Fatal("stream goroutine never delivered its result")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if err := <-done; err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestStreamPauseBlocksFrames(t *testing.T) {
	frames := make(chan []byte, 1)
	sessionDone := make(chan struct{})
	source := &EncodeSession{options: StdEncodeOptions, frames: frames, done: sessionDone}

	s := &StreamingSession{
		source: source,
		done:   make(chan error, 1),
		resume: make(chan struct{}, 1),
	}
	s.SetPaused(true)
	go s.run()

	frames <- []byte{0x01}
	time.Sleep(150 * time.Millisecond)
	if len(frames) == 0 {
		t.Error("paused stream must not consume frames")
	}
}
