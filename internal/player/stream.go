package player

import (
	"io"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// StreamingSession pumps opus frames from an EncodeSession into a voice
// connection. The result (io.EOF on a natural finish) is delivered on done.
type StreamingSession struct {
	source *EncodeSession
	vc     *discordgo.VoiceConnection
	done   chan error

	mu     sync.Mutex
	paused bool
	resume chan struct{}
}

// NewStream starts streaming immediately.
func NewStream(source *EncodeSession, vc *discordgo.VoiceConnection, done chan error) *StreamingSession {
	s := &StreamingSession{
		source: source,
		vc:     vc,
		done:   done,
		resume: make(chan struct{}, 1),
	}
	go s.run()
	return s
}

// SetPaused pauses or resumes frame delivery. Pausing keeps the encoder and
// voice connection alive; Discord simply stops receiving audio.
func (s *StreamingSession) SetPaused(paused bool) {
	s.mu.Lock()
	wasPaused := s.paused
	s.paused = paused
	s.mu.Unlock()

	if wasPaused && !paused {
		select {
		case s.resume <- struct{}{}:
		default:
		}
	}
}

func (s *StreamingSession) isPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

func (s *StreamingSession) run() {
	for {
		if s.isPaused() {
			select {
			case <-s.resume:
			case <-time.After(100 * time.Millisecond):
			}
			continue
		}

		frame, err := s.source.OpusFrame()
		if err != nil {
			s.done <- err
			return
		}

		// The voice connection paces consumption; the timeout only guards
		// against a dead connection eating the goroutine.
		select {
		case s.vc.OpusSend <- frame:
		case <-time.After(time.Second):
			s.done <- io.ErrClosedPipe
			return
		}
	}
}
