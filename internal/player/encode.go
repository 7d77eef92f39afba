package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strconv"
	"sync"

	"github.com/jonas747/ogg"
)

// EncodeOptions controls the ffmpeg opus encoding process.
type EncodeOptions struct {
	Bitrate          int    // kbit/s
	Channels         int
	FrameRate        int    // input sample rate
	FrameDuration    int    // ms per opus frame
	Application      string // "audio", "voip" or "lowdelay"
	CompressionLevel int    // 0-10
	BufferedFrames   int    // frame channel depth
}

// StdEncodeOptions are sane defaults for 48kHz stereo voice streaming.
var StdEncodeOptions = &EncodeOptions{
	Bitrate:          96,
	Channels:         2,
	FrameRate:        48000,
	FrameDuration:    20,
	Application:      "audio",
	CompressionLevel: 3,
	BufferedFrames:   16,
}

// EncodeSession runs ffmpeg over a raw PCM input and exposes the resulting
// opus packets frame by frame.
type EncodeSession struct {
	options *EncodeOptions
	cmd     *exec.Cmd

	frames chan []byte
	done   chan struct{}

	mu  sync.Mutex
	err error
}

// EncodePCM starts an encode session reading s16le PCM from input.
func EncodePCM(input io.Reader, options *EncodeOptions) (*EncodeSession, error) {
	if options == nil {
		options = StdEncodeOptions
	}

	args := []string{
		"-f", "s16le",
		"-ar", strconv.Itoa(options.FrameRate),
		"-ac", strconv.Itoa(options.Channels),
		"-i", "pipe:0",
		"-map", "0:a",
		"-c:a", "libopus",
		"-b:a", strconv.Itoa(options.Bitrate) + "k",
		"-application", options.Application,
		"-compression_level", strconv.Itoa(options.CompressionLevel),
		"-frame_duration", strconv.Itoa(options.FrameDuration),
		"-vbr", "on",
		"-loglevel", "warning",
		"-f", "ogg",
		"pipe:1",
	}

	cmd := exec.Command("ffmpeg", args...)
	cmd.Stdin = input

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}

	buffered := options.BufferedFrames
	if buffered <= 0 {
		buffered = 1
	}
	session := &EncodeSession{
		options: options,
		cmd:     cmd,
		frames:  make(chan []byte, buffered),
		done:    make(chan struct{}),
	}
	go session.readPackets(stdout)
	return session, nil
}

// readPackets splits the ogg container into opus packets and queues them.
// The first two packets are the opus header and comment tags, which Discord
// must not receive.
func (e *EncodeSession) readPackets(stdout io.Reader) {
	defer close(e.frames)
	defer close(e.done)

	decoder := ogg.NewPacketDecoder(ogg.NewDecoder(bufio.NewReaderSize(stdout, 16384)))

	skip := 2
	for {
		packet, _, err := decoder.Decode()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				e.mu.Lock()
				e.err = err
				e.mu.Unlock()
				log.Printf("[ENCODE] Packet decode error: %v", err)
			}
			break
		}
		if skip > 0 {
			skip--
			continue
		}
		frame := make([]byte, len(packet))
		copy(frame, packet)
		e.frames <- frame
	}

	if err := e.cmd.Wait(); err != nil {
		e.mu.Lock()
		if e.err == nil {
			e.err = err
		}
		e.mu.Unlock()
	}
}

// OpusFrame returns the next encoded frame, or io.EOF when the stream ends.
func (e *EncodeSession) OpusFrame() ([]byte, error) {
	frame, ok := <-e.frames
	if !ok {
		e.mu.Lock()
		err := e.err
		e.mu.Unlock()
		if err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return frame, nil
}

// Cleanup kills the encoder process and drains any queued frames.
func (e *EncodeSession) Cleanup() {
	if e.cmd.Process != nil {
		e.cmd.Process.Kill()
	}
	for range e.frames {
	}
	<-e.done
}
