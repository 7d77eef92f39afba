package player

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"sync"
	"time"

	"poring/internal/discord"
	"poring/internal/ytdl"

	"github.com/bwmarrin/discordgo"
)

// Player manages audio playback for a single guild.
type Player struct {
	GuildID    string
	VoiceConn  *discordgo.VoiceConnection
	Queue      []*ytdl.Track
	NowPlaying *ytdl.Track
	IsPlaying  bool
	IsPaused   bool
	Volume     int // 0-256, default 256

	History       []*ytdl.Track
	LastMsgID     string
	LastChannelID string

	stopChan         chan struct{}
	skipChan         chan struct{}
	volumeChangeChan chan struct{} // signal to update PCM volume without restarting the stream
	done             chan struct{}

	encoding *EncodeSession
	stream   *StreamingSession

	session *discordgo.Session
	ytdl    *ytdl.Client
	Config  *discord.Config
	mu      sync.Mutex
}

// NewPlayer creates a new Player for a guild.
func NewPlayer(session *discordgo.Session, ytdlClient *ytdl.Client, guildID string, cfg *discord.Config) *Player {
	return &Player{
		GuildID:          guildID,
		Volume:           cfg.DefaultVolume,
		stopChan:         make(chan struct{}),
		skipChan:         make(chan struct{}),
		volumeChangeChan: make(chan struct{}, 1), // buffered to avoid blocking
		done:             make(chan struct{}),
		session:          session,
		ytdl:             ytdlClient,
		Config:           cfg,
	}
}

// SetLastMessage updates the last message ID and channel ID.
func (p *Player) SetLastMessage(msgID, channelID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.LastMsgID = msgID
	p.LastChannelID = channelID
}

// Enqueue adds a track to the queue.
func (p *Player) Enqueue(track *ytdl.Track) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Queue = append(p.Queue, track)
	log.Printf("[PLAYER] Enqueued: %s - %s", track.Uploader, track.Title)
}

// GetQueue returns a copy of the current queue.
func (p *Player) GetQueue() []*ytdl.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	q := make([]*ytdl.Track, len(p.Queue))
	copy(q, p.Queue)
	return q
}

// dequeue removes and returns the next track, or nil if empty.
func (p *Player) dequeue() *ytdl.Track {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.Queue) == 0 {
		return nil
	}
	track := p.Queue[0]
	p.Queue = p.Queue[1:]
	return track
}

// Start joins the voice channel and begins the playback loop.
func (p *Player) Start(channelID string) error {
	p.mu.Lock()
	if p.IsPlaying {
		p.mu.Unlock()
		return nil
	}
	p.IsPlaying = true
	p.mu.Unlock()

	vc, err := p.session.ChannelVoiceJoin(p.GuildID, channelID, false, true)
	if err != nil {
		p.mu.Lock()
		p.IsPlaying = false
		p.mu.Unlock()
		return fmt.Errorf("failed to join voice channel: %w", err)
	}
	p.VoiceConn = vc

	// Give Discord a moment to establish the voice connection
	time.Sleep(250 * time.Millisecond)

	go p.playLoop()
	return nil
}

// Stop stops playback, clears the queue, and leaves the voice channel.
func (p *Player) Stop() {
	p.mu.Lock()
	p.Queue = nil
	p.mu.Unlock()

	// Signal stop
	select {
	case <-p.stopChan:
		// already closed
	default:
		close(p.stopChan)
	}

	// Wait for playback loop to finish
	<-p.done

	if p.VoiceConn != nil {
		p.VoiceConn.Disconnect()
		p.VoiceConn = nil
	}

	log.Printf("[PLAYER] Stopped playback")

	p.mu.Lock()
	p.IsPlaying = false
	p.NowPlaying = nil

	if p.LastMsgID != "" && p.LastChannelID != "" {
		p.session.ChannelMessageEdit(p.LastChannelID, p.LastMsgID, "⏹️ **Stopped.**")
		p.LastMsgID = ""
		p.LastChannelID = ""
	}
	p.mu.Unlock()
}

// Skip skips the current track by closing the skip channel.
func (p *Player) Skip() {
	p.mu.Lock()
	defer p.mu.Unlock()

	select {
	case <-p.skipChan:
		// already closed
	default:
		close(p.skipChan)
	}
	log.Printf("[PLAYER] Skipped track")
}

// PlayPrevious skips to the previous track in history.
func (p *Player) PlayPrevious() {
	p.mu.Lock()
	if len(p.History) == 0 {
		p.mu.Unlock()
		return
	}

	// Pop last track from history
	prevTrack := p.History[len(p.History)-1]
	p.History = p.History[:len(p.History)-1]

	// Push current NowPlaying back into the queue so it isn't lost
	if p.NowPlaying != nil {
		p.Queue = append([]*ytdl.Track{p.NowPlaying}, p.Queue...)
	}
	p.Queue = append([]*ytdl.Track{prevTrack}, p.Queue...)
	p.mu.Unlock()

	// Skip current track to immediately play the one we just pushed
	p.Skip()
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	p.IsPaused = true
	s := p.stream
	p.mu.Unlock()
	if s != nil {
		s.SetPaused(true)
	}
	log.Printf("[PLAYER] Paused playback")
}

// Resume resumes playback.
func (p *Player) Resume() {
	p.mu.Lock()
	p.IsPaused = false
	s := p.stream
	p.mu.Unlock()
	if s != nil {
		s.SetPaused(false)
	}
	log.Printf("[PLAYER] Resumed playback")
}

// SetVolume sets volume (0-256).
func (p *Player) SetVolume(vol int) {
	if vol < 0 {
		vol = 0
	}
	if vol > 256 {
		vol = 256
	}
	p.mu.Lock()
	p.Volume = vol
	p.mu.Unlock()

	select {
	case p.volumeChangeChan <- struct{}{}:
	default:
		// signal already pending
	}
}

// playLoop continuously dequeues and plays tracks until stopped or the
// queue runs out.
func (p *Player) playLoop() {
	defer close(p.done)

	for {
		select {
		case <-p.stopChan:
			return
		default:
		}

		track := p.dequeue()
		if track == nil {
			// Queue empty — disconnect and stop
			p.mu.Lock()
			p.IsPlaying = false
			p.NowPlaying = nil
			p.mu.Unlock()

			if p.VoiceConn != nil {
				p.VoiceConn.Disconnect()
				p.VoiceConn = nil
			}

			p.mu.Lock()
			if p.LastMsgID != "" && p.LastChannelID != "" {
				p.session.ChannelMessageEdit(p.LastChannelID, p.LastMsgID, "⏹️ **Queue ended.**")
				p.LastMsgID = ""
				p.LastChannelID = ""
			}
			p.mu.Unlock()

			return
		}

		p.mu.Lock()
		p.NowPlaying = track
		p.IsPlaying = true
		p.mu.Unlock()

		log.Printf("Now playing: %s - %s", track.Uploader, track.Title)
		p.streamTrack(track)

		p.mu.Lock()
		p.History = append(p.History, track)
		if len(p.History) > 50 {
			p.History = p.History[1:]
		}
		// Reset the skip channel for the next track and drain stale volume
		// signals left over from this one.
		p.skipChan = make(chan struct{})
	loop:
		for {
			select {
			case <-p.volumeChangeChan:
			default:
				break loop
			}
		}
		p.mu.Unlock()
	}
}

// streamTrack streams a single track: yt-dlp fetches the source audio,
// ffmpeg decodes it to raw PCM for the volume scaler, and a second ffmpeg
// encodes the scaled PCM to opus for Discord.
func (p *Player) streamTrack(track *ytdl.Track) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	defer p.VoiceConn.Speaking(false)

	// 1. yt-dlp writes the best audio stream to stdout
	fetchCmd := p.ytdl.StreamCommand(ctx, track.URL)
	fetchOut, err := fetchCmd.StdoutPipe()
	if err != nil {
		log.Printf("[PLAYER] ERROR: yt-dlp stdout pipe: %v", err)
		return
	}
	if err := fetchCmd.Start(); err != nil {
		log.Printf("[PLAYER] ERROR: Failed to start yt-dlp: %v", err)
		return
	}
	defer fetchCmd.Wait()

	// 2. Decode whatever container yt-dlp produced into s16le 48kHz stereo
	decodeCmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", "pipe:0",
		"-f", "s16le",
		"-ar", "48000",
		"-ac", "2",
		"-loglevel", "warning",
		"pipe:1",
	)
	decodeCmd.Stdin = fetchOut
	decodeOut, err := decodeCmd.StdoutPipe()
	if err != nil {
		log.Printf("[PLAYER] ERROR: ffmpeg stdout pipe: %v", err)
		return
	}
	if err := decodeCmd.Start(); err != nil {
		log.Printf("[PLAYER] ERROR: Failed to start ffmpeg decoder: %v", err)
		return
	}
	defer decodeCmd.Wait()

	// 3. Volume scaler sits on the raw PCM between the two processes
	pcmScaler := NewPCMVolume(decodeOut)

	p.mu.Lock()
	currentVol := float64(p.Volume) / 256.0
	p.mu.Unlock()
	pcmScaler.SetVolume(currentVol)

	// 4. Encode scaled PCM to opus
	encodeOpts := *StdEncodeOptions
	encodeOpts.Bitrate = p.Config.FFmpegBitrate
	encodeOpts.BufferedFrames = 4 // low buffer keeps volume changes near-instant

	encodingSession, err := EncodePCM(pcmScaler, &encodeOpts)
	if err != nil {
		log.Printf("[PLAYER] ERROR: Opus encode failed: %v", err)
		return
	}

	p.mu.Lock()
	p.encoding = encodingSession
	p.mu.Unlock()

	cleanupSession := func() {
		encodingSession.Cleanup()
		p.mu.Lock()
		if p.encoding == encodingSession {
			p.encoding = nil
			p.stream = nil
		}
		p.mu.Unlock()
	}

	p.VoiceConn.Speaking(true)

	// 5. Send opus frames to Discord. Buffered so the stream goroutine can
	// deliver its result and exit even when stop or skip wins the select
	// below and nobody receives.
	doneChan := make(chan error, 1)
	stream := NewStream(encodingSession, p.VoiceConn, doneChan)

	p.mu.Lock()
	p.stream = stream
	p.mu.Unlock()

	for {
		select {
		case <-p.stopChan:
			log.Printf("[PLAYER] Stop signal received")
			cleanupSession()
			return
		case <-p.skipChan:
			log.Printf("[PLAYER] Skip signal received")
			cleanupSession()
			return
		case <-p.volumeChangeChan:
			p.mu.Lock()
			newVol := float64(p.Volume) / 256.0
			p.mu.Unlock()
			pcmScaler.SetVolume(newVol)
			log.Printf("[PLAYER] Volume updated to %.2f", newVol)
		case err := <-doneChan:
			if err != nil && err != io.EOF {
				log.Printf("[PLAYER] Stream ended with error: %v", err)
			} else {
				log.Printf("[PLAYER] Stream finished normally")
			}
			cleanupSession()
			return
		}
	}
}

// FormatDuration formats a duration as M:SS.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
