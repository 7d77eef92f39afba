// Package ytdl resolves tracks and caption files through the yt-dlp binary.
// Site-specific extraction stays yt-dlp's problem; this package only shapes
// queries and parses the printed output.
package ytdl

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/ppalone/ytsearch"
)

// Track is one playable item resolved from a URL or search query.
type Track struct {
	ID       string
	Title    string
	Uploader string
	URL      string
	Duration time.Duration
}

// Client wraps yt-dlp invocations and the caption cache directory.
type Client struct {
	CaptionDir string
	search     *ytsearch.Client
}

// NewClient creates a Client caching caption files under captionDir.
func NewClient(captionDir string) (*Client, error) {
	if err := os.MkdirAll(captionDir, 0o755); err != nil {
		return nil, fmt.Errorf("create caption cache dir: %w", err)
	}
	return &Client{
		CaptionDir: captionDir,
		search:     ytsearch.NewClient(nil),
	}, nil
}

const printFields = "%(webpage_url)s\t%(title)s\t%(uploader)s\t%(duration)s\t%(id)s"

func parseTrackLine(line string) (Track, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) < 5 {
		return Track{}, false
	}
	d, _ := time.ParseDuration(parts[3] + "s")
	return Track{URL: parts[0], Title: parts[1], Uploader: parts[2], Duration: d, ID: parts[4]}, true
}

// Resolve returns metadata for a URL, or for the first search hit when the
// query is not a URL. Nothing is downloaded.
func (c *Client) Resolve(ctx context.Context, query string) (*Track, error) {
	if !strings.HasPrefix(query, "http://") && !strings.HasPrefix(query, "https://") {
		query = "ytsearch1:" + query
	}

	res, err := ytdlp.New().
		Print(printFields).
		NoPlaylist().
		NoWarnings().
		IgnoreConfig().
		Run(ctx, "--skip-download", query)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp resolve: %w", err)
	}

	for _, line := range strings.Split(strings.TrimSpace(res.Stdout), "\n") {
		if t, ok := parseTrackLine(line); ok {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("yt-dlp produced no usable metadata for %q", query)
}

// Search returns up to n results. The native search client is tried first;
// yt-dlp is the slower fallback.
func (c *Client) Search(ctx context.Context, query string, n int) ([]Track, error) {
	if res, err := c.search.Search(ctx, query); err == nil {
		tracks := make([]Track, 0, n)
		for _, v := range res.Results {
			if v.VideoID == "" {
				continue
			}
			tracks = append(tracks, Track{
				ID:    v.VideoID,
				Title: v.Title,
				URL:   "https://www.youtube.com/watch?v=" + v.VideoID,
			})
			if len(tracks) == n {
				break
			}
		}
		if len(tracks) > 0 {
			return tracks, nil
		}
	} else {
		log.Printf("[YTDL] Native search failed, falling back to yt-dlp: %v", err)
	}

	res, err := ytdlp.New().
		FlatPlaylist().
		Print(printFields).
		PlaylistItems(fmt.Sprintf("1-%d", n)).
		NoWarnings().
		IgnoreConfig().
		Run(ctx, fmt.Sprintf("ytsearch%d:%s", n, query))
	if err != nil {
		return nil, fmt.Errorf("yt-dlp search: %w", err)
	}

	var tracks []Track
	for _, line := range strings.Split(strings.TrimSpace(res.Stdout), "\n") {
		if t, ok := parseTrackLine(line); ok {
			tracks = append(tracks, t)
		}
	}
	return tracks, nil
}

// StreamCommand builds the yt-dlp process that writes the best audio stream
// to stdout. The caller owns starting and waiting on the command.
func (c *Client) StreamCommand(ctx context.Context, url string) *exec.Cmd {
	cmd := ytdlp.New().
		Format("bestaudio[ext=webm]/bestaudio").
		Output("-").
		NoSimulate().
		NoPart().
		NoPlaylist().
		NoCheckFormats().
		NoWarnings().
		IgnoreConfig().
		BuildCommand(ctx, url)
	cmd.Env = append(os.Environ(), "PYTHONUNBUFFERED=1")
	return cmd
}

// CaptionPath returns the cache location for a video's caption file.
func (c *Client) CaptionPath(videoID, lang string) string {
	return filepath.Join(c.CaptionDir, videoID+"."+lang+".srt")
}

// FetchCaptions downloads the uploaded or auto-generated captions for a
// video as SRT into the cache directory and returns the file path. Cached
// files are reused.
func (c *Client) FetchCaptions(ctx context.Context, url, videoID, lang string) (string, error) {
	cached := c.CaptionPath(videoID, lang)
	if _, err := os.Stat(cached); err == nil {
		log.Printf("[YTDL] Caption cache hit: %s", cached)
		return cached, nil
	}

	_, err := ytdlp.New().
		SkipDownload().
		WriteSubs().
		WriteAutoSubs().
		SubLangs(lang).
		ConvertSubs("srt").
		Output(filepath.Join(c.CaptionDir, "%(id)s")).
		NoPlaylist().
		NoWarnings().
		IgnoreConfig().
		Run(ctx, url)
	if err != nil {
		return "", fmt.Errorf("yt-dlp captions: %w", err)
	}

	// yt-dlp appends the language tag itself; pick up whatever variant it
	// wrote (e.g. id.en.srt or id.en-US.srt) and settle it under the
	// canonical cache name.
	entries, err := os.ReadDir(c.CaptionDir)
	if err != nil {
		return "", fmt.Errorf("read caption cache dir: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, videoID+".") || !strings.HasSuffix(name, ".srt") {
			continue
		}
		path := filepath.Join(c.CaptionDir, name)
		if path != cached {
			if err := os.Rename(path, cached); err != nil {
				return path, nil
			}
		}
		return cached, nil
	}
	return "", fmt.Errorf("no %s captions available for %s", lang, videoID)
}
