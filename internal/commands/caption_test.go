package commands

import (
	"strings"
	"testing"
)

func TestChunkTranscriptEmpty(t *testing.T) {
	if got := chunkTranscript(nil, 100); len(got) != 0 {
		t.Errorf("Expected no chunks, got %d", len(got))
	}
	if got := chunkTranscript([]string{"", ""}, 100); len(got) != 0 {
		t.Errorf("Expected no chunks for blank lines, got %d", len(got))
	}
}

func TestChunkTranscriptSingle(t *testing.T) {
	lines := []string{"Hello", "", "World"}
	got := chunkTranscript(lines, 100)
	if len(got) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(got))
	}
	if got[0] != "Hello\n\nWorld" {
		t.Errorf("Unexpected chunk: %q", got[0])
	}
}

func TestChunkTranscriptSplits(t *testing.T) {
	lines := []string{
		strings.Repeat("a", 40),
		strings.Repeat("b", 40),
		strings.Repeat("c", 40),
	}
	got := chunkTranscript(lines, 90)
	if len(got) != 2 {
		t.Fatalf("Expected 2 chunks, got %d: %q", len(got), got)
	}
	for _, c := range got {
		if len(c) > 90 {
			t.Errorf("Chunk exceeds limit: %d chars", len(c))
		}
	}
}

func TestChunkTranscriptLongLine(t *testing.T) {
	lines := []string{strings.Repeat("x", 250)}
	got := chunkTranscript(lines, 100)
	if len(got) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(got))
	}
	if len(got[0]) != 100 || len(got[1]) != 100 || len(got[2]) != 50 {
		t.Errorf("Unexpected chunk lengths: %d, %d, %d", len(got[0]), len(got[1]), len(got[2]))
	}
}
