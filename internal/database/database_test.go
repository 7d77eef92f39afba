package database

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPermissions(t *testing.T) {
	db := openTestDB(t)

	has, err := db.HasPermission("user1", "music.play")
	if err != nil {
		t.Fatalf("HasPermission failed: %v", err)
	}
	if has {
		t.Error("expected no permission before grant")
	}

	if err := db.AddPermission("user1", "music.play"); err != nil {
		t.Fatalf("AddPermission failed: %v", err)
	}
	// Granting twice is a no-op
	if err := db.AddPermission("user1", "music.play"); err != nil {
		t.Fatalf("duplicate AddPermission failed: %v", err)
	}

	has, err = db.HasPermission("user1", "music.play")
	if err != nil {
		t.Fatalf("HasPermission failed: %v", err)
	}
	if !has {
		t.Error("expected permission after grant")
	}

	nodes, err := db.ListPermissions("user1")
	if err != nil {
		t.Fatalf("ListPermissions failed: %v", err)
	}
	if len(nodes) != 1 || nodes[0] != "music.play" {
		t.Errorf("unexpected nodes: %v", nodes)
	}

	if err := db.RemovePermission("user1", "music.play"); err != nil {
		t.Fatalf("RemovePermission failed: %v", err)
	}
	has, _ = db.HasPermission("user1", "music.play")
	if has {
		t.Error("expected no permission after revoke")
	}
}

func TestGuildSettingsDefaults(t *testing.T) {
	db := openTestDB(t)

	s, err := db.GetGuildSettings("guild1")
	if err != nil {
		t.Fatalf("GetGuildSettings failed: %v", err)
	}
	if s.Language != "en" || s.TimeSep != 4 {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestGuildSettingsUpserts(t *testing.T) {
	db := openTestDB(t)

	if err := db.SetGuildLanguage("guild1", "ko"); err != nil {
		t.Fatalf("SetGuildLanguage failed: %v", err)
	}
	if err := db.SetGuildTimeSep("guild1", 10); err != nil {
		t.Fatalf("SetGuildTimeSep failed: %v", err)
	}

	s, err := db.GetGuildSettings("guild1")
	if err != nil {
		t.Fatalf("GetGuildSettings failed: %v", err)
	}
	if s.Language != "ko" {
		t.Errorf("expected language ko, got %s", s.Language)
	}
	if s.TimeSep != 10 {
		t.Errorf("expected time_sep 10, got %d", s.TimeSep)
	}

	// Updating one field must not reset the other
	if err := db.SetGuildLanguage("guild1", "en"); err != nil {
		t.Fatalf("SetGuildLanguage failed: %v", err)
	}
	s, _ = db.GetGuildSettings("guild1")
	if s.TimeSep != 10 {
		t.Errorf("time_sep reset by language update: %+v", s)
	}
}
