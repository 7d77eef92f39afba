package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

type DB struct {
	conn *sql.DB
}

// New initializes the database connection and creates the schema.
func New(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	d := &DB{conn: db}
	if err := d.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database connected: %s", dsn)
	return d, nil
}

func (d *DB) migrate() error {
	// Permissions table
	_, err := d.conn.Exec(`
	CREATE TABLE IF NOT EXISTS permissions (
		user_id TEXT NOT NULL,
		node TEXT NOT NULL,
		PRIMARY KEY (user_id, node)
	);`)
	if err != nil {
		return err
	}

	// Per-guild settings: message language and caption gap threshold
	_, err = d.conn.Exec(`
	CREATE TABLE IF NOT EXISTS guild_settings (
		guild_id TEXT PRIMARY KEY,
		language TEXT NOT NULL DEFAULT 'en',
		time_sep INTEGER NOT NULL DEFAULT 4
	);`)
	return err
}

func (d *DB) Close() error {
	log.Println("Database connection closing.")
	return d.conn.Close()
}

// AddPermission grants a permission node to a user.
func (d *DB) AddPermission(userID, node string) error {
	_, err := d.conn.Exec("INSERT OR IGNORE INTO permissions (user_id, node) VALUES (?, ?)", userID, node)
	return err
}

// RemovePermission revokes a permission node from a user.
func (d *DB) RemovePermission(userID, node string) error {
	_, err := d.conn.Exec("DELETE FROM permissions WHERE user_id = ? AND node = ?", userID, node)
	return err
}

// HasPermission checks if a user has a specific permission node.
func (d *DB) HasPermission(userID, node string) (bool, error) {
	var exists int
	err := d.conn.QueryRow("SELECT 1 FROM permissions WHERE user_id = ? AND node = ?", userID, node).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListPermissions returns all permission nodes for a user.
func (d *DB) ListPermissions(userID string) ([]string, error) {
	rows, err := d.conn.Query("SELECT node FROM permissions WHERE user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []string
	for rows.Next() {
		var node string
		if err := rows.Scan(&node); err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// Guild settings

type GuildSettings struct {
	GuildID  string
	Language string
	TimeSep  int // caption merge gap threshold, seconds
}

// GetGuildSettings returns the settings row for a guild, or the defaults
// when the guild has never changed anything.
func (d *DB) GetGuildSettings(guildID string) (*GuildSettings, error) {
	s := &GuildSettings{GuildID: guildID, Language: "en", TimeSep: 4}
	err := d.conn.QueryRow("SELECT language, time_sep FROM guild_settings WHERE guild_id = ?", guildID).Scan(&s.Language, &s.TimeSep)
	if err == sql.ErrNoRows {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GuildLanguage returns just the configured language for a guild.
func (d *DB) GuildLanguage(guildID string) (string, error) {
	s, err := d.GetGuildSettings(guildID)
	if err != nil {
		return "", err
	}
	return s.Language, nil
}

// SetGuildLanguage sets the message language for a guild.
func (d *DB) SetGuildLanguage(guildID, language string) error {
	_, err := d.conn.Exec(`
		INSERT INTO guild_settings (guild_id, language) VALUES (?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET language = excluded.language
	`, guildID, language)
	return err
}

// SetGuildTimeSep sets the caption gap threshold for a guild.
func (d *DB) SetGuildTimeSep(guildID string, timeSep int) error {
	_, err := d.conn.Exec(`
		INSERT INTO guild_settings (guild_id, time_sep) VALUES (?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET time_sep = excluded.time_sep
	`, guildID, timeSep)
	return err
}
