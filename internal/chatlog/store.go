package chatlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/support-bot/internal/intent"
)

// Channel names the surface a message arrived on.
type Channel string

const (
	ChannelHTTP      Channel = "http"
	ChannelWebsocket Channel = "websocket"
	ChannelSlack     Channel = "slack"
	ChannelTeams     Channel = "teams"
	ChannelCLI       Channel = "cli"
	ChannelMCP       Channel = "mcp"
)

// Event is one classification outcome. The message text is never stored.
type Event struct {
	ID         string        `json:"id"`
	CreatedAt  time.Time     `json:"created_at"`
	Channel    Channel       `json:"channel"`
	Intent     intent.Intent `json:"intent"`
	Confidence int           `json:"confidence"`
}

// Stats aggregates the event log.
type Stats struct {
	Total     int                   `json:"total"`
	ByIntent  map[intent.Intent]int `json:"by_intent"`
	ByChannel map[Channel]int       `json:"by_channel"`
}

// Store is an append-only log of classification events backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database location, ":memory:" for in-memory stores.
func (s *Store) Path() string {
	return s.path
}

// Record inserts an event. Missing IDs and timestamps are filled in.
func (s *Store) Record(ctx context.Context, ev Event) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_events (id, created_at, channel, intent, confidence)
		VALUES (?, ?, ?, ?, ?)`,
		ev.ID,
		ev.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(ev.Channel),
		string(ev.Intent),
		ev.Confidence,
	)
	if err != nil {
		return fmt.Errorf("inserting chat event: %w", err)
	}
	return nil
}

// Stats counts events by intent and by channel.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	st := Stats{
		ByIntent:  make(map[intent.Intent]int),
		ByChannel: make(map[Channel]int),
	}

	rows, err := s.db.QueryContext(ctx, `SELECT intent, COUNT(*) FROM chat_events GROUP BY intent`)
	if err != nil {
		return Stats{}, fmt.Errorf("counting intents: %w", err)
	}
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			rows.Close()
			return Stats{}, fmt.Errorf("scanning intent count: %w", err)
		}
		st.ByIntent[intent.Intent(name)] = n
		st.Total += n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterating intent counts: %w", err)
	}

	rows, err = s.db.QueryContext(ctx, `SELECT channel, COUNT(*) FROM chat_events GROUP BY channel`)
	if err != nil {
		return Stats{}, fmt.Errorf("counting channels: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return Stats{}, fmt.Errorf("scanning channel count: %w", err)
		}
		st.ByChannel[Channel(name)] = n
	}
	return st, rows.Err()
}

// Recent returns up to limit events, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, channel, intent, confidence
		FROM chat_events ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying chat events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			ev        Event
			createdAt string
			channel   string
			name      string
		)
		if err := rows.Scan(&ev.ID, &createdAt, &channel, &name, &ev.Confidence); err != nil {
			return nil, fmt.Errorf("scanning chat event: %w", err)
		}
		ev.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
		}
		ev.Channel = Channel(channel)
		ev.Intent = intent.Intent(name)
		events = append(events, ev)
	}
	return events, rows.Err()
}
