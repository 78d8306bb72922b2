// Package analytics counts page visits and theme toggles in SQLite. Client addresses are
// stored only as salted hashes.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/andersonsilva/portfolio/internal/theme"
)

const schema = `
CREATE TABLE IF NOT EXISTS visits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visits_created_at ON visits (created_at);
CREATE TABLE IF NOT EXISTS theme_toggles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	mode TEXT NOT NULL,
	created_at INTEGER NOT NULL
);`

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// PathStat is the visit count of one path.
type PathStat struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisits    int64            `json:"total_visits"`
	UniqueVisitors int64            `json:"unique_visitors"`
	VisitsToday    int64            `json:"visits_today"`
	VisitsThisWeek int64            `json:"visits_this_week"`
	Toggles        map[string]int64 `json:"toggles"`
	TopPaths       []PathStat       `json:"top_paths"`
	RecentVisits   []Visit          `json:"recent_visits"`
}

// Store is the SQLite-backed analytics store. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithSalt fixes the IP hashing salt. By default a random salt is generated per process,
// so hashes cannot be correlated across restarts.
func WithSalt(salt string) Option {
	return func(s *Store) { s.salt = salt }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY between goroutines.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create analytics schema: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.salt == "" {
		salt, err := RandomToken()
		if err != nil {
			db.Close()
			return nil, err
		}
		s.salt = salt
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RandomToken returns 32 random bytes hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashIP returns the salted, truncated hash stored in place of ip.
func (s *Store) HashIP(ip string) string {
	return hashIP(s.salt, ip)
}

func hashIP(salt, ip string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit stores a page view.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, created_at) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecordToggle stores a theme switch to mode.
func (s *Store) RecordToggle(ctx context.Context, to theme.Mode) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO theme_toggles (mode, created_at) VALUES (?, ?)`,
		to.String(), s.now().Unix())
	if err != nil {
		return fmt.Errorf("record toggle: %w", err)
	}
	return nil
}

// Cleanup deletes visits older than maxAge and returns how many were removed.
func (s *Store) Cleanup(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := s.now().Add(-maxAge).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
