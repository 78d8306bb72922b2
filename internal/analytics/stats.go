package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const (
	topPathsLimit     = 10
	recentVisitsLimit = 50
)

// Stats computes the dashboard summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{Toggles: map[string]int64{}}

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisits, `SELECT COUNT(*) FROM visits`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`, nil},
		{&stats.VisitsToday, `SELECT COUNT(*) FROM visits WHERE created_at >= ?`, []any{startOfDay.Unix()}},
		{&stats.VisitsThisWeek, `SELECT COUNT(*) FROM visits WHERE created_at >= ?`, []any{weekAgo.Unix()}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("count visits: %w", err)
		}
	}

	if err := s.loadToggles(ctx, stats); err != nil {
		return nil, err
	}
	if err := s.loadTopPaths(ctx, stats); err != nil {
		return nil, err
	}

	recent, err := s.RecentVisits(ctx, recentVisitsLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentVisits = recent
	return stats, nil
}

func (s *Store) loadToggles(ctx context.Context, stats *Stats) error {
	rows, err := s.db.QueryContext(ctx, `SELECT mode, COUNT(*) FROM theme_toggles GROUP BY mode`)
	if err != nil {
		return fmt.Errorf("count toggles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mode string
		var n int64
		if err := rows.Scan(&mode, &n); err != nil {
			return fmt.Errorf("scan toggle count: %w", err)
		}
		stats.Toggles[mode] = n
	}
	return rows.Err()
}

func (s *Store) loadTopPaths(ctx context.Context, stats *Stats) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS visits
		FROM visits
		GROUP BY path
		ORDER BY visits DESC, path ASC
		LIMIT ?`, topPathsLimit)
	if err != nil {
		return fmt.Errorf("top paths: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p PathStat
		var path sql.NullString
		if err := rows.Scan(&path, &p.Visits); err != nil {
			return fmt.Errorf("scan top path: %w", err)
		}
		p.Path = path.String
		stats.TopPaths = append(stats.TopPaths, p)
	}
	return rows.Err()
}

// RecentVisits returns up to limit visits, newest first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), created_at
		FROM visits
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
