package db

import (
	"context"
	"fmt"

	"chatjpt/internal/models"
)

// IncrementKeywordLookup counts one answered prompt against keyword and
// outcome. Fallback replies are recorded under models.FallbackKeyword.
func (d *DB) IncrementKeywordLookup(ctx context.Context, keyword, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO keyword_lookups (keyword, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (keyword, outcome) DO UPDATE
		SET count = keyword_lookups.count + 1, last_seen_at = NOW()
	`, keyword, outcome)
	if err != nil {
		return fmt.Errorf("failed to record lookup for %q: %w", keyword, err)
	}
	return nil
}

// GetAllKeywordLookups returns every counter, busiest first.
func (d *DB) GetAllKeywordLookups(ctx context.Context) ([]models.KeywordLookup, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT keyword, outcome, count, last_seen_at
		FROM keyword_lookups
		ORDER BY count DESC, keyword, outcome
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query keyword lookups: %w", err)
	}
	defer rows.Close()

	var lookups []models.KeywordLookup
	for rows.Next() {
		var l models.KeywordLookup
		if err := rows.Scan(&l.Keyword, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, fmt.Errorf("failed to scan keyword lookup: %w", err)
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
