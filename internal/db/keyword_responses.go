package db

import (
	"context"
	"fmt"
	"strings"
)

// Pairs returns the stored keyword/response table as an alternating
// keyword, response sequence in position order.
func (d *DB) Pairs(ctx context.Context) ([]string, error) {
	rows, err := d.Pool.Query(ctx, `SELECT keyword, response FROM keyword_responses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query keyword responses: %w", err)
	}
	defer rows.Close()

	var pairs []string
	for rows.Next() {
		var keyword, response string
		if err := rows.Scan(&keyword, &response); err != nil {
			return nil, fmt.Errorf("failed to scan keyword response: %w", err)
		}
		pairs = append(pairs, keyword, response)
	}
	return pairs, rows.Err()
}

// ReplaceKeywordResponses swaps the whole table for pairs in one transaction.
func (d *DB) ReplaceKeywordResponses(ctx context.Context, pairs []string) error {
	if len(pairs)%2 != 0 {
		return ErrOddKeywordPairs
	}
	for i := 0; i < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i]) == "" {
			return fmt.Errorf("%w (position %d)", ErrEmptyKeyword, i/2)
		}
	}

	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM keyword_responses`); err != nil {
		return fmt.Errorf("failed to clear keyword responses: %w", err)
	}

	for i := 0; i < len(pairs); i += 2 {
		_, err := tx.Exec(ctx, `
			INSERT INTO keyword_responses (position, keyword, response)
			VALUES ($1, $2, $3)
		`, i/2, pairs[i], pairs[i+1])
		if err != nil {
			return fmt.Errorf("failed to insert keyword %q: %w", pairs[i], err)
		}
	}

	return tx.Commit(ctx)
}
