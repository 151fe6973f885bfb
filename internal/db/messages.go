package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"chatjpt/internal/models"
)

// Load returns the conversation log in order.
func (d *DB) Load(ctx context.Context) ([]string, error) {
	messages, err := d.ListMessages(ctx)
	if err != nil {
		return nil, err
	}
	bodies := make([]string, len(messages))
	for i, m := range messages {
		bodies[i] = m.Body
	}
	return bodies, nil
}

// ListMessages returns every stored message ordered by position.
func (d *DB) ListMessages(ctx context.Context) ([]models.Message, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, position, role, body, created_at
		FROM messages
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Position, &m.Role, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Save replaces the stored log with messages.
func (d *DB) Save(ctx context.Context, messages []string) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM messages`); err != nil {
		return fmt.Errorf("failed to clear messages: %w", err)
	}

	rows := make([][]any, len(messages))
	for i, body := range messages {
		pos := int64(i)
		rows[i] = []any{uuid.New(), pos, models.RoleAt(pos), body}
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"messages"},
		[]string{"id", "position", "role", "body"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("failed to copy messages: %w", err)
	}

	return tx.Commit(ctx)
}
