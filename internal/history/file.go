package history

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"chatjpt/internal/seed"
)

// FileStore keeps the log in a flat file: every message followed by the
// record delimiter. Messages are not escaped, so a message containing the
// delimiter splits into two on the next Load.
type FileStore struct {
	Path string
}

// Load reads the log. A missing file is an empty log.
func (s FileStore) Load(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history %s: %w", s.Path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	parts := strings.Split(string(data), seed.Delimiter)
	// Every message is terminated, so the final part is the empty tail.
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts, nil
}

// Save overwrites the file with messages.
func (s FileStore) Save(ctx context.Context, messages []string) error {
	var b strings.Builder
	for _, m := range messages {
		b.WriteString(m)
		b.WriteString(seed.Delimiter)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".history-*")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("failed to replace history %s: %w", s.Path, err)
	}
	return nil
}
