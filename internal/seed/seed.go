// Package seed loads the keyword/response sequence that an Engine is built
// from. A record is a single line of fields separated by Delimiter,
// alternating keyword then response.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"chatjpt/internal/responder"
)

// Delimiter separates fields in a seed record (ASCII file separator).
const Delimiter = "\x1c"

// ErrNotFound is returned when a seed source does not exist.
var ErrNotFound = errors.New("seed data not found")

// Source provides a flat keyword, response, keyword, response sequence.
type Source interface {
	Pairs(ctx context.Context) ([]string, error)
}

// Split breaks a record into its fields. Trailing empty fields are dropped,
// so a record terminated by the delimiter has no phantom last field.
func Split(record string) []string {
	if record == "" {
		return nil
	}
	parts := strings.Split(record, Delimiter)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return nil
	}
	return parts
}

// Join is the inverse of Split for fields that do not contain Delimiter.
func Join(fields []string) string {
	return strings.Join(fields, Delimiter)
}

// FileSource reads the last line of a file as the seed record.
type FileSource struct {
	Path string
}

// Pairs implements Source.
func (s FileSource) Pairs(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Path)
		}
		return nil, fmt.Errorf("failed to read seed file %s: %w", s.Path, err)
	}
	return Split(lastLine(string(data))), nil
}

// lastLine returns the final line of text, ignoring a trailing newline.
func lastLine(text string) string {
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	}
	return strings.TrimSuffix(text, "\r")
}

// Static is a Source backed by an in-memory sequence.
type Static []string

// Pairs implements Source.
func (s Static) Pairs(ctx context.Context) ([]string, error) {
	return append([]string(nil), s...), nil
}

// Chain concatenates the pairs of several sources in order. Sources that
// report ErrNotFound are skipped. Because the engine keeps the last response
// for a repeated keyword, later sources override earlier ones.
func Chain(sources ...Source) Source {
	return chain(sources)
}

type chain []Source

func (c chain) Pairs(ctx context.Context) ([]string, error) {
	var all []string
	found := false
	for _, src := range c {
		pairs, err := src.Pairs(ctx)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		if len(pairs)%2 != 0 {
			return nil, fmt.Errorf("%w: source %T has %d strings",
				responder.ErrInvalidSeedData, src, len(pairs))
		}
		found = true
		all = append(all, pairs...)
	}
	if !found && len(c) > 0 {
		return nil, ErrNotFound
	}
	return all, nil
}

// Load builds an engine from src. Absent seed data is not an error: the
// engine is simply empty and always falls back. Malformed data is.
func Load(ctx context.Context, src Source, opts ...responder.Option) (*responder.Engine, error) {
	pairs, err := src.Pairs(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return responder.New(pairs, opts...)
}
