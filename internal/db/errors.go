package db

import "errors"

// Domain-level database error sentinels.
var (
	// Seed errors
	ErrOddKeywordPairs = errors.New("keyword responses must come in keyword, response pairs")
	ErrEmptyKeyword    = errors.New("keyword must not be empty")
)
