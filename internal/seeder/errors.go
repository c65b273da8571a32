package seeder

import "errors"

var (
	// ErrSchemaLookup wraps any failure to fetch table metadata.
	ErrSchemaLookup = errors.New("schema lookup failed")
	// ErrGeneration wraps failures while assembling rows.
	ErrGeneration = errors.New("data generation failed")
	// ErrInsert wraps failures reported by the row sink.
	ErrInsert = errors.New("insert failed")

	ErrKeySpaceExhausted = errors.New("key space exhausted")
	ErrInvalidRowCount   = errors.New("row count must be at least 1")
)
