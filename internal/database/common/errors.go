package common

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrTableNotFound     = errors.New("table not found")
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// validIdentifier validates SQL identifiers (table/column names) to prevent SQL injection
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func IsValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

func ValidateIdentifier(name string) error {
	if !IsValidIdentifier(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}

func TableNotFound(table string) error {
	return fmt.Errorf("%w: %s", ErrTableNotFound, table)
}
