package common

import (
	"fmt"
	"strings"
)

// CanonicalType maps an engine type name onto the generator's catalog names.
// Unknown names pass through upper-cased so they surface as skipped columns.
func CanonicalType(typeMap map[string]string, engineType string) string {
	key := strings.ToLower(strings.TrimSpace(engineType))
	if mapped, ok := typeMap[key]; ok {
		return mapped
	}
	return strings.ToUpper(key)
}

// WithMax renders the unbounded variant of a length-limited type, e.g. NVARCHAR(MAX).
func WithMax(declared string) string {
	return fmt.Sprintf("%s(MAX)", declared)
}
