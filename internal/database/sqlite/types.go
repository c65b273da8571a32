package sqlite

import (
	"strconv"
	"strings"
)

// splitDeclaredType separates "VARCHAR(40)" into "VARCHAR" and 40. Only a
// single numeric argument is read as a length; DECIMAL(10,2) has none.
func splitDeclaredType(declared string) (string, int) {
	declared = strings.TrimSpace(declared)
	open := strings.Index(declared, "(")
	if open < 0 {
		return declared, -1
	}
	base := strings.TrimSpace(declared[:open])

	end := strings.Index(declared[open:], ")")
	if end < 0 {
		return base, -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(declared[open+1 : open+end]))
	if err != nil || n <= 0 {
		return base, -1
	}
	return base, n
}
