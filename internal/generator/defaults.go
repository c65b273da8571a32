package generator

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Rana718/tablefill/internal/types"
	"github.com/google/uuid"
)

var numericDefault = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

var timestampFuncs = map[string]struct{}{
	"getdate()":           {},
	"getutcdate()":        {},
	"sysdatetime()":       {},
	"sysutcdatetime()":    {},
	"current_timestamp":   {},
	"current_timestamp()": {},
	"now()":               {},
	"localtimestamp":      {},
	"localtimestamp()":    {},
}

var uuidFuncs = map[string]struct{}{
	"newid()":            {},
	"newsequentialid()":  {},
	"gen_random_uuid()":  {},
	"uuid_generate_v4()": {},
	"uuid()":             {},
}

// NormalizeDefault converts a catalog default expression into a literal.
// An empty expression means the column has no default.
func NormalizeDefault(raw string) types.Value {
	return NormalizeDefaultAt(raw, time.Now())
}

func NormalizeDefaultAt(raw string, now time.Time) types.Value {
	expr := stripParens(strings.TrimSpace(raw))
	if expr == "" {
		return types.AbsentValue()
	}

	fn := strings.ToLower(expr)
	if _, ok := timestampFuncs[fn]; ok {
		return types.StringValue(now.Format(TimestampLayout))
	}
	if _, ok := uuidFuncs[fn]; ok {
		return types.StringValue(uuid.NewString())
	}

	if numericDefault.MatchString(expr) {
		if dot := strings.IndexByte(expr, '.'); dot >= 0 {
			if f, err := strconv.ParseFloat(expr, 64); err == nil {
				return types.DecimalValue(f, len(expr)-dot-1)
			}
		} else if n, err := strconv.ParseInt(expr, 10, 64); err == nil {
			return types.IntValue(n)
		}
	}

	return types.StringValue(unquote(expr))
}

// stripParens removes balanced parentheses wrapping the whole expression,
// so "((0))" becomes "0" while "(a)+(b)" is left alone.
func stripParens(s string) string {
	for len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' && closingParen(s) == len(s)-1 {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

func closingParen(s string) int {
	depth := 0
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			inQuote = !inQuote
		case '(':
			if !inQuote {
				depth++
			}
		case ')':
			if !inQuote {
				depth--
				if depth == 0 {
					return i
				}
			}
		}
	}
	return -1
}

func unquote(s string) string {
	body := s
	if len(body) > 1 && (body[0] == 'N' || body[0] == 'n') && body[1] == '\'' {
		body = body[1:]
	}
	if len(body) >= 2 && body[0] == '\'' && body[len(body)-1] == '\'' {
		return strings.ReplaceAll(body[1:len(body)-1], "''", "'")
	}
	return s
}
