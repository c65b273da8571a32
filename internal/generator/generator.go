package generator

import (
	"math"
	"strings"
	"time"

	"github.com/Rana718/tablefill/internal/types"
	"github.com/brianvoe/gofakeit/v7"
)

// TimestampLayout is the literal format for generated dates and timestamp defaults.
const TimestampLayout = "2006-01-02 15:04:05"

const DefaultStringCap = 50

// Generator turns a column's declared type into one plausible value.
// Branch selection is deterministic, content is random.
type Generator struct {
	faker     *gofakeit.Faker
	stringCap int
	now       func() time.Time
}

type Option func(*Generator)

// WithSeed makes value content reproducible. Zero picks a random seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.faker = gofakeit.New(seed)
	}
}

// WithStringCap sets the length used for bounded strings that declare no length.
func WithStringCap(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.stringCap = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		faker:     gofakeit.New(0),
		stringCap: DefaultStringCap,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a value for the column, or an absent value when the
// declared type is not in the catalog.
func (g *Generator) Generate(colName, declaredType string, maxLength int) types.Value {
	rule, ok := Match(colName, declaredType)
	if !ok {
		return types.AbsentValue()
	}
	return Truncate(rule.Produce(g, maxLength), maxLength)
}

// Truncate cuts string values to maxLength characters when maxLength is positive.
func Truncate(v types.Value, maxLength int) types.Value {
	if v.Kind != types.KindString || maxLength <= 0 {
		return v
	}
	v.Str = truncateRunes(v.Str, maxLength)
	return v
}

func truncateRunes(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func roundTo(f float64, scale int) float64 {
	p := math.Pow10(scale)
	return math.Round(f*p) / p
}

// IntRange draws a uniform integer in [min, max].
func (g *Generator) IntRange(min, max int) int {
	return g.faker.IntRange(min, max)
}

func (g *Generator) intRange(min, max int) types.Value {
	return types.IntValue(int64(g.faker.IntRange(min, max)))
}

func (g *Generator) decimal(min, max float64, scale int) types.Value {
	return types.DecimalValue(roundTo(g.faker.Float64Range(min, max), scale), scale)
}

func (g *Generator) decadeTimestamp() time.Time {
	now := g.now()
	start := time.Date(now.Year()-now.Year()%10, time.January, 1, 0, 0, 0, 0, now.Location())
	if !now.After(start) {
		return start
	}
	return g.faker.DateRange(start, now)
}

// text builds sentence text of at most limit characters.
func (g *Generator) text(limit int) string {
	if limit <= 0 {
		limit = g.stringCap
	}
	if limit < 5 {
		return truncateRunes(g.faker.Word(), limit)
	}

	var b strings.Builder
	for attempts := 0; b.Len() < limit && attempts < 16; attempts++ {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(g.faker.Sentence(6))
	}
	return strings.TrimSpace(truncateRunes(b.String(), limit))
}

func (g *Generator) randomBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(g.faker.IntRange(0, 255))
	}
	return b
}
