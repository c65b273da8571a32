package generator

import (
	"math"
	"strings"
	"time"

	"github.com/Rana718/tablefill/internal/types"
	"github.com/google/uuid"
)

// Rule pairs a declared-type predicate with the producer for that category.
// Match receives the column name and the upper-cased declared type.
type Rule struct {
	Name    string
	Match   func(colName, typeUpper string) bool
	Produce func(g *Generator, maxLength int) types.Value
}

const (
	maxVariant = "VARCHAR(MAX)"

	hierarchyPath = "/1/3/5/"
	xmlSnippet    = "<root><name>Example</name></root>"
	spatialPoint  = "POINT(-122.084 37.421998)"
)

// rules is evaluated top-down and the first match wins. Several categories
// overlap by substring (INT/BIGINT, DATE/DATETIMEOFFSET, VARCHAR/VARCHAR(MAX)),
// so the exclusions in each predicate are part of the precedence.
var rules = []Rule{
	{
		Name:  "tiny-int",
		Match: typeHas("TINYINT"),
		Produce: func(g *Generator, _ int) types.Value {
			return g.intRange(0, math.MaxUint8)
		},
	},
	{
		Name:  "small-int",
		Match: typeHas("SMALLINT"),
		Produce: func(g *Generator, _ int) types.Value {
			return g.intRange(math.MinInt16, math.MaxInt16)
		},
	},
	{
		Name:  "int",
		Match: all(typeHas("INT"), typeLacks("BIGINT")),
		Produce: func(g *Generator, _ int) types.Value {
			return g.intRange(math.MinInt32, math.MaxInt32)
		},
	},
	{
		Name:  "big-int",
		Match: typeHas("BIGINT"),
		Produce: func(g *Generator, _ int) types.Value {
			return types.IntValue(g.faker.Int64())
		},
	},
	{
		Name:  "decimal",
		Match: typeHas("DECIMAL", "NUMERIC"),
		Produce: func(g *Generator, _ int) types.Value {
			return g.decimal(1, 99999, 2)
		},
	},
	{
		Name:  "float",
		Match: typeHas("FLOAT", "REAL"),
		Produce: func(g *Generator, _ int) types.Value {
			return g.decimal(1, 1000, 6)
		},
	},
	{
		Name: "boolean",
		Match: func(colName, typeUpper string) bool {
			return strings.Contains(typeUpper, "BIT") || strings.Contains(strings.ToLower(colName), "is_")
		},
		Produce: func(g *Generator, _ int) types.Value {
			return g.intRange(0, 1)
		},
	},
	{
		Name:  "datetime",
		Match: all(typeHas("DATE", "DATETIME"), typeLacks("DATETIMEOFFSET")),
		Produce: func(g *Generator, _ int) types.Value {
			return types.StringValue(g.decadeTimestamp().Format(TimestampLayout))
		},
	},
	{
		Name:  "time",
		Match: all(typeHas("TIME"), typeLacks("DATETIMEOFFSET")),
		Produce: func(g *Generator, _ int) types.Value {
			return types.StringValue(g.faker.Date().Format("15:04:05"))
		},
	},
	{
		Name:  "datetimeoffset",
		Match: typeHas("DATETIMEOFFSET"),
		Produce: func(g *Generator, _ int) types.Value {
			return types.StringValue(g.faker.Date().UTC().Format(time.RFC3339))
		},
	},
	{
		Name:  "bounded-string",
		Match: all(typeHas("VARCHAR", "NVARCHAR"), typeLacks(maxVariant)),
		Produce: func(g *Generator, maxLength int) types.Value {
			return types.StringValue(g.text(maxLength))
		},
	},
	{
		Name:  "fixed-string",
		Match: all(typeHas("CHAR", "NCHAR"), typeLacks(maxVariant)),
		Produce: func(g *Generator, _ int) types.Value {
			return types.StringValue(g.faker.Word())
		},
	},
	{
		Name:  "large-text",
		Match: typeHas("TEXT", "NTEXT", maxVariant),
		Produce: func(g *Generator, _ int) types.Value {
			return types.StringValue(g.faker.Paragraph(1, 3, 10, " "))
		},
	},
	{
		Name:  "binary",
		Match: typeHas("BINARY", "VARBINARY", "IMAGE"),
		Produce: func(g *Generator, _ int) types.Value {
			return types.BytesValue(g.randomBytes(10))
		},
	},
	{
		Name:  "guid",
		Match: typeHas("UNIQUEIDENTIFIER"),
		Produce: func(_ *Generator, _ int) types.Value {
			return types.StringValue(uuid.NewString())
		},
	},
	{
		Name:  "variant",
		Match: typeHas("SQL_VARIANT"),
		Produce: func(g *Generator, _ int) types.Value {
			pool := []types.Value{
				types.StringValue("text_value"),
				types.IntValue(123),
				types.DecimalValue(45.67, 2),
				types.StringValue(g.faker.Email()),
			}
			return pool[g.faker.IntRange(0, len(pool)-1)]
		},
	},
	{
		Name:  "hierarchyid",
		Match: typeHas("HIERARCHYID"),
		Produce: func(_ *Generator, _ int) types.Value {
			return types.StringValue(hierarchyPath)
		},
	},
	{
		Name:  "xml",
		Match: typeHas("XML"),
		Produce: func(_ *Generator, _ int) types.Value {
			return types.StringValue(xmlSnippet)
		},
	},
	{
		Name:  "spatial",
		Match: typeHas("GEOMETRY", "GEOGRAPHY"),
		Produce: func(_ *Generator, _ int) types.Value {
			return types.StringValue(spatialPoint)
		},
	},
}

// Rules returns the dispatch table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Match returns the first rule accepting the column.
func Match(colName, declaredType string) (Rule, bool) {
	typeUpper := strings.ToUpper(declaredType)
	for _, r := range rules {
		if r.Match(colName, typeUpper) {
			return r, true
		}
	}
	return Rule{}, false
}

// Category names the rule a column dispatches to, or "" for unsupported types.
func Category(colName, declaredType string) string {
	r, ok := Match(colName, declaredType)
	if !ok {
		return ""
	}
	return r.Name
}

func typeHas(subs ...string) func(string, string) bool {
	return func(_, typeUpper string) bool {
		for _, s := range subs {
			if strings.Contains(typeUpper, s) {
				return true
			}
		}
		return false
	}
}

func typeLacks(subs ...string) func(string, string) bool {
	has := typeHas(subs...)
	return func(colName, typeUpper string) bool {
		return !has(colName, typeUpper)
	}
}

func all(preds ...func(string, string) bool) func(string, string) bool {
	return func(colName, typeUpper string) bool {
		for _, p := range preds {
			if !p(colName, typeUpper) {
				return false
			}
		}
		return true
	}
}
