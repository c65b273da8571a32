package types

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
)

type Kind int

const (
	KindAbsent Kind = iota
	KindInt
	KindDecimal
	KindString
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	default:
		return "absent"
	}
}

// Value is a generated column value. Only the field matching Kind is meaningful.
// Decimals keep the scale they were rounded to.
type Value struct {
	Kind    Kind
	Int     int64
	Decimal float64
	Scale   int
	Str     string
	Bytes   []byte
}

func AbsentValue() Value { return Value{} }

func IntValue(v int64) Value { return Value{Kind: KindInt, Int: v} }

func DecimalValue(v float64, scale int) Value {
	return Value{Kind: KindDecimal, Decimal: v, Scale: scale}
}

func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

func BytesValue(b []byte) Value { return Value{Kind: KindBytes, Bytes: b} }

func (v Value) IsAbsent() bool { return v.Kind == KindAbsent }

// Any returns the value as a database/sql driver argument. Absent maps to nil.
func (v Value) Any() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindDecimal:
		return v.Decimal
	case KindString:
		return v.Str
	case KindBytes:
		return v.Bytes
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindDecimal:
		return strconv.FormatFloat(v.Decimal, 'f', v.Scale, 64)
	case KindString:
		return v.Str
	case KindBytes:
		return "0x" + hex.EncodeToString(v.Bytes)
	default:
		return "<absent>"
	}
}

func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.Int == o.Int
	case KindDecimal:
		return v.Decimal == o.Decimal && v.Scale == o.Scale
	case KindString:
		return v.Str == o.Str
	case KindBytes:
		return string(v.Bytes) == string(o.Bytes)
	default:
		return true
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindInt, KindDecimal:
		return []byte(v.String()), nil
	case KindString, KindBytes:
		return json.Marshal(v.String())
	default:
		return []byte("null"), nil
	}
}

func (v Value) MarshalYAML() (any, error) {
	switch v.Kind {
	case KindInt:
		return v.Int, nil
	case KindDecimal:
		return json.Number(v.String()), nil
	case KindString, KindBytes:
		return v.String(), nil
	default:
		return nil, nil
	}
}
