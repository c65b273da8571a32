package generator

import (
	"testing"
	"time"

	"github.com/Rana718/tablefill/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefault(t *testing.T) {
	now := time.Date(2026, time.March, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		raw  string
		want types.Value
	}{
		{"", types.AbsentValue()},
		{"(getdate())", types.StringValue("2026-03-04 05:06:07")},
		{"(GETUTCDATE())", types.StringValue("2026-03-04 05:06:07")},
		{"now()", types.StringValue("2026-03-04 05:06:07")},
		{"CURRENT_TIMESTAMP", types.StringValue("2026-03-04 05:06:07")},
		{"(0)", types.IntValue(0)},
		{"((1))", types.IntValue(1)},
		{"((-5))", types.IntValue(-5)},
		{"((12.50))", types.DecimalValue(12.5, 2)},
		{"('active')", types.StringValue("active")},
		{"(N'it''s')", types.StringValue("it's")},
		{"pending", types.StringValue("pending")},
		{"(1)+(2)", types.StringValue("(1)+(2)")},
		{"1e5", types.StringValue("1e5")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := NormalizeDefaultAt(tt.raw, now)
			assert.True(t, tt.want.Equal(got), "want %v (%s), got %v (%s)", tt.want, tt.want.Kind, got, got.Kind)
		})
	}
}

func TestNormalizeDefaultGetdateFormat(t *testing.T) {
	v := NormalizeDefault("(getdate())")
	require.Equal(t, types.KindString, v.Kind)

	ts, err := time.ParseInLocation(TimestampLayout, v.Str, time.Local)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, 5*time.Second)
}

func TestNormalizeDefaultNewid(t *testing.T) {
	for _, raw := range []string{"(newid())", "gen_random_uuid()", "(NEWSEQUENTIALID())"} {
		v := NormalizeDefault(raw)
		require.Equal(t, types.KindString, v.Kind, raw)
		_, err := uuid.Parse(v.Str)
		assert.NoError(t, err, raw)
	}

	a := NormalizeDefault("(newid())")
	b := NormalizeDefault("(newid())")
	assert.NotEqual(t, a.Str, b.Str)
}

func TestStripParens(t *testing.T) {
	assert.Equal(t, "0", stripParens("((0))"))
	assert.Equal(t, "getdate()", stripParens("(getdate())"))
	assert.Equal(t, "(a)+(b)", stripParens("(a)+(b)"))
	assert.Equal(t, "')('", stripParens("(')(')"))
}
