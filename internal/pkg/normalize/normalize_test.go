package normalize

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"grouped integer", "1,234", int64(1234)},
		{"plain integer", "150000", int64(150000)},
		{"float", "12.5", 12.5},
		{"grouped float", "1,000.5", 1000.5},
		{"na lower", "n/a", nil},
		{"na upper", "N/A", nil},
		{"unknown kept", "unknown", "unknown"},
		{"grouped text kept verbatim", "30-165, 10", "30-165, 10"},
		{"nil", nil, nil},
		{"number passthrough", 4.0, 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Value(tt.in))
		})
	}
}

func TestInt(t *testing.T) {
	require.NotNil(t, Int("1,234"))
	assert.Equal(t, int64(1234), *Int("1,234"))
	assert.Equal(t, int64(4), *Int(4.0))
	assert.Equal(t, int64(7), *Int(json.Number("7")))

	assert.Nil(t, Int("unknown"))
	assert.Nil(t, Int("n/a"))
	assert.Nil(t, Int("0.9"))
	assert.Nil(t, Int(nil))
	assert.Nil(t, Int(true))

	for _, huge := range []any{"99999999999999999999", "-99999999999999999999", "1e30", 1e30, math.Inf(1), json.Number("1e30")} {
		assert.Nil(t, Int(huge), "%v", huge)
	}
	require.NotNil(t, Int("9223372036854775807"))
	assert.Equal(t, int64(math.MaxInt64), *Int("9223372036854775807"))
}

func TestFloat(t *testing.T) {
	require.NotNil(t, Float("12.5"))
	assert.Equal(t, 12.5, *Float("12.5"))
	assert.Equal(t, 1358.0, *Float("1,358"))
	assert.Equal(t, 172.0, *Float(172))

	assert.Nil(t, Float("unknown"))
	assert.Nil(t, Float("N/A"))
	assert.Nil(t, Float(nil))
}

func TestString(t *testing.T) {
	require.NotNil(t, String("blond"))
	assert.Equal(t, "blond", *String("blond"))
	assert.Equal(t, "4", *String(4.0))
	assert.Nil(t, String("n/a"))
	assert.Nil(t, String(nil))
}

func TestList(t *testing.T) {
	assert.Equal(t, []string{"caucasian", "black", "asian"}, List("caucasian, black,asian"))
	assert.Equal(t, []string{"a", "b"}, List([]any{"a", " b ", 3}))
	assert.Equal(t, []string{}, List("n/a"))
	assert.Equal(t, []string{}, List("none"))
	assert.Equal(t, []string{}, List(nil))
}

func TestDate(t *testing.T) {
	d, ok := Date("1977-05-25")
	require.True(t, ok)
	assert.Equal(t, 1977, d.Year())
	assert.Equal(t, 25, d.Day())

	_, ok = Date("25/05/1977")
	assert.False(t, ok)
	_, ok = Date(nil)
	assert.False(t, ok)
}
