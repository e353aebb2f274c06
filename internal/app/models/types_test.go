package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want StringList
	}{
		{name: "json text", src: `["https://swapi.dev/api/films/1/"]`, want: StringList{"https://swapi.dev/api/films/1/"}},
		{name: "json bytes", src: []byte(`["a","b"]`), want: StringList{"a", "b"}},
		{name: "null column", src: nil, want: StringList{}},
		{name: "json null", src: "null", want: StringList{}},
		{name: "malformed", src: "not json", want: StringList{}},
		{name: "object instead of array", src: `{"a":1}`, want: StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			require.NoError(t, l.Scan(tt.src))
			assert.Equal(t, tt.want, l)
		})
	}
}

func TestStringList_ValueAndJSON(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringList{"x"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["x"]`, v)

	b, err := json.Marshal(struct {
		Films StringList `json:"films"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"films":[]}`, string(b))
}

func TestDate_JSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1977-05-25"`), &d))
	assert.Equal(t, time.Date(1977, time.May, 25, 0, 0, 0, 0, time.UTC), d.Time)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1977-05-25"`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`"25/05/1977"`), &d))
}

func TestDate_Scan(t *testing.T) {
	want := time.Date(1980, time.May, 17, 0, 0, 0, 0, time.UTC)

	for _, src := range []any{
		want,
		"1980-05-17",
		"1980-05-17 00:00:00+00:00",
		[]byte("1980-05-17T00:00:00Z"),
	} {
		var d Date
		require.NoError(t, d.Scan(src))
		assert.Equal(t, want, d.Time)
	}

	var d Date
	assert.Error(t, d.Scan(42))
}
