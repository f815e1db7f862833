package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeUnmarshalJSON(t *testing.T) {
	kyiv := time.FixedZone("", 2*60*60)
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"naive", `"2024-03-15T08:00:00"`, time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)},
		{"fraction", `"2024-03-15T08:00:00.5"`, time.Date(2024, 3, 15, 8, 0, 0, 500_000_000, time.UTC)},
		{"offset", `"2024-03-15T08:00:00+02:00"`, time.Date(2024, 3, 15, 8, 0, 0, 0, kyiv)},
		{"utc suffix", `"2024-03-15T08:00:00Z"`, time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)},
		{"space separated", `"2024-03-15 08:00:00"`, time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"empty", `""`, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DateTime{Time: time.Now()}
			require.NoError(t, d.UnmarshalJSON([]byte(tt.in)))
			assert.True(t, tt.want.Equal(d.Time), "got %v want %v", d.Time, tt.want)
			assert.Equal(t, tt.want.IsZero(), d.IsZero())
		})
	}
}

func TestDateTimeUnmarshalJSONRejectsGarbage(t *testing.T) {
	var d DateTime
	assert.Error(t, d.UnmarshalJSON([]byte(`"15.03.2024"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`12345`)))
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, ID(42), id)

	id, err = ParseID("")
	require.NoError(t, err)
	assert.Zero(t, id)

	_, err = ParseID("-1")
	assert.True(t, IsValidation(err))
}
