package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.February, 29), d)

	_, err = ParseDate("2023-02-29")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("06/01/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_JSON(t *testing.T) {
	b, err := json.Marshal(MustDate("2024-06-01"))
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01"`, string(b))

	var payload struct {
		Due  Date  `json:"due"`
		Paid *Date `json:"paid"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-06-01","paid":null}`), &payload))
	assert.Equal(t, "2024-06-01", payload.Due.String())
	assert.Nil(t, payload.Paid)

	var d Date
	assert.ErrorIs(t, json.Unmarshal([]byte(`20240601`), &d), ErrInvalidDate)
	assert.ErrorIs(t, json.Unmarshal([]byte(`"2024-13-01"`), &d), ErrInvalidDate)
}

func TestDate_Scan(t *testing.T) {
	var d Date
	loc := time.FixedZone("UTC-5", -5*60*60)
	require.NoError(t, d.Scan(time.Date(2024, time.June, 1, 23, 30, 0, 0, loc)))
	assert.Equal(t, NewDate(2024, time.June, 1), d)

	require.NoError(t, d.Scan("2024-06-02"))
	assert.Equal(t, "2024-06-02", d.String())

	require.NoError(t, d.Scan([]byte("2024-06-03T00:00:00Z")))
	assert.Equal(t, "2024-06-03", d.String())

	assert.ErrorIs(t, d.Scan(int64(5)), ErrInvalidDate)

	v, err := MustDate("2024-06-01").Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", v)
}
