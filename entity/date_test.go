package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-03", d.String())
	assert.Equal(t, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	for _, raw := range []string{"", "03-01-2025", "2025/01/03", "yesterday", "2025-13-40"} {
		_, err := ParseDate(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestDateAddAndDaysUntil(t *testing.T) {
	start := MustParseDate("2025-01-30")

	assert.Equal(t, "2025-02-01", start.Add(2).String())
	assert.Equal(t, "2024-12-31", start.Add(-30).String())

	end := MustParseDate("2025-02-03")
	assert.Equal(t, 4, start.DaysUntil(end))
	assert.Equal(t, -4, end.DaysUntil(start))
	assert.Equal(t, 0, start.DaysUntil(start))
}

func TestDateOrdering(t *testing.T) {
	a := MustParseDate("2025-01-01")
	b := MustParseDate("2025-01-02")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(MustParseDate("2025-01-01")))
}

func TestDateOfTruncatesTime(t *testing.T) {
	ts := time.Date(2025, time.June, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2025-06-15", DateOf(ts).String())
}

func TestDateJSONRoundTrip(t *testing.T) {
	original := MustParseDate("2025-03-31")

	raw, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-31"`, string(raw))

	var decoded Date
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, original.Equal(decoded))
}

func TestDateIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, MustParseDate("2025-01-01").IsZero())
}
