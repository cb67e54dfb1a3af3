package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInterval(t *testing.T) {
	f, s, err := GetInterval("20.10.2021-01.11.2021")
	require.NoError(t, err)
	require.NotNil(t, f)
	require.NotNil(t, s)
	assert.Equal(t, time.Date(2021, 10, 20, 0, 0, 0, 0, time.Local), *f)
	assert.Equal(t, time.Date(2021, 11, 1, 0, 0, 0, 0, time.Local), *s)

	f, s, err = GetInterval("20.10.2021")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Nil(t, s)

	f, s, err = GetInterval("-01.11.2021")
	require.NoError(t, err)
	assert.Nil(t, f)
	require.NotNil(t, s)

	f, s, err = GetInterval("")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Nil(t, s)

	_, _, err = GetInterval("2021-10-20")
	assert.Error(t, err)
}

func TestDateBefore(t *testing.T) {
	a := time.Date(2021, 10, 20, 23, 59, 0, 0, time.UTC)
	b := time.Date(2021, 10, 27, 0, 0, 0, 0, time.UTC)

	assert.True(t, DateBefore(a, b))
	assert.False(t, DateBefore(b, a))
	assert.False(t, DateBefore(b, b.Add(20*time.Hour)))
}

func TestWeekNumber(t *testing.T) {
	start := time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC) // среда

	cases := []struct {
		now  time.Time
		week int
	}{
		{time.Date(2021, 9, 1, 10, 0, 0, 0, time.UTC), 1},
		{time.Date(2021, 9, 5, 10, 0, 0, 0, time.UTC), 1},
		{time.Date(2021, 9, 6, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2021, 10, 27, 11, 0, 0, 0, time.UTC), 9},
		{time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC), 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.week, WeekNumber(start, c.now), c.now.String())
	}
}

func TestStringUtils(t *testing.T) {
	assert.Equal(t, "Иванов И.И.", RemoveSpaces("  Иванов \n  И.И. "))
	assert.Equal(t, "Иванов", FirstWord(" Иванов И.И."))
	assert.Equal(t, "", FirstWord("   "))

	var e StringEnum
	require.NoError(t, e.Set("a"))
	require.NoError(t, e.Set("b"))
	assert.Equal(t, "a,b", e.String())
}
