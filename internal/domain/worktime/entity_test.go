package worktime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayTime(t *testing.T) {
	dt, err := ParseDayTime("10:30:15")
	require.NoError(t, err)
	assert.Equal(t, DayTime{Hour: 10, Minute: 30, Second: 15}, dt)

	dt, err = ParseDayTime("08:05")
	require.NoError(t, err)
	assert.Equal(t, DayTime{Hour: 8, Minute: 5}, dt)

	_, err = ParseDayTime("25:00:00")
	assert.Error(t, err)
	_, err = ParseDayTime("")
	assert.Error(t, err)
}

func TestDayTimeMinutesDropsSeconds(t *testing.T) {
	dt := DayTime{Hour: 10, Minute: 30, Second: 59}
	assert.Equal(t, 630, dt.Minutes())
}

func TestDayTimeString(t *testing.T) {
	assert.Equal(t, "09:05:00", DayTime{Hour: 9, Minute: 5}.String())
}

func TestDayTimeOn(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	day := time.Date(2026, time.March, 2, 14, 22, 3, 0, loc)
	anchored := DayTime{Hour: 18}.On(day, loc)
	assert.Equal(t, time.Date(2026, time.March, 2, 18, 0, 0, 0, loc), anchored)
}
