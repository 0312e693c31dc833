package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Park-ReservationService/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := types.NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, "10:30", ts.String())

	for _, invalid := range []string{"", "25:00", "10:60", "abc", "10.30"} {
		_, err := types.NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, types.ErrInvalidTimeString, invalid)
	}
}

func TestIsBeforeIsAfter(t *testing.T) {
	a, _ := types.NewTimeStringFromString("09:00")
	b, _ := types.NewTimeStringFromString("17:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
}

func TestAddMinutes(t *testing.T) {
	ts, _ := types.NewTimeStringFromString("10:45")

	shifted, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "11:15", shifted.String())
}

func TestScanTruncatesSeconds(t *testing.T) {
	var ts types.TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, "10:00", ts.String())

	require.NoError(t, ts.Scan([]byte("17:30:59")))
	assert.Equal(t, "17:30", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 3, 15, 12, 15, 33, 0, time.UTC)))
	assert.Equal(t, "12:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}

func TestValue(t *testing.T) {
	ts, _ := types.NewTimeStringFromString("10:00")

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	var zero types.TimeString
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
