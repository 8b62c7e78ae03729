package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := types.NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = types.NewTimeStringFromString("9:30")
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)

	_, err = types.NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)

	_, err = types.NewTimeStringFromString("")
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	ts := types.NewTimeString(time.Date(2026, 9, 1, 14, 5, 0, 0, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := types.TimeString("23:30")

	shifted, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "00:15", shifted.String(), "wraps around midnight")

	shifted, err = ts.AddMinutes(0)
	require.NoError(t, err)
	assert.Equal(t, "23:30", shifted.String())
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, types.TimeString("09:00").IsBefore("10:00"))
	assert.True(t, types.TimeString("10:00").IsAfter("09:59"))
	assert.False(t, types.TimeString("10:00").IsBefore("10:00"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, types.TimeString("").IsZero())
	assert.False(t, types.TimeString("00:00").IsZero())
}
