package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/models"
)

func findOption(t *testing.T, opts []models.SlotOption, value string) models.SlotOption {
	t.Helper()
	for _, o := range opts {
		if o.Value == value {
			return o
		}
	}
	t.Fatalf("no option with value %s", value)
	return models.SlotOption{}
}

func TestStartOptionsFutureDate(t *testing.T) {
	booked := []models.Booking{{StartTime: "10:00", EndTime: "11:00"}}
	opts := StartOptions(booked, false, 0)

	require.Len(t, opts, 48, "one option per half hour, no pseudo-option")
	assert.Equal(t, "00:00", opts[0].Value)
	assert.Equal(t, "23:30", opts[47].Value)

	assert.True(t, findOption(t, opts, "09:30").Available)
	assert.False(t, findOption(t, opts, "10:00").Available)
	assert.False(t, findOption(t, opts, "10:30").Available)
	assert.True(t, findOption(t, opts, "11:00").Available, "a start at the booking's end only touches")
}

func TestStartOptionsTodayMarksPastUnavailable(t *testing.T) {
	// 09:05; nothing booked.
	opts := StartOptions(nil, true, 9*60+5)

	require.Len(t, opts, 49, "48 grid points plus the start-now option")
	assert.Equal(t, "Start now (09:30)", opts[0].Label)
	assert.Equal(t, "09:30", opts[0].Value)
	assert.True(t, opts[0].Available)

	assert.False(t, findOption(t, opts[1:], "09:00").Available, "already past")
	assert.True(t, findOption(t, opts[1:], "09:30").Available)
}

func TestStartOptionsTodayBoundaryIsPast(t *testing.T) {
	// Exactly on a grid boundary: the regular candidate at now is gone, the
	// start-now option at the same boundary is the way in.
	opts := StartOptions(nil, true, 10*60)

	assert.Equal(t, "Start now (10:00)", opts[0].Label)
	assert.True(t, opts[0].Available)
	assert.False(t, findOption(t, opts[1:], "10:00").Available)
	assert.True(t, findOption(t, opts[1:], "10:30").Available)
}

func TestStartOptionsStartNowBlockedByBooking(t *testing.T) {
	booked := []models.Booking{{StartTime: "10:00", EndTime: "11:00"}}
	opts := StartOptions(booked, true, 9*60+45)

	assert.Equal(t, "Start now (10:00)", opts[0].Label)
	assert.False(t, opts[0].Available)
}

func TestStartOptionsNoStartNowAtEndOfDay(t *testing.T) {
	// 23:45 rounds up to 24:00, which is not a bookable start.
	opts := StartOptions(nil, true, 23*60+45)
	require.Len(t, opts, 48)
	assert.Equal(t, "00:00", opts[0].Value)
}

func TestEndOptionsIndividuallyChecked(t *testing.T) {
	booked := []models.Booking{{StartTime: "10:00", EndTime: "11:00"}}
	opts := EndOptions(booked, 9*60) // start 09:00

	require.Len(t, opts, 30, "every boundary strictly after 09:00 through 24:00")
	assert.Equal(t, "09:30", opts[0].Value)
	assert.Equal(t, "24:00", opts[len(opts)-1].Value)

	assert.True(t, findOption(t, opts, "09:30").Available)
	assert.True(t, findOption(t, opts, "10:00").Available, "ending where the booking starts only touches")
	// Everything past the obstruction stays listed, each marked on its own.
	assert.False(t, findOption(t, opts, "10:30").Available)
	assert.False(t, findOption(t, opts, "11:00").Available)
	assert.False(t, findOption(t, opts, "24:00").Available)
}

func TestEndOptionsLastSlotOfDay(t *testing.T) {
	opts := EndOptions(nil, 23*60+30)
	require.Len(t, opts, 1)
	assert.Equal(t, "24:00", opts[0].Value)
	assert.True(t, opts[0].Available)
}
