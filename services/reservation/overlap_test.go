package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roombook/models"
)

func TestOverlapsHalfOpen(t *testing.T) {
	booked := []models.Booking{{StartTime: "10:00", EndTime: "11:00"}}

	// Touching at an endpoint is not an overlap.
	assert.False(t, overlaps(booked, 9*60+30, 10*60), "9:30-10:00 only touches")
	assert.False(t, overlaps(booked, 11*60, 11*60+30), "11:00-11:30 only touches")

	assert.True(t, overlaps(booked, 9*60+30, 10*60+30), "crosses the start")
	assert.True(t, overlaps(booked, 10*60+30, 10*60+45), "strictly inside")
	assert.True(t, overlaps(booked, 9*60, 12*60), "covers the booking")
	assert.True(t, overlaps(booked, 10*60, 11*60), "identical interval")
}

func TestOverlapsEmptySetAndOrdering(t *testing.T) {
	assert.False(t, overlaps(nil, 0, 24*60))

	// No ordering assumption on the input.
	booked := []models.Booking{
		{StartTime: "15:00", EndTime: "16:00"},
		{StartTime: "09:00", EndTime: "09:30"},
	}
	assert.True(t, overlaps(booked, 9*60, 9*60+30))
	assert.True(t, overlaps(booked, 15*60+30, 17*60))
	assert.False(t, overlaps(booked, 9*60+30, 15*60))
}

func TestOverlapsSkipsMalformedRecords(t *testing.T) {
	booked := []models.Booking{{StartTime: "nonsense", EndTime: "11:00"}}
	assert.False(t, overlaps(booked, 10*60, 11*60))
}
