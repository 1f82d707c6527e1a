package reservation

import (
	"fmt"

	"roombook/models"
	"roombook/utils"
)

const (
	// SlotInterval is the booking grid step in minutes.
	SlotInterval = 30
	dayMinutes   = 24 * 60
)

// StartOptions builds the day's start-time grid: one option per interval
// boundary from 00:00 through 23:30. A start is unavailable when its
// immediate slot [start, start+interval) intersects an existing booking, or
// when the date is today and the boundary is at or before the current
// minute. On today a "start now" pseudo-option, rounded up to the next
// boundary, is surfaced ahead of the grid; it is exempt from the past rule
// (it exists precisely to start at the current boundary) but gets the same
// overlap check.
//
// Pure function of (bookings, today, nowMin); never touches the store.
func StartOptions(bookings []models.Booking, today bool, nowMin int) []models.SlotOption {
	opts := make([]models.SlotOption, 0, dayMinutes/SlotInterval+1)

	if today {
		nowSlot := ((nowMin + SlotInterval - 1) / SlotInterval) * SlotInterval
		if nowSlot < dayMinutes {
			t := utils.MinutesToTime(nowSlot)
			opts = append(opts, models.SlotOption{
				Label:     fmt.Sprintf("Start now (%s)", t),
				Value:     t,
				Available: !overlaps(bookings, nowSlot, nowSlot+SlotInterval),
			})
		}
	}

	for m := 0; m < dayMinutes; m += SlotInterval {
		available := !overlaps(bookings, m, m+SlotInterval)
		if today && m <= nowMin {
			available = false
		}
		t := utils.MinutesToTime(m)
		opts = append(opts, models.SlotOption{Label: t, Value: t, Available: available})
	}
	return opts
}

// EndOptions builds the end-time grid for a chosen start: every boundary
// strictly after the start through 24:00. Each candidate e is checked
// independently against [start, e) — candidates beyond an obstructing
// booking are still listed, just unavailable.
func EndOptions(bookings []models.Booking, startMin int) []models.SlotOption {
	first := (startMin/SlotInterval + 1) * SlotInterval
	opts := make([]models.SlotOption, 0, (dayMinutes-first)/SlotInterval+1)

	for m := first; m <= dayMinutes; m += SlotInterval {
		t := utils.MinutesToTime(m)
		opts = append(opts, models.SlotOption{
			Label:     t,
			Value:     t,
			Available: !overlaps(bookings, startMin, m),
		})
	}
	return opts
}
