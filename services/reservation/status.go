package reservation

import (
	"time"

	"roombook/models"
	"roombook/utils"
)

// Booking status labels relative to now.
const (
	StatusUpcoming = "upcoming"
	StatusOngoing  = "ongoing"
	StatusDone     = "done"
)

const dateLayout = "2006-01-02"

// ClassifyStatus labels a booking against a "now" instant. The clock only
// applies when the booking's date is now's date; any other date is always
// upcoming. Idempotent and recomputed per listing or snapshot, never stored.
func ClassifyStatus(b models.Booking, now time.Time) string {
	if b.Date != now.Format(dateLayout) {
		return StatusUpcoming
	}

	s, errS := utils.TimeToMinutes(b.StartTime)
	e, errE := utils.TimeToMinutes(b.EndTime)
	if errS != nil || errE != nil {
		return StatusUpcoming
	}

	nowMin := now.Hour()*60 + now.Minute()
	switch {
	case s <= nowMin && nowMin < e:
		return StatusOngoing
	case e <= nowMin:
		return StatusDone
	default:
		return StatusUpcoming
	}
}

// classifyAll decorates a day's bookings with their computed statuses.
func classifyAll(bookings []models.Booking, now time.Time) []models.BookingView {
	views := make([]models.BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = models.BookingView{Booking: b, Status: ClassifyStatus(b, now)}
	}
	return views
}
