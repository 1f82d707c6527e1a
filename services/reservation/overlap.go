package reservation

import (
	"roombook/models"
	"roombook/utils"
)

// overlaps reports whether the half-open interval [s, e) in minutes-of-day
// intersects any booking in the set: b.start < e && b.end > s. Intervals
// that only touch at an endpoint do not overlap. The set must already be
// filtered to one (room, date); no ordering is assumed.
func overlaps(bookings []models.Booking, s, e int) bool {
	for _, b := range bookings {
		bs, errS := utils.TimeToMinutes(b.StartTime)
		be, errE := utils.TimeToMinutes(b.EndTime)
		if errS != nil || errE != nil {
			// Unparsable times cannot exist for records created through the
			// service; skip rather than guess an interval.
			continue
		}
		if bs < e && be > s {
			return true
		}
	}
	return false
}
