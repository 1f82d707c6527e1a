package reservation

import (
	"context"
	"time"

	bookingRepo "roombook/database/repository/booking"
	"roombook/models"
	"roombook/utils"
)

// DefaultReservationService implements ReservationService on top of the
// booking repository. Now is a clock hook for tests; nil means time.Now.
type DefaultReservationService struct {
	Repo bookingRepo.BookingRepository
	Now  func() time.Time
}

func (s *DefaultReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultReservationService) Rooms() []models.Room {
	return models.Rooms
}

// DayBookings returns the room's bookings for a date, sorted by start time,
// each labeled with its current status.
func (s *DefaultReservationService) DayBookings(ctx context.Context, roomID, date string) ([]models.BookingView, error) {
	room, ok := models.RoomByID(roomID)
	if !ok {
		return nil, NewNotFoundError("unknown room %q", roomID)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, NewValidationError("invalid date %q: want YYYY-MM-DD", date)
	}

	bookings, err := s.Repo.ListByDate(ctx, room, date)
	if err != nil {
		return nil, NewTransportError("failed to load bookings: %v", err)
	}
	return classifyAll(bookings, s.now()), nil
}

// SlotGrid computes the start-time grid for a (room, date) and, when a start
// is given, the end-time grid for it.
func (s *DefaultReservationService) SlotGrid(ctx context.Context, roomID, date, start string) (*SlotGridResult, error) {
	room, ok := models.RoomByID(roomID)
	if !ok {
		return nil, NewNotFoundError("unknown room %q", roomID)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, NewValidationError("invalid date %q: want YYYY-MM-DD", date)
	}

	bookings, err := s.Repo.ListByDate(ctx, room, date)
	if err != nil {
		return nil, NewTransportError("failed to load bookings: %v", err)
	}

	now := s.now()
	today := date == now.Format(dateLayout)
	nowMin := now.Hour()*60 + now.Minute()

	result := &SlotGridResult{
		StartOptions: StartOptions(bookings, today, nowMin),
	}

	if start != "" {
		startMin, err := utils.TimeToMinutes(start)
		if err != nil {
			return nil, NewValidationError("invalid start time %q", start)
		}
		if startMin%SlotInterval != 0 || startMin >= dayMinutes {
			return nil, NewValidationError("start time %q is not on the %d-minute grid", start, SlotInterval)
		}
		result.EndOptions = EndOptions(bookings, startMin)
	}
	return result, nil
}
