package reservation

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"roombook/models"
	"roombook/utils"
)

// minSecretLen is the minimum cancellation secret length after normalization.
const minSecretLen = 4

// Create runs the booking creation protocol. Malformed input is rejected
// locally before any store round-trip. The room's bookings are then
// re-listed from the store — not from any cached snapshot — immediately
// before the write, and the proposed interval is re-checked against that
// fresh set. A conflict means the slot was lost to a concurrent writer; the
// caller must resynchronize its view rather than silently retry.
//
// The re-list narrows but does not close the read-to-write race window: the
// store offers no conditional insert on (room, date, start, end), so two
// writers can still interleave between the check and the insert. Closing it
// fully is a store-side concern (uniqueness constraint or transaction).
func (s *DefaultReservationService) Create(ctx context.Context, req CreateRequest) (*models.Booking, error) {
	room, ok := models.RoomByID(req.RoomID)
	if !ok {
		return nil, NewNotFoundError("unknown room %q", req.RoomID)
	}

	if req.Date == "" {
		return nil, NewValidationError("date is required")
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, NewValidationError("invalid date %q: want YYYY-MM-DD", req.Date)
	}
	if req.Start == "" || req.End == "" {
		return nil, NewValidationError("start and end time are required")
	}
	startMin, err := utils.TimeToMinutes(req.Start)
	if err != nil {
		return nil, NewValidationError("invalid start time %q", req.Start)
	}
	endMin, err := utils.TimeToMinutes(req.End)
	if err != nil {
		return nil, NewValidationError("invalid end time %q", req.End)
	}
	if endMin <= startMin {
		return nil, NewValidationError("end time must be after start time")
	}
	if startMin%SlotInterval != 0 || endMin%SlotInterval != 0 {
		return nil, NewValidationError("times must fall on the %d-minute grid", SlotInterval)
	}
	if startMin >= dayMinutes || endMin > dayMinutes {
		return nil, NewValidationError("times must fall within the day")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("name is required")
	}
	secret := utils.NormalizeSecret(req.Secret)
	if utf8.RuneCountInString(secret) < minSecretLen {
		return nil, NewValidationError("secret must be at least %d characters", minSecretLen)
	}

	current, err := s.Repo.ListByDate(ctx, room, req.Date)
	if err != nil {
		return nil, NewTransportError("failed to check availability: %v", err)
	}
	if overlaps(current, startMin, endMin) {
		return nil, NewConflictError("slot %s–%s was just booked; refresh and pick another time",
			utils.MinutesToTime(startMin), utils.MinutesToTime(endMin))
	}

	created, err := s.Repo.Insert(ctx, room, models.Booking{
		RoomID:    room.ID,
		Date:      req.Date,
		StartTime: utils.MinutesToTime(startMin),
		EndTime:   utils.MinutesToTime(endMin),
		Name:      name,
		Project:   strings.TrimSpace(req.Project),
		Secret:    secret,
	})
	if err != nil {
		return nil, NewTransportError("failed to save booking: %v", err)
	}
	return &created, nil
}
