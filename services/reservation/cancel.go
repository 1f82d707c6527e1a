package reservation

import (
	"context"
	"crypto/subtle"
	"errors"
	"unicode/utf8"

	bookingRepo "roombook/database/repository/booking"
	"roombook/models"
	"roombook/utils"
)

// Cancel verifies the shared secret and deletes the booking. Deletion is
// terminal: no soft delete, no tombstone. An absent id — at lookup or at the
// delete itself — is a benign outcome, not a failure: a concurrent caller
// may have cancelled first.
func (s *DefaultReservationService) Cancel(ctx context.Context, roomID, id, rawSecret string) error {
	room, ok := models.RoomByID(roomID)
	if !ok {
		return NewNotFoundError("unknown room %q", roomID)
	}

	secret := utils.NormalizeSecret(rawSecret)
	if utf8.RuneCountInString(secret) < minSecretLen {
		return NewValidationError("secret must be at least %d characters", minSecretLen)
	}

	b, err := s.Repo.GetByID(ctx, room, id)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return NewNotFoundError("booking not found; it may already be cancelled")
	}
	if err != nil {
		return NewTransportError("failed to load booking: %v", err)
	}

	// The stored secret was normalized at creation; normalizing again keeps
	// both sides under the single canonical policy regardless of how the
	// record got in.
	stored := utils.NormalizeSecret(b.Secret)
	if subtle.ConstantTimeCompare([]byte(stored), []byte(secret)) != 1 {
		return NewWrongSecretError("wrong secret")
	}

	err = s.Repo.Delete(ctx, room, id)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return NewNotFoundError("booking not found; it may already be cancelled")
	}
	if err != nil {
		return NewTransportError("failed to delete booking: %v", err)
	}
	return nil
}
