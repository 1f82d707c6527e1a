package reservation

import (
	"context"

	"roombook/models"
)

// CreateRequest carries a proposed booking. Times are raw "HH:MM" input;
// the secret is raw, pre-normalization.
type CreateRequest struct {
	RoomID  string `json:"-"`
	Date    string `json:"date"`
	Start   string `json:"startTime"`
	End     string `json:"endTime"`
	Name    string `json:"name"`
	Project string `json:"project"`
	Secret  string `json:"secret"`
}

// SlotGridResult is the selectable start grid for a (room, date), plus the
// end grid when a start was chosen.
type SlotGridResult struct {
	StartOptions []models.SlotOption `json:"startOptions"`
	EndOptions   []models.SlotOption `json:"endOptions,omitempty"`
}

// ReservationService is the slot availability and conflict-resolution engine.
type ReservationService interface {
	Rooms() []models.Room
	DayBookings(ctx context.Context, roomID, date string) ([]models.BookingView, error)
	SlotGrid(ctx context.Context, roomID, date, start string) (*SlotGridResult, error)
	Create(ctx context.Context, req CreateRequest) (*models.Booking, error)
	Cancel(ctx context.Context, roomID, id, secret string) error
}
