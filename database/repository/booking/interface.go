// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"roombook/config"
	"roombook/database"
	"roombook/models"
)

// ErrNotFound reports that no booking with the given id currently exists.
// Callers treat it as a benign outcome on deletion paths: a concurrent
// cancellation may have removed the record first.
var ErrNotFound = errors.New("booking not found")

// ChangeEvent signals that a room's booking collection changed. Events carry
// no delta: consumers re-list the partition they care about and recompute
// from the full set. Date is empty when the changed document's date is not
// available (deletes), in which case every watched date must re-list.
type ChangeEvent struct {
	RoomID string
	Date   string
}

// BookingRepository is the store collaborator contract. The repository
// exclusively owns persisted records; anything held by consumers is a
// read-only cache bounded by subscription latency.
type BookingRepository interface {
	ListByDate(ctx context.Context, room models.Room, date string) ([]models.Booking, error)
	GetByID(ctx context.Context, room models.Room, id string) (*models.Booking, error)
	Insert(ctx context.Context, room models.Room, b models.Booking) (models.Booking, error)
	Delete(ctx context.Context, room models.Room, id string) error
	PurgeBefore(ctx context.Context, room models.Room, date string) (int64, error)
	Watch(ctx context.Context, room models.Room) (<-chan ChangeEvent, error)
}

type mongoBookingRepo struct {
	db *mongo.Database
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	repo := &mongoBookingRepo{
		db: database.MongoClient.Database(config.AppConfig.DatabaseName),
	}
	repo.ensureIndexes()
	return repo
}
