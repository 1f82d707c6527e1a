// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roombook/models"
)

const opTimeout = 5 * time.Second

func (r *mongoBookingRepo) ListByDate(ctx context.Context, room models.Room, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.db.Collection(room.Collection).Find(ctx, bson.M{"date": date}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, room models.Room, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var b models.Booking
	err := r.db.Collection(room.Collection).FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Insert appends a new booking record. The id and creation timestamp are
// assigned here, not by the caller.
func (r *mongoBookingRepo) Insert(ctx context.Context, room models.Room, b models.Booking) (models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	b.ID = uuid.New().String()
	b.CreatedAt = time.Now().UTC()
	if _, err := r.db.Collection(room.Collection).InsertOne(ctx, b); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (r *mongoBookingRepo) Delete(ctx context.Context, room models.Room, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.Collection(room.Collection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeBefore removes every booking dated strictly before the given day.
// ISO dates compare lexicographically, so a string range filter suffices.
func (r *mongoBookingRepo) PurgeBefore(ctx context.Context, room models.Room, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.Collection(room.Collection).DeleteMany(ctx, bson.M{"date": bson.M{"$lt": date}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
