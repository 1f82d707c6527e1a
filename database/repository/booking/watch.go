// File: database/repository/booking/watch.go
package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"roombook/models"
)

// Watch opens a change-stream feed over a room's booking collection. The
// returned channel emits one ChangeEvent per insert or delete and closes
// when the stream dies or ctx is cancelled. A closed channel with a live ctx
// means the transport failed; re-subscribing is the caller's decision.
func (r *mongoBookingRepo) Watch(ctx context.Context, room models.Room) (<-chan ChangeEvent, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "operationType", Value: bson.D{{Key: "$in", Value: bson.A{"insert", "delete"}}}},
		}}},
	}

	stream, err := r.db.Collection(room.Collection).Watch(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	events := make(chan ChangeEvent)
	go func() {
		defer close(events)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var change struct {
				FullDocument models.Booking `bson:"fullDocument"`
			}
			// Delete events carry no fullDocument; the event then has an
			// empty Date and consumers re-list every watched date.
			if err := stream.Decode(&change); err != nil {
				zap.L().Warn("failed to decode change event",
					zap.String("room", room.ID), zap.Error(err))
			}

			select {
			case events <- ChangeEvent{RoomID: room.ID, Date: change.FullDocument.Date}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}
