// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roombook/models"
	"roombook/utils"
)

// ensureIndexes creates the per-room collection indexes. Failures are logged
// rather than fatal: the collections stay usable, just slower.
func (r *mongoBookingRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: equality filter on date.
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetName("date_start_idx"),
		},
	}

	for _, room := range models.Rooms {
		if _, err := r.db.Collection(room.Collection).Indexes().CreateMany(ctx, indexModels); err != nil {
			utils.GetLogger().Sugar().Warnf("failed to create indexes for %s: %v", room.Collection, err)
		}
	}
}
