package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes declares the indexes the service relies on. The unique index
// on winners (cycle, place) is the concurrency-safety mechanism for the
// announcement upsert and must exist before the service takes traffic.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("winners").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "cycle", Value: 1}, {Key: "place", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("tickets").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ticketNumber", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("notifications").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "sentAt", Value: -1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("admin_users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
