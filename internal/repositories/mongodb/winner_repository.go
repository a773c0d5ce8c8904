package mongodb

import (
	"context"
	"time"

	"github.com/awash-lottery/backend/internal/models"
	"github.com/awash-lottery/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WinnerRepository implements the repositories.WinnerRepository interface
type WinnerRepository struct {
	collection *mongo.Collection
}

// NewWinnerRepository creates a new WinnerRepository
func NewWinnerRepository(db *mongo.Database) repositories.WinnerRepository {
	return &WinnerRepository{
		collection: db.Collection("winners"),
	}
}

// UpsertByCyclePlace writes the winner for its (cycle, place) key. The unique
// index on that key serializes concurrent announcements for the same slot;
// the last committed write wins. The decoded post-image is written back into
// winner so the caller sees the persisted _id and timestamps.
func (r *WinnerRepository) UpsertByCyclePlace(ctx context.Context, winner *models.Winner) error {
	now := time.Now()
	filter := bson.M{"cycle": winner.Cycle, "place": winner.Place}
	update := bson.M{
		"$set": bson.M{
			"userId":       winner.UserID,
			"ticketId":     winner.TicketID,
			"ticketNumber": winner.TicketNumber,
			"prizeName":    winner.PrizeName,
			"prizeAmount":  winner.PrizeAmount,
			"announcedAt":  winner.AnnouncedAt,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{
			"cycle":     winner.Cycle,
			"place":     winner.Place,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	return r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(winner)
}

// FindByCyclePlace finds the winner for a cycle/place pair
func (r *WinnerRepository) FindByCyclePlace(ctx context.Context, cycle, place int) (*models.Winner, error) {
	var winner models.Winner
	err := r.collection.FindOne(ctx, bson.M{"cycle": cycle, "place": place}).Decode(&winner)
	if err != nil {
		return nil, err
	}
	return &winner, nil
}

// FindByCycle finds all winners of a cycle, ordered by place
func (r *WinnerRepository) FindByCycle(ctx context.Context, cycle int) ([]*models.Winner, error) {
	opts := options.Find().SetSort(bson.M{"place": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"cycle": cycle}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var winners []*models.Winner
	if err := cursor.All(ctx, &winners); err != nil {
		return nil, err
	}
	return winners, nil
}
