package mongodb

import (
	"context"
	"time"

	"github.com/awash-lottery/backend/internal/models"
	"github.com/awash-lottery/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SettingsRepository implements repositories.SettingsRepository
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *mongo.Database) repositories.SettingsRepository {
	return &SettingsRepository{
		collection: db.Collection("settings"),
	}
}

// Get retrieves the singleton settings document. mongo.ErrNoDocuments is
// returned as-is when the lottery has never been configured.
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SetWinnerAnnouncementMode updates only the display-mode flag
func (r *SettingsRepository) SetWinnerAnnouncementMode(ctx context.Context, enabled bool) error {
	update := bson.M{
		"$set": bson.M{
			"winnerAnnouncementMode": enabled,
			"updatedAt":              time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{}, update)
	return err
}
