package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Settings represents the singleton lottery configuration.
// Exactly one live document is expected in the settings collection.
type Settings struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Cycle                  *int               `bson:"cycle" json:"cycle"` // current lottery round, nil until configured
	PrizeName              string             `bson:"prizeName" json:"prizeName"`
	LivestreamURL          string             `bson:"livestreamUrl,omitempty" json:"livestreamUrl,omitempty"`
	WinnerAnnouncementMode bool               `bson:"winnerAnnouncementMode" json:"winnerAnnouncementMode"`
	CreatedAt              time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt              time.Time          `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy              string             `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}
