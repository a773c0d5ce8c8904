package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification represents an in-app notification addressed to a single user.
// Title and message carry English and Amharic variants; either language may
// be unset. Notifications are created once and never updated.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Title     string             `bson:"title" json:"title"`
	TitleAm   string             `bson:"titleAm,omitempty" json:"titleAm,omitempty"`
	Message   string             `bson:"message" json:"message"`
	MessageAm string             `bson:"messageAm,omitempty" json:"messageAm,omitempty"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	Urgent    bool               `bson:"urgent" json:"urgent"`
	SentAt    time.Time          `bson:"sentAt" json:"sentAt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
