package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Winner represents the record of a given place being won within a given
// cycle. At most one document exists per (cycle, place) pair; re-announcing
// the same slot overwrites the previous contents.
type Winner struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Cycle        int                `bson:"cycle" json:"cycle"`
	Place        int                `bson:"place" json:"place"` // 1 = grand prize
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	TicketID     primitive.ObjectID `bson:"ticketId" json:"ticketId"`
	TicketNumber int                `bson:"ticketNumber" json:"ticketNumber"`
	PrizeName    string             `bson:"prizeName" json:"prizeName"`
	PrizeAmount  *int64             `bson:"prizeAmount" json:"prizeAmount"` // nil for places without a fixed amount
	AnnouncedAt  time.Time          `bson:"announcedAt" json:"announcedAt"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
