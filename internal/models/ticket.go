package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ticket represents a lottery ticket identified by its unique number.
// Tickets are seeded administratively and later associated to a user; a
// ticket with no owner cannot win.
type Ticket struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	TicketNumber int                 `bson:"ticketNumber" json:"ticketNumber"`
	UserID       *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Assigned reports whether the ticket is bound to a user.
func (t *Ticket) Assigned() bool {
	return t.UserID != nil && !t.UserID.IsZero()
}
