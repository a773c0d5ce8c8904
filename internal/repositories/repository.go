package repositories

import (
	"context"

	"github.com/awash-lottery/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SettingsRepository defines the interface for the singleton lottery settings
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	SetWinnerAnnouncementMode(ctx context.Context, enabled bool) error
}

// TicketRepository defines the interface for ticket data operations
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error)
	FindByNumber(ctx context.Context, ticketNumber int) (*models.Ticket, error)
	Count(ctx context.Context) (int64, error)
}

// WinnerRepository defines the interface for winner data operations.
// UpsertByCyclePlace writes against the unique (cycle, place) index: the
// existing document for that key, if any, is overwritten in place.
type WinnerRepository interface {
	UpsertByCyclePlace(ctx context.Context, winner *models.Winner) error
	FindByCyclePlace(ctx context.Context, cycle, place int) (*models.Winner, error)
	FindByCycle(ctx context.Context, cycle int) ([]*models.Winner, error)
}

// NotificationRepository defines the interface for in-app notification
// operations. The collection is append-only.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.Notification, error)
	Count(ctx context.Context) (int64, error)
}

// UserRepository defines the read-only interface onto player user records
type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// AdminUserRepository defines the interface for admin account operations
type AdminUserRepository interface {
	Create(ctx context.Context, adminUser *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
}

// TransactionRunner executes fn inside a single storage transaction. The
// context passed to fn carries the transaction; repositories called with it
// participate in the same atomic commit.
type TransactionRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}
