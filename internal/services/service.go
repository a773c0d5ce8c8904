package services

import (
	"context"

	"github.com/awash-lottery/backend/internal/models"
)

// WinnerService defines the interface for winner announcement operations
type WinnerService interface {
	// AnnounceWinner records the winner for the current cycle and the given
	// place, then notifies the winning user
	AnnounceWinner(ctx context.Context, ticketNumber, place int) (*models.Winner, error)

	// GetWinnersByCycle retrieves the winners of a cycle, ordered by place.
	// A cycle of 0 means the current cycle from settings.
	GetWinnersByCycle(ctx context.Context, cycle int) ([]*models.Winner, error)

	// GetTicketByNumber retrieves a ticket by its number
	GetTicketByNumber(ctx context.Context, ticketNumber int) (*models.Ticket, error)
}

// NotificationService defines the interface for winner notification fan-out
type NotificationService interface {
	// NotifyWinner creates the in-app notification record for the winning
	// user and dispatches the email channel asynchronously
	NotifyWinner(ctx context.Context, winner *models.Winner, user *models.User) (*models.Notification, error)
}

// AuthService defines the interface for admin authentication operations
type AuthService interface {
	// Login verifies admin credentials and issues a signed JWT
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}
