package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/awash-lottery/backend/internal/models"
	"github.com/awash-lottery/backend/internal/repositories"
	"github.com/awash-lottery/backend/internal/utils"
	"github.com/awash-lottery/backend/pkg/emailgateway"
)

// DashboardLink is the call-to-action path carried by winner notifications.
const DashboardLink = "/dashboard"

// Compile-time check to ensure NotificationServiceImpl implements NotificationService
var _ NotificationService = (*NotificationServiceImpl)(nil)

// NotificationServiceImpl handles winner notification fan-out: one in-app
// record per announcement plus a fire-and-forget email.
type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	emailGateway     emailgateway.Gateway
}

// NewNotificationService creates a new NotificationServiceImpl
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	emailGateway emailgateway.Gateway,
) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		emailGateway:     emailGateway,
	}
}

// NotifyWinner creates the in-app notification record and dispatches the
// email channel in the background. The record write is the authoritative
// fan-out; email delivery failures are logged and left to the gateway's own
// retry policy.
func (s *NotificationServiceImpl) NotifyWinner(ctx context.Context, winner *models.Winner, user *models.User) (*models.Notification, error) {
	message := utils.WinnerMessage(winner.PrizeName, winner.PrizeAmount, winner.Cycle, winner.TicketNumber)

	notification := &models.Notification{
		UserID:  user.ID,
		Title:   "Congratulations, you won!",
		Message: message,
		Link:    DashboardLink,
		Urgent:  true,
		SentAt:  time.Now(),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create winner notification: %w", err)
	}

	go s.sendWinnerEmail(user, winner, message)

	return notification, nil
}

// sendWinnerEmail delivers the announcement over the email channel
func (s *NotificationServiceImpl) sendWinnerEmail(user *models.User, winner *models.Winner, message string) {
	subject := fmt.Sprintf("Awash Lottery cycle %d winner announcement", winner.Cycle)
	body := fmt.Sprintf("%s Visit %s to see the announcement.", message, DashboardLink)

	messageID, err := s.emailGateway.SendEmail(user.Email, subject, body)
	if err != nil {
		slog.Error("failed to send winner email", "error", err,
			"userId", user.ID.Hex(), "cycle", winner.Cycle, "place", winner.Place)
		return
	}
	slog.Info("winner email dispatched", "messageId", messageID,
		"userId", user.ID.Hex(), "cycle", winner.Cycle, "place", winner.Place)
}
