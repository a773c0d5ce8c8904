package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/awash-lottery/backend/internal/models"
	"github.com/awash-lottery/backend/internal/repositories"
	"github.com/awash-lottery/backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

// Precondition errors. Handlers translate these into 422 responses; anything
// else coming out of AnnounceWinner is a persistence fault.
var (
	ErrLotteryNotConfigured = errors.New("lottery settings are missing or no cycle is configured")
	ErrTicketNotFound       = errors.New("ticket not found or not assigned to a user")
)

// Compile-time check to ensure WinnerServiceImpl implements WinnerService
var _ WinnerService = (*WinnerServiceImpl)(nil)

// WinnerServiceImpl handles the winner announcement workflow
type WinnerServiceImpl struct {
	settingsRepo repositories.SettingsRepository
	ticketRepo   repositories.TicketRepository
	winnerRepo   repositories.WinnerRepository
	userRepo     repositories.UserRepository
	txnRunner    repositories.TransactionRunner
	notifier     NotificationService
}

// NewWinnerService creates a new WinnerServiceImpl
func NewWinnerService(
	settingsRepo repositories.SettingsRepository,
	ticketRepo repositories.TicketRepository,
	winnerRepo repositories.WinnerRepository,
	userRepo repositories.UserRepository,
	txnRunner repositories.TransactionRunner,
	notifier NotificationService,
) *WinnerServiceImpl {
	return &WinnerServiceImpl{
		settingsRepo: settingsRepo,
		ticketRepo:   ticketRepo,
		winnerRepo:   winnerRepo,
		userRepo:     userRepo,
		txnRunner:    txnRunner,
		notifier:     notifier,
	}
}

// AnnounceWinner records the winner of the given place for the current cycle.
//
// Preconditions are checked before any mutation: settings must exist with a
// configured cycle, and the ticket must exist and be assigned to a user. The
// winner upsert and the conditional display-mode flip for first place then
// execute as one transaction. Re-announcing a (cycle, place) slot overwrites
// the previous winner; last announce wins. Notification fan-out happens after
// commit and its failure does not fail the announcement.
func (s *WinnerServiceImpl) AnnounceWinner(ctx context.Context, ticketNumber, place int) (*models.Winner, error) {
	// 1. Load settings and require a configured cycle
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLotteryNotConfigured
		}
		return nil, fmt.Errorf("failed to load lottery settings: %w", err)
	}
	if settings.Cycle == nil {
		return nil, ErrLotteryNotConfigured
	}
	cycle := *settings.Cycle

	// 2. Resolve the ticket and require an owner
	ticket, err := s.ticketRepo.FindByNumber(ctx, ticketNumber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to look up ticket %d: %w", ticketNumber, err)
	}
	if !ticket.Assigned() {
		return nil, ErrTicketNotFound
	}

	// 3. Compute the prize for this place
	prizeName, prizeAmount := utils.PrizeForPlace(place, settings.PrizeName)

	// Operator-visible trace of silent overwrites; re-announcing is the
	// supported correction path for a mistaken announcement.
	if previous, err := s.winnerRepo.FindByCyclePlace(ctx, cycle, place); err == nil {
		slog.Warn("re-announcing an already announced place, previous winner will be replaced",
			"cycle", cycle, "place", place, "previousUserId", previous.UserID.Hex())
	}

	winner := &models.Winner{
		Cycle:        cycle,
		Place:        place,
		UserID:       *ticket.UserID,
		TicketID:     ticket.ID,
		TicketNumber: ticket.TicketNumber,
		PrizeName:    prizeName,
		PrizeAmount:  prizeAmount,
		AnnouncedAt:  time.Now(),
	}

	// 4. Upsert the winner and, for first place, flip the display-mode flag,
	// as one atomic unit. A reader never sees one without the other.
	err = s.txnRunner.Run(ctx, func(txCtx context.Context) error {
		if err := s.winnerRepo.UpsertByCyclePlace(txCtx, winner); err != nil {
			return fmt.Errorf("failed to upsert winner for cycle %d place %d: %w", cycle, place, err)
		}
		if place == 1 {
			if err := s.settingsRepo.SetWinnerAnnouncementMode(txCtx, true); err != nil {
				return fmt.Errorf("failed to enable winner announcement mode: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("winner announcement transaction failed", "error", err, "cycle", cycle, "place", place)
		return nil, err
	}

	slog.Info("winner announced", "cycle", cycle, "place", place,
		"ticketNumber", ticketNumber, "prizeName", prizeName)

	// 5. Post-commit fan-out. The winner is already authoritative, so a
	// notification failure is logged, never surfaced. WithoutCancel keeps a
	// client disconnect from cancelling the notification write.
	s.notifyWinner(context.WithoutCancel(ctx), winner)

	return winner, nil
}

// notifyWinner reloads the winning user and hands the announcement to the
// notification service
func (s *WinnerServiceImpl) notifyWinner(ctx context.Context, winner *models.Winner) {
	user, err := s.userRepo.FindByID(ctx, winner.UserID)
	if err != nil {
		slog.Error("failed to load winning user for notification", "error", err,
			"userId", winner.UserID.Hex(), "cycle", winner.Cycle, "place", winner.Place)
		return
	}

	if _, err := s.notifier.NotifyWinner(ctx, winner, user); err != nil {
		slog.Error("failed to notify winning user", "error", err,
			"userId", winner.UserID.Hex(), "cycle", winner.Cycle, "place", winner.Place)
	}
}

// GetWinnersByCycle retrieves the winners of a cycle, ordered by place. Cycle
// 0 resolves to the current cycle from settings.
func (s *WinnerServiceImpl) GetWinnersByCycle(ctx context.Context, cycle int) ([]*models.Winner, error) {
	if cycle == 0 {
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrLotteryNotConfigured
			}
			return nil, fmt.Errorf("failed to load lottery settings: %w", err)
		}
		if settings.Cycle == nil {
			return nil, ErrLotteryNotConfigured
		}
		cycle = *settings.Cycle
	}
	return s.winnerRepo.FindByCycle(ctx, cycle)
}

// GetTicketByNumber retrieves a ticket by its number
func (s *WinnerServiceImpl) GetTicketByNumber(ctx context.Context, ticketNumber int) (*models.Ticket, error) {
	return s.ticketRepo.FindByNumber(ctx, ticketNumber)
}
