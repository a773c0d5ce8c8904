package services

import (
	"context"
	"testing"
	"time"

	"github.com/awash-lottery/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeNotificationRepo struct {
	created []*models.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	notification.ID = primitive.NewObjectID()
	f.created = append(f.created, notification)
	return nil
}

func (f *fakeNotificationRepo) FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.Notification, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeNotificationRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

type fakeEmailGateway struct {
	sent chan string // receives the recipient of each dispatch
}

func (f *fakeEmailGateway) SendEmail(to, subject, body string) (string, error) {
	f.sent <- to
	return "TEST-MSG-1", nil
}

func TestNotifyWinnerCreatesRecordAndDispatchesEmail(t *testing.T) {
	repo := &fakeNotificationRepo{}
	gateway := &fakeEmailGateway{sent: make(chan string, 1)}
	service := NewNotificationService(repo, gateway)

	amount := int64(100000)
	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "abebe@example.et",
	}
	winner := &models.Winner{
		Cycle:        7,
		Place:        2,
		UserID:       user.ID,
		TicketNumber: 4512,
		PrizeName:    "100K ETB",
		PrizeAmount:  &amount,
	}

	notification, err := service.NotifyWinner(context.Background(), winner, user)
	if err != nil {
		t.Fatalf("NotifyWinner failed: %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected exactly one in-app notification, got %d", len(repo.created))
	}
	record := repo.created[0]
	if record.UserID != user.ID {
		t.Errorf("notification user = %s, want %s", record.UserID.Hex(), user.ID.Hex())
	}
	if !record.Urgent {
		t.Error("winner notification must be urgent")
	}
	if record.Link != DashboardLink {
		t.Errorf("notification link = %q, want %q", record.Link, DashboardLink)
	}
	wantMessage := "You won 100K ETB (100,000 ETB) for cycle 7 with ticket #4512."
	if record.Message != wantMessage {
		t.Errorf("notification message = %q, want %q", record.Message, wantMessage)
	}
	if record.SentAt.IsZero() {
		t.Error("notification sentAt must be set")
	}
	if notification.ID.IsZero() {
		t.Error("returned notification must carry the persisted ID")
	}

	select {
	case to := <-gateway.sent:
		if to != user.Email {
			t.Errorf("email dispatched to %q, want %q", to, user.Email)
		}
	case <-time.After(time.Second):
		t.Fatal("expected exactly one email dispatch")
	}
}

func TestNotifyWinnerWithoutFixedAmount(t *testing.T) {
	repo := &fakeNotificationRepo{}
	gateway := &fakeEmailGateway{sent: make(chan string, 1)}
	service := NewNotificationService(repo, gateway)

	user := &models.User{ID: primitive.NewObjectID(), Email: "sara@example.et"}
	winner := &models.Winner{
		Cycle:        7,
		Place:        1,
		UserID:       user.ID,
		TicketNumber: 4512,
		PrizeName:    "Toyota Vitz",
	}

	if _, err := service.NotifyWinner(context.Background(), winner, user); err != nil {
		t.Fatalf("NotifyWinner failed: %v", err)
	}

	wantMessage := "You won Toyota Vitz for cycle 7 with ticket #4512."
	if got := repo.created[0].Message; got != wantMessage {
		t.Errorf("notification message = %q, want %q", got, wantMessage)
	}

	select {
	case <-gateway.sent:
	case <-time.After(time.Second):
		t.Fatal("expected an email dispatch")
	}
}
