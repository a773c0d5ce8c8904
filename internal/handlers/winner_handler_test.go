package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/awash-lottery/backend/internal/models"
	"github.com/awash-lottery/backend/internal/services"
	"github.com/gin-gonic/gin"
)

type stubWinnerService struct {
	announceErr error
	announced   []struct{ ticketNumber, place int }
}

func (s *stubWinnerService) AnnounceWinner(ctx context.Context, ticketNumber, place int) (*models.Winner, error) {
	if s.announceErr != nil {
		return nil, s.announceErr
	}
	s.announced = append(s.announced, struct{ ticketNumber, place int }{ticketNumber, place})
	return &models.Winner{Cycle: 7, Place: place, TicketNumber: ticketNumber}, nil
}

func (s *stubWinnerService) GetWinnersByCycle(ctx context.Context, cycle int) ([]*models.Winner, error) {
	return []*models.Winner{}, nil
}

func (s *stubWinnerService) GetTicketByNumber(ctx context.Context, ticketNumber int) (*models.Ticket, error) {
	return &models.Ticket{TicketNumber: ticketNumber}, nil
}

func announceRequest(t *testing.T, body interface{}) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/winners/announce", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func setupAnnounceRouter(service services.WinnerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewWinnerHandler(service)
	router.POST("/admin/winners/announce", handler.AnnounceWinner)
	return router
}

func TestAnnounceWinnerSuccess(t *testing.T) {
	service := &stubWinnerService{}
	router := setupAnnounceRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, announceRequest(t, AnnounceWinnerRequest{TicketNumber: 4512, Place: 2}))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["message"] != "Winner announced." {
		t.Errorf("message = %q, want %q", body["message"], "Winner announced.")
	}
	if len(service.announced) != 1 || service.announced[0].ticketNumber != 4512 || service.announced[0].place != 2 {
		t.Errorf("service called with %v, want one call (4512, 2)", service.announced)
	}
}

func TestAnnounceWinnerPreconditionFailures(t *testing.T) {
	for _, sentinel := range []error{services.ErrLotteryNotConfigured, services.ErrTicketNotFound} {
		service := &stubWinnerService{announceErr: sentinel}
		router := setupAnnounceRouter(service)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, announceRequest(t, AnnounceWinnerRequest{TicketNumber: 4512, Place: 1}))

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("%v: status = %d, want %d", sentinel, w.Code, http.StatusUnprocessableEntity)
		}
	}
}

func TestAnnounceWinnerPersistenceFailure(t *testing.T) {
	service := &stubWinnerService{announceErr: errors.New("write conflict")}
	router := setupAnnounceRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, announceRequest(t, AnnounceWinnerRequest{TicketNumber: 4512, Place: 1}))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestAnnounceWinnerInvalidBody(t *testing.T) {
	service := &stubWinnerService{}
	router := setupAnnounceRouter(service)

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing place", map[string]int{"ticketNumber": 4512}},
		{"zero ticket number", map[string]int{"ticketNumber": 0, "place": 1}},
		{"negative place", map[string]int{"ticketNumber": 4512, "place": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, announceRequest(t, tt.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if len(service.announced) != 0 {
				t.Errorf("service must not be called on invalid input")
			}
		})
	}
}
