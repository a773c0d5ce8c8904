package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/awash-lottery/backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// WinnerHandler handles winner-related HTTP requests
type WinnerHandler struct {
	winnerService services.WinnerService
}

// NewWinnerHandler creates a new WinnerHandler
func NewWinnerHandler(winnerService services.WinnerService) *WinnerHandler {
	return &WinnerHandler{
		winnerService: winnerService,
	}
}

// AnnounceWinnerRequest is the body of POST /admin/winners/announce
type AnnounceWinnerRequest struct {
	TicketNumber int `json:"ticketNumber" binding:"required,min=1"`
	Place        int `json:"place" binding:"required,min=1"`
}

// AnnounceWinner handles POST /admin/winners/announce
func (h *WinnerHandler) AnnounceWinner(c *gin.Context) {
	var request AnnounceWinnerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	_, err := h.winnerService.AnnounceWinner(c.Request.Context(), request.TicketNumber, request.Place)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLotteryNotConfigured),
			errors.Is(err, services.ErrTicketNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to announce winner: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Winner announced."})
}

// GetWinners handles GET /admin/winners. An absent cycle query parameter
// means the current cycle.
func (h *WinnerHandler) GetWinners(c *gin.Context) {
	cycle, err := strconv.Atoi(c.DefaultQuery("cycle", "0"))
	if err != nil || cycle < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cycle"})
		return
	}

	winners, err := h.winnerService.GetWinnersByCycle(c.Request.Context(), cycle)
	if err != nil {
		if errors.Is(err, services.ErrLotteryNotConfigured) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve winners: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, winners)
}

// GetTicketByNumber handles GET /admin/tickets/:number
func (h *WinnerHandler) GetTicketByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ticket number"})
		return
	}

	ticket, err := h.winnerService.GetTicketByNumber(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Ticket not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve ticket: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ticket)
}
