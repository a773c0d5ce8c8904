package emailgateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/awash-lottery/backend/internal/config"
)

// Gateway represents an email delivery gateway. Queuing and retry of
// accepted messages is the gateway provider's responsibility.
type Gateway interface {
	SendEmail(to, subject, body string) (string, error)
}

// HTTPGateway delivers email through a transactional email HTTP API
type HTTPGateway struct {
	baseURL    string
	apiKey     string
	sender     string
	httpClient *http.Client
}

// MockGateway accepts every message without delivering anything. Used for
// local runs and tests.
type MockGateway struct{}

// NewGateway creates the gateway selected by configuration
func NewGateway(cfg *config.Config) Gateway {
	if cfg.Email.MockGateway {
		return &MockGateway{}
	}
	return &HTTPGateway{
		baseURL: cfg.Email.BaseURL,
		apiKey:  cfg.Email.APIKey,
		sender:  cfg.Email.Sender,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type sendResponse struct {
	MessageID string `json:"messageId"`
}

// SendEmail posts the message to the provider and returns its message ID
func (g *HTTPGateway) SendEmail(to, subject, body string) (string, error) {
	payload, err := json.Marshal(sendRequest{
		From:    g.sender,
		To:      to,
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, g.baseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("email gateway returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.MessageID, nil
}

// SendEmail returns a synthetic message ID without delivering
func (g *MockGateway) SendEmail(to, subject, body string) (string, error) {
	return fmt.Sprintf("MOCK-MSG-%d", time.Now().UnixNano()), nil
}
