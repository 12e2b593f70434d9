// internal/mailer/brevo.go
package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/maheshk/campusconnect-backend/internal/config"
)

const defaultAPIBase = "https://api.brevo.com/v3"

// Mailer sends one rendered email to one recipient. Implementations must
// never propagate a raw error past this boundary: every outcome, including
// network failures and non-2xx API responses, becomes a Result.
type Mailer interface {
	Send(toEmail, toName, subject, htmlContent string) Result
}

// Result reports one delivery attempt. Message carries the raw API error
// body on failure so it can be captured in the delivery log.
type Result struct {
	Success bool
	Message string
}

// Client is the Brevo transactional-email API client.
type Client struct {
	apiKey      string
	senderEmail string
	senderName  string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a new Brevo API client.
func NewClient(cfg config.BrevoConfig) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		senderEmail: cfg.SenderEmail,
		senderName:  cfg.SenderName,
		baseURL:     defaultAPIBase,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(cfg config.BrevoConfig, baseURL string) *Client {
	c := NewClient(cfg)
	c.baseURL = baseURL
	return c
}

// IsConfigured returns true if the API key is set.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	Sender      emailAddress   `json:"sender"`
	To          []emailAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

// Send performs one POST /smtp/email call and interprets the response.
func (c *Client) Send(toEmail, toName, subject, htmlContent string) Result {
	if !c.IsConfigured() {
		return Result{Success: false, Message: "email service not configured - API key missing"}
	}

	payload := sendRequest{
		Sender:      emailAddress{Email: c.senderEmail, Name: c.senderName},
		To:          []emailAddress{{Email: toEmail, Name: toName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Result{Success: false, Message: fmt.Sprintf("failed to encode email payload: %v", err)}
	}

	req, err := http.NewRequest("POST", c.baseURL+"/smtp/email", bytes.NewReader(data))
	if err != nil {
		return Result{Success: false, Message: fmt.Sprintf("failed to build email request: %v", err)}
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Success: false, Message: fmt.Sprintf("email API request failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Success: false, Message: fmt.Sprintf("failed to read email API response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Success: false, Message: fmt.Sprintf("email API %d: %s", resp.StatusCode, string(body))}
	}

	return Result{Success: true, Message: "email sent"}
}

var _ Mailer = (*Client)(nil)
