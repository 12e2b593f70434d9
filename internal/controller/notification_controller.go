// internal/controller/notification_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/maheshk/campusconnect-backend/internal/auth"
	"github.com/maheshk/campusconnect-backend/internal/service"
)

type NotificationController struct {
	NotificationService *service.NotificationService
	AuthManager         *auth.Manager
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Subscribe handles the public waitlist form submission.
func (c *NotificationController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "invalid request format",
		})
		return
	}

	result := c.NotificationService.Subscribe(body.Email, body.FirstName)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, result)
}

// Login verifies the admin password and returns a bearer token.
func (c *NotificationController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "invalid request format",
		})
		return
	}

	session, err := c.AuthManager.Login(body.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
	})
}

// BroadcastLaunch sends the launch notification to all active subscribers.
func (c *NotificationController) BroadcastLaunch(w http.ResponseWriter, r *http.Request) {
	result := c.NotificationService.BroadcastLaunch()
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, result)
}

// SendUpdate sends a custom update email to the listed recipients.
func (c *NotificationController) SendUpdate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title      string   `json:"title"`
		Content    string   `json:"content"`
		Recipients []string `json:"recipients"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "invalid request format",
		})
		return
	}

	result := c.NotificationService.SendUpdate(body.Title, body.Content, body.Recipients)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, result)
}

// ListSubscribers returns the active subscribers, newest first.
func (c *NotificationController) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := c.NotificationService.GetSubscribers()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": "failed to fetch subscribers",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"subscribers": subscribers,
		"count":       len(subscribers),
	})
}

// GetStats returns admin dashboard totals.
func (c *NotificationController) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.NotificationService.GetStats()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": "failed to fetch stats",
		})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ListNotifications returns the most recent delivery-log entries.
func (c *NotificationController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	notifications, err := c.NotificationService.GetRecentNotifications(limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"message": "failed to fetch notifications",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"notifications": notifications,
	})
}
