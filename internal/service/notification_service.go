// internal/service/notification_service.go
package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	appErrors "github.com/maheshk/campusconnect-backend/internal/errors"
	"github.com/maheshk/campusconnect-backend/internal/mailer"
	"github.com/maheshk/campusconnect-backend/internal/model"
	"github.com/maheshk/campusconnect-backend/internal/repository"
)

// fallbackFirstName personalizes update emails for recipients we cannot
// resolve to an active subscriber.
const fallbackFirstName = "User"

type NotificationService struct {
	SubscriberRepo   repository.SubscriberRepositoryInterface
	NotificationRepo repository.NotificationRepositoryInterface
	Mailer           mailer.Mailer
}

// SubscribeResult reports one subscribe attempt. EmailSent is false when the
// subscription itself succeeded but the welcome email could not be delivered.
type SubscribeResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EmailSent bool   `json:"email_sent"`
}

// BroadcastResult reports a launch or update dispatch. Count is the number of
// recipients attempted, not the number successfully delivered.
type BroadcastResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SubscriberInfo is the admin-facing subscriber listing entry.
type SubscriberInfo struct {
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalSubscribers   int `json:"total_subscribers"`
	TotalNotifications int `json:"total_notifications"`
}

// Subscribe validates the input, sends the welcome email and records the
// subscriber. The welcome email is sent whether or not the address is already
// on the list, so repeat subscribes re-deliver it. Email-transport failure
// never blocks record-keeping.
func (s *NotificationService) Subscribe(email, firstName string) *SubscribeResult {
	if err := ValidateEmail(email); err != nil {
		return &SubscribeResult{Success: false, Message: err.Error()}
	}
	if err := ValidateFirstName(firstName); err != nil {
		return &SubscribeResult{Success: false, Message: err.Error()}
	}

	existing, err := s.SubscriberRepo.FindByEmail(email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("subscriber lookup failed")
		return &SubscribeResult{Success: false, Message: "Something went wrong. Please try again."}
	}

	// Welcome email goes out regardless of whether the subscriber already
	// exists; repeat subscribes are an idempotent notification.
	html := RenderTemplate(WelcomeTemplate, map[string]string{"first_name": firstName})
	sendResult := s.Mailer.Send(email, firstName, WelcomeSubject, html)

	content := fmt.Sprintf("Welcome email sent to %s at %s", firstName, email)
	if !sendResult.Success {
		log.Warn().Str("email", email).Str("error", sendResult.Message).Msg("welcome email failed")
		content = fmt.Sprintf("Email sending failed: %s", sendResult.Message)
	}
	s.recordNotification(model.NotificationWelcome, WelcomeTitle, content, email, sendResult.Success)

	alreadySubscribed := existing != nil
	if !alreadySubscribed {
		sub := &model.Subscriber{
			Email:     email,
			FirstName: firstName,
			IsActive:  true,
		}
		if err := s.SubscriberRepo.Insert(sub); err != nil {
			if appErrors.IsDuplicate(err) {
				// Lost a race with a concurrent subscribe for the same
				// address; resolve to the already-subscribed outcome.
				alreadySubscribed = true
			} else {
				log.Error().Err(err).Str("email", email).Msg("subscriber insert failed")
				return &SubscribeResult{Success: false, Message: "Something went wrong. Please try again."}
			}
		}
	}

	return &SubscribeResult{
		Success:   true,
		Message:   subscribeMessage(firstName, email, alreadySubscribed, sendResult.Success),
		EmailSent: sendResult.Success,
	}
}

func subscribeMessage(firstName, email string, alreadySubscribed, emailSent bool) string {
	switch {
	case alreadySubscribed && emailSent:
		return fmt.Sprintf("%s, you're already on our list! We've re-sent your welcome email.", firstName)
	case alreadySubscribed:
		return fmt.Sprintf("%s, you're already on our list! We'll notify you when CampusConnect launches.", firstName)
	case emailSent:
		return fmt.Sprintf("Thanks %s! We'll notify you at %s when CampusConnect launches. Check your inbox!", firstName, email)
	default:
		return fmt.Sprintf("Thanks %s! You're on the list, but the welcome email could not be delivered.", firstName)
	}
}

// BroadcastLaunch sends the launch notification to every active subscriber,
// one at a time. Delivery failures are logged per recipient and do not abort
// the remaining sends.
func (s *NotificationService) BroadcastLaunch() *BroadcastResult {
	subscribers, err := s.SubscriberRepo.ListActive()
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch subscribers for launch broadcast")
		return &BroadcastResult{Success: false, Message: "Failed to fetch subscribers"}
	}

	if len(subscribers) == 0 {
		return &BroadcastResult{Success: false, Message: "No active subscribers found"}
	}

	for _, sub := range subscribers {
		html := RenderTemplate(LaunchTemplate, map[string]string{"first_name": sub.FirstName})
		sendResult := s.Mailer.Send(sub.Email, sub.FirstName, LaunchSubject, html)

		content := "Launch notification sent"
		if !sendResult.Success {
			log.Warn().Str("email", sub.Email).Str("error", sendResult.Message).Msg("launch email failed")
			content = fmt.Sprintf("Email sending failed: %s", sendResult.Message)
		}
		s.recordNotification(model.NotificationLaunch, LaunchTitle, content, sub.Email, sendResult.Success)
	}

	return &BroadcastResult{
		Success: true,
		Message: fmt.Sprintf("Launch notifications sent to %d subscribers", len(subscribers)),
		Count:   len(subscribers),
	}
}

// SendUpdate sends a custom update to the given recipients, one at a time.
// Recipients that cannot be resolved to an active subscriber still receive
// the email, personalized with a generic placeholder name.
func (s *NotificationService) SendUpdate(title, content string, recipients []string) *BroadcastResult {
	if title == "" || content == "" {
		return &BroadcastResult{Success: false, Message: "Title and content are required"}
	}
	if len(recipients) == 0 {
		return &BroadcastResult{Success: false, Message: "No recipients provided"}
	}

	subject := RenderTemplate(UpdateSubject, map[string]string{"title": title})

	for _, email := range recipients {
		firstName := s.lookupFirstName(email)

		html := RenderTemplate(UpdateTemplate, map[string]string{
			"first_name": firstName,
			"title":      title,
			"content":    content,
		})
		sendResult := s.Mailer.Send(email, firstName, subject, html)

		logContent := content
		if !sendResult.Success {
			log.Warn().Str("email", email).Str("error", sendResult.Message).Msg("update email failed")
			logContent = fmt.Sprintf("Email sending failed: %s", sendResult.Message)
		}
		s.recordNotification(model.NotificationUpdate, title, logContent, email, sendResult.Success)
	}

	return &BroadcastResult{
		Success: true,
		Message: fmt.Sprintf("Update %q sent to %d recipients", title, len(recipients)),
		Count:   len(recipients),
	}
}

// lookupFirstName resolves personalization for an update recipient. Unknown,
// inactive, or unreadable subscribers fall back to a placeholder rather than
// failing the send.
func (s *NotificationService) lookupFirstName(email string) string {
	sub, err := s.SubscriberRepo.FindByEmail(email)
	if err != nil {
		log.Warn().Err(err).Str("email", email).Msg("recipient lookup failed, using fallback name")
		return fallbackFirstName
	}
	if sub == nil || !sub.IsActive {
		return fallbackFirstName
	}
	return sub.FirstName
}

// GetSubscribers returns the active subscribers, most recently subscribed first.
func (s *NotificationService) GetSubscribers() ([]SubscriberInfo, error) {
	subscribers, err := s.SubscriberRepo.ListActive()
	if err != nil {
		return nil, err
	}

	infos := make([]SubscriberInfo, len(subscribers))
	for i, sub := range subscribers {
		infos[i] = SubscriberInfo{
			Email:     sub.Email,
			FirstName: sub.FirstName,
			Timestamp: sub.SubscribedAt,
		}
	}
	return infos, nil
}

// GetStats returns dashboard totals for the admin panel.
func (s *NotificationService) GetStats() (*Stats, error) {
	totalSubscribers, err := s.SubscriberRepo.Count()
	if err != nil {
		return nil, err
	}
	totalNotifications, err := s.NotificationRepo.Count()
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalSubscribers:   totalSubscribers,
		TotalNotifications: totalNotifications,
	}, nil
}

// GetRecentNotifications returns the newest delivery-log entries.
func (s *NotificationService) GetRecentNotifications(limit int) ([]model.Notification, error) {
	return s.NotificationRepo.ListRecent(limit)
}

// recordNotification appends one delivery-log entry. The log is for
// observability; a failure to write it must not fail the dispatch.
func (s *NotificationService) recordNotification(notifType, title, content, recipient string, success bool) {
	n := &model.Notification{
		Type:           notifType,
		Title:          title,
		Content:        content,
		RecipientEmail: recipient,
		Success:        success,
	}
	if err := s.NotificationRepo.Create(n); err != nil {
		log.Error().Err(err).Str("recipient", recipient).Str("type", notifType).Msg("failed to record notification")
	}
}
