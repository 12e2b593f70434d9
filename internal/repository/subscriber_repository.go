package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	appErrors "github.com/maheshk/campusconnect-backend/internal/errors"
	"github.com/maheshk/campusconnect-backend/internal/model"
)

// SubscriberRepositoryInterface defines methods used by the service
type SubscriberRepositoryInterface interface {
	FindByEmail(email string) (*model.Subscriber, error)
	Insert(s *model.Subscriber) error
	ListActive() ([]model.Subscriber, error)
	Count() (int, error)
}

// SubscriberRepository is the concrete implementation
type SubscriberRepository struct {
	DB *sql.DB
}

// FindByEmail fetches a subscriber by email, nil when no row exists.
func (r *SubscriberRepository) FindByEmail(email string) (*model.Subscriber, error) {
	query := `
        SELECT id, email, first_name, is_active, subscribed_at
        FROM email_subscribers
        WHERE email = $1
    `
	row := r.DB.QueryRow(query, email)

	var s model.Subscriber
	if err := row.Scan(&s.ID, &s.Email, &s.FirstName, &s.IsActive, &s.SubscribedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // not found
		}
		return nil, err
	}
	return &s, nil
}

// Insert creates a new subscriber row. A unique_violation on the email
// column is surfaced as a duplicate-subscriber conflict so callers can
// treat a concurrent subscribe for the same address as "already subscribed".
func (r *SubscriberRepository) Insert(s *model.Subscriber) error {
	if s.SubscribedAt.IsZero() {
		s.SubscribedAt = time.Now()
	}
	query := `
        INSERT INTO email_subscribers (email, first_name, is_active, subscribed_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.DB.QueryRow(query, s.Email, s.FirstName, s.IsActive, s.SubscribedAt).Scan(&s.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return appErrors.NewDuplicateSubscriber(s.Email)
		}
		return err
	}
	return nil
}

// ListActive fetches all active subscribers, most recently subscribed first.
func (r *SubscriberRepository) ListActive() ([]model.Subscriber, error) {
	query := `
        SELECT id, email, first_name, is_active, subscribed_at
        FROM email_subscribers
        WHERE is_active = true
        ORDER BY subscribed_at DESC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subscribers := []model.Subscriber{}
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.FirstName, &s.IsActive, &s.SubscribedAt); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, s)
	}
	return subscribers, rows.Err()
}

// Count returns the total number of subscriber rows.
func (r *SubscriberRepository) Count() (int, error) {
	var total int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM email_subscribers`).Scan(&total)
	return total, err
}

var _ SubscriberRepositoryInterface = (*SubscriberRepository)(nil)
