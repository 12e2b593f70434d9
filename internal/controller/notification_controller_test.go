package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshk/campusconnect-backend/internal/auth"
	"github.com/maheshk/campusconnect-backend/internal/config"
	"github.com/maheshk/campusconnect-backend/internal/controller"
	"github.com/maheshk/campusconnect-backend/internal/mailer"
	"github.com/maheshk/campusconnect-backend/internal/model"
	"github.com/maheshk/campusconnect-backend/internal/service"
)

// --- Mock repositories ---

type MockSubscriberRepo struct {
	subscribers map[string]*model.Subscriber
}

func (m *MockSubscriberRepo) FindByEmail(email string) (*model.Subscriber, error) {
	return m.subscribers[email], nil
}

func (m *MockSubscriberRepo) Insert(s *model.Subscriber) error {
	s.ID = len(m.subscribers) + 1
	s.SubscribedAt = time.Now()
	m.subscribers[s.Email] = s
	return nil
}

func (m *MockSubscriberRepo) ListActive() ([]model.Subscriber, error) {
	active := []model.Subscriber{}
	for _, s := range m.subscribers {
		if s.IsActive {
			active = append(active, *s)
		}
	}
	return active, nil
}

func (m *MockSubscriberRepo) Count() (int, error) { return len(m.subscribers), nil }

type MockNotificationRepo struct {
	created []*model.Notification
}

func (m *MockNotificationRepo) Create(n *model.Notification) error {
	m.created = append(m.created, n)
	return nil
}

func (m *MockNotificationRepo) Count() (int, error) { return len(m.created), nil }

func (m *MockNotificationRepo) ListRecent(limit int) ([]model.Notification, error) {
	out := []model.Notification{}
	for _, n := range m.created {
		out = append(out, *n)
	}
	return out, nil
}

type MockMailer struct{ sent int }

func (m *MockMailer) Send(toEmail, toName, subject, htmlContent string) mailer.Result {
	m.sent++
	return mailer.Result{Success: true, Message: "email sent"}
}

func newController() (*controller.NotificationController, *MockSubscriberRepo, *MockNotificationRepo) {
	subs := &MockSubscriberRepo{subscribers: map[string]*model.Subscriber{}}
	notifs := &MockNotificationRepo{}
	svc := &service.NotificationService{
		SubscriberRepo:   subs,
		NotificationRepo: notifs,
		Mailer:           &MockMailer{},
	}
	return &controller.NotificationController{
		NotificationService: svc,
		AuthManager:         auth.NewManager(config.AdminConfig{Password: "hunter2"}),
	}, subs, notifs
}

// --- Tests ---

func TestSubscribeEndpoint(t *testing.T) {
	ctrl, subs, _ := newController()

	body, _ := json.Marshal(map[string]string{"email": "ann@example.com", "first_name": "Ann"})
	req := httptest.NewRequest("POST", "/subscribe", bytes.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.Subscribe(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res service.SubscribeResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.True(t, res.EmailSent)
	assert.NotNil(t, subs.subscribers["ann@example.com"])
}

func TestSubscribeEndpointRejectsInvalidEmail(t *testing.T) {
	ctrl, subs, _ := newController()

	body, _ := json.Marshal(map[string]string{"email": "not-an-email", "first_name": "Ann"})
	req := httptest.NewRequest("POST", "/subscribe", bytes.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.Subscribe(w, req)

	require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	assert.Empty(t, subs.subscribers)
}

func TestSubscribeEndpointRejectsMalformedBody(t *testing.T) {
	ctrl, _, _ := newController()

	req := httptest.NewRequest("POST", "/subscribe", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	ctrl.Subscribe(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestLoginEndpoint(t *testing.T) {
	ctrl, _, _ := newController()

	body, _ := json.Marshal(map[string]string{"password": "hunter2"})
	req := httptest.NewRequest("POST", "/admin/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.Login(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, true, res["success"])
	assert.NotEmpty(t, res["token"])
}

func TestLoginEndpointWrongPassword(t *testing.T) {
	ctrl, _, _ := newController()

	body, _ := json.Marshal(map[string]string{"password": "guess"})
	req := httptest.NewRequest("POST", "/admin/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestBroadcastLaunchEndpointNoSubscribers(t *testing.T) {
	ctrl, _, _ := newController()

	req := httptest.NewRequest("POST", "/admin/launch", nil)
	w := httptest.NewRecorder()

	ctrl.BroadcastLaunch(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var res service.BroadcastResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "No active subscribers")
}

func TestBroadcastLaunchEndpoint(t *testing.T) {
	ctrl, subs, notifs := newController()
	subs.subscribers["ann@example.com"] = &model.Subscriber{
		ID: 1, Email: "ann@example.com", FirstName: "Ann", IsActive: true, SubscribedAt: time.Now(),
	}

	req := httptest.NewRequest("POST", "/admin/launch", nil)
	w := httptest.NewRecorder()

	ctrl.BroadcastLaunch(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res service.BroadcastResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Count)
	assert.Len(t, notifs.created, 1)
}

func TestSendUpdateEndpoint(t *testing.T) {
	ctrl, _, notifs := newController()

	body, _ := json.Marshal(map[string]interface{}{
		"title":      "New Features",
		"content":    "We shipped things.",
		"recipients": []string{"a@x.com", "b@x.com"},
	})
	req := httptest.NewRequest("POST", "/admin/updates", bytes.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.SendUpdate(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res service.BroadcastResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, 2, res.Count)
	assert.Len(t, notifs.created, 2)
}

func TestSendUpdateEndpointRequiresTitle(t *testing.T) {
	ctrl, _, _ := newController()

	body, _ := json.Marshal(map[string]interface{}{
		"title":      "",
		"content":    "body",
		"recipients": []string{"a@x.com"},
	})
	req := httptest.NewRequest("POST", "/admin/updates", bytes.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.SendUpdate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestStatsEndpoint(t *testing.T) {
	ctrl, subs, notifs := newController()
	subs.subscribers["ann@example.com"] = &model.Subscriber{ID: 1, Email: "ann@example.com", FirstName: "Ann", IsActive: true}
	notifs.created = append(notifs.created, &model.Notification{Type: model.NotificationWelcome})

	req := httptest.NewRequest("GET", "/admin/stats", nil)
	w := httptest.NewRecorder()

	ctrl.GetStats(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats service.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 1, stats.TotalSubscribers)
	assert.Equal(t, 1, stats.TotalNotifications)
}

func TestListSubscribersEndpoint(t *testing.T) {
	ctrl, subs, _ := newController()
	subs.subscribers["ann@example.com"] = &model.Subscriber{
		ID: 1, Email: "ann@example.com", FirstName: "Ann", IsActive: true, SubscribedAt: time.Now(),
	}

	req := httptest.NewRequest("GET", "/admin/subscribers", nil)
	w := httptest.NewRecorder()

	ctrl.ListSubscribers(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res struct {
		Success     bool                     `json:"success"`
		Count       int                      `json:"count"`
		Subscribers []service.SubscriberInfo `json:"subscribers"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Count)
	require.Len(t, res.Subscribers, 1)
	assert.Equal(t, "Ann", res.Subscribers[0].FirstName)
}
