package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netcompare/domain/core"
	"netcompare/domain/crm"
	"netcompare/domain/survey"
	"netcompare/internal/errors"
)

type stubStore struct {
	clicks []crm.Click
	fail   error
}

func (s *stubStore) CreateLead(ctx context.Context, lead crm.Lead) (core.RecordID, error) {
	if s.fail != nil {
		return "", s.fail
	}
	return core.RecordID("rec-lead"), nil
}

func (s *stubStore) TrackClick(ctx context.Context, click crm.Click) (core.RecordID, error) {
	if s.fail != nil {
		return "", s.fail
	}
	s.clicks = append(s.clicks, click)
	return core.RecordID("rec-click"), nil
}

func (s *stubStore) AddReview(ctx context.Context, review crm.Review) (core.RecordID, error) {
	if s.fail != nil {
		return "", s.fail
	}
	return core.RecordID("rec-review"), nil
}

func (s *stubStore) PendingLeads(ctx context.Context) ([]crm.Lead, error) {
	return nil, s.fail
}

func (s *stubStore) UpdateLeadStatus(ctx context.Context, id core.RecordID, status crm.LeadStatus) error {
	return s.fail
}

func (s *stubStore) ListLeads(ctx context.Context) ([]crm.Lead, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	return []crm.Lead{{RecommendedNetwork: "Mascom", Status: crm.StatusConverted}}, nil
}

func (s *stubStore) ListClicks(ctx context.Context) ([]crm.Click, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	return s.clicks, nil
}

func uiDataset() *survey.Dataset {
	records := []survey.Record{
		{PrimaryNetwork: "Orange", Age: "18-24", Location: "Gaborone", Overall: survey.NewValue(7)},
		{PrimaryNetwork: "Mascom", Age: "25-34", Location: "Francistown", Overall: survey.NewValue(8)},
		{PrimaryNetwork: "BTC", Age: "18-24", Location: "Gaborone", Overall: survey.NewValue(6)},
	}
	return survey.NewDataset(records, "test.csv")
}

func newTestServer(t *testing.T, store *stubStore) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv, err := NewServer(uiDataset(), store)
	require.NoError(t, err)
	return srv
}

func TestIndexRendersComparison(t *testing.T) {
	srv := newTestServer(t, &stubStore{})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Orange")
	assert.Contains(t, body, "Mascom")
	assert.Contains(t, body, "BTC")
}

func TestSessionCookieAssigned(t *testing.T) {
	srv := newTestServer(t, &stubStore{})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	found := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessionCookie && cookie.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "session cookie should be set on first visit")
}

func TestQuizEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubStore{})

	body := strings.NewReader(`{"priority":"💰 Best Price"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/quiz", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rec struct {
		Network string `json:"network"`
		Reason  string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "Mascom", rec.Network)
	assert.NotEmpty(t, rec.Reason)
}

func TestProfileEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubStore{})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile/Orange?age=18-24", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		Users int `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, 1, profile.Users)

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile/Vodacom", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrackClickUsesSession(t *testing.T) {
	store := &stubStore{}
	srv := newTestServer(t, store)

	body := strings.NewReader(`{"network":"BTC"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/clicks", body)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "session-abc"})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.clicks, 1)
	assert.Equal(t, core.SessionID("session-abc"), store.clicks[0].SessionID)
	assert.Equal(t, "website_visit", store.clicks[0].Action)
}

func TestDashboardWarnsOnStoreOutage(t *testing.T) {
	store := &stubStore{fail: errors.ExternalService("airtable", assert.AnError)}
	srv := newTestServer(t, store)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	// Outage never produces an error page
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unavailable")
}

func TestExportComparison(t *testing.T) {
	srv := newTestServer(t, &stubStore{})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export/comparison.xlsx", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "network_comparison.xlsx")
	assert.NotZero(t, w.Body.Len())
}
