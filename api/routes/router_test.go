package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/mfigueira/counseldesk/internal/activity"
	"github.com/mfigueira/counseldesk/internal/advice"
	"github.com/mfigueira/counseldesk/internal/analytics"
	"github.com/mfigueira/counseldesk/internal/auth"
	"github.com/mfigueira/counseldesk/internal/faq"
	"github.com/mfigueira/counseldesk/internal/licenses"
	"github.com/mfigueira/counseldesk/internal/users"
	"github.com/mfigueira/counseldesk/pkg/config"
	"github.com/mfigueira/counseldesk/pkg/logger"
	"github.com/mfigueira/counseldesk/pkg/snapshot"
	"github.com/mfigueira/counseldesk/pkg/store"
)

func newTestHandler(t *testing.T) (http.Handler, *auth.Manager) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "dev"

	client, err := store.Open(context.Background(), config.StoreConfig{
		Path:        filepath.Join(t.TempDir(), "kiosk.db"),
		BusyTimeout: 5 * time.Second,
	}, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	mgr, err := auth.NewManager(auth.ManagerParams{
		Store:    client,
		Snapshot: snapshot.NewMemory(),
		Logger:   logg,
	})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	activityRepo := activity.NewRepository(client.DB())
	analyticsRepo := analytics.NewRepository(client.DB())
	analyticsSvc, err := analytics.NewService(client.DB())
	if err != nil {
		t.Fatalf("analytics service: %v", err)
	}

	handler := NewRouter(Deps{
		Config:    cfg,
		Logger:    logg,
		Store:     client,
		Auth:      mgr,
		Recorder:  activity.NewRecorder(activityRepo, analyticsRepo, logg),
		Advice:    advice.NewService(),
		Licenses:  licenses.NewService(),
		FAQ:       faq.NewService(),
		Analytics: analyticsSvc,
		Users:     users.NewRepository(client.DB()),
		Activity:  activityRepo,
	})
	return handler, mgr
}

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return envelope.Data
}

func TestSignupLoginFlow(t *testing.T) {
	handler, mgr := newTestHandler(t)

	rec := postJSON(t, handler, "/v1/auth/signup", map[string]any{
		"firstName": "Priya",
		"lastName":  "Nair",
		"email":     "priya@example.com",
		"phone":     "555-0100",
		"password":  "Abcdef1!",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("signup status %d: %s", rec.Code, rec.Body.String())
	}
	if data := decodeData(t, rec); data["success"] != true {
		t.Fatalf("signup not successful: %v", data)
	}

	rec = postJSON(t, handler, "/v1/auth/login", map[string]any{
		"email":    "priya@example.com",
		"password": "Abcdef1!",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", rec.Code, rec.Body.String())
	}
	if data := decodeData(t, rec); data["success"] != true {
		t.Fatalf("login not successful: %v", data)
	}
	if !mgr.IsLoggedIn() {
		t.Fatalf("manager should be authenticated after login")
	}
}

func TestLoginFailureIsStructuredNotHTTPError(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := postJSON(t, handler, "/v1/auth/login", map[string]any{
		"email":    "ghost@example.com",
		"password": "Abcdef1!",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with structured failure, got %d", rec.Code)
	}
	data := decodeData(t, rec)
	if data["success"] != false {
		t.Fatalf("expected failure result: %v", data)
	}
	if data["error"] != "User not found" {
		t.Fatalf("unexpected error message %v", data["error"])
	}
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 while anonymous, got %d", rec.Code)
	}

	// a regular signed-in user is still rejected
	postJSON(t, handler, "/v1/auth/signup", map[string]any{
		"firstName": "Lee",
		"lastName":  "Park",
		"email":     "lee@example.com",
		"password":  "Abcdef1!",
	})
	postJSON(t, handler, "/v1/auth/login", map[string]any{
		"email":    "lee@example.com",
		"password": "Abcdef1!",
	})

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/users", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}
}

func TestAdminAccessWithAdminAccount(t *testing.T) {
	handler, _ := newTestHandler(t)

	postJSON(t, handler, "/v1/auth/signup", map[string]any{
		"firstName": "Site",
		"lastName":  "Admin",
		"email":     users.AdminEmail,
		"password":  "Abcdef1!",
	})
	postJSON(t, handler, "/v1/auth/login", map[string]any{
		"email":    users.AdminEmail,
		"password": "Abcdef1!",
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/summary", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected admin access, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdviceRendersForAnonymousVisitor(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := postJSON(t, handler, "/v1/advice", map[string]any{
		"question": "my landlord is evicting me over late rent",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("advice status %d: %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	if data["matched"] != true {
		t.Fatalf("expected matched topic: %v", data)
	}
}

func TestFAQViewUnknownID(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/faq/9999", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("live status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("ready status %d", rec.Code)
	}
}
