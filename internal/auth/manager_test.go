package auth

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/mfigueira/counseldesk/internal/users"
	"github.com/mfigueira/counseldesk/pkg/config"
	"github.com/mfigueira/counseldesk/pkg/logger"
	"github.com/mfigueira/counseldesk/pkg/security"
	"github.com/mfigueira/counseldesk/pkg/snapshot"
	"github.com/mfigueira/counseldesk/pkg/store"
	"github.com/mfigueira/counseldesk/pkg/store/models"
)

func newTestManager(t *testing.T) (*Manager, *store.Client, *snapshot.Memory) {
	t.Helper()

	client, err := store.Open(context.Background(), config.StoreConfig{
		Path:        filepath.Join(t.TempDir(), "kiosk.db"),
		BusyTimeout: 5 * time.Second,
	}, nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	snap := snapshot.NewMemory()
	mgr, err := NewManager(ManagerParams{
		Store:    client,
		Snapshot: snap,
		Logger:   logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return mgr, client, snap
}

func validSignup(email string) SignupRequest {
	return SignupRequest{
		FirstName: "Dana",
		LastName:  "Whitfield",
		Email:     email,
		Phone:     "555-0142",
		Password:  "Abcdef1!",
	}
}

func TestSignupThenLoginRoundTrip(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := context.Background()

	signup := mgr.Signup(ctx, validSignup("dana@example.com"))
	if !signup.Success {
		t.Fatalf("signup failed: %s", signup.Error)
	}
	if signup.UserID == 0 {
		t.Fatalf("expected assigned user id")
	}

	login := mgr.Login(ctx, "dana@example.com", "Abcdef1!")
	if !login.Success {
		t.Fatalf("login failed: %s", login.Error)
	}
	if login.User.ID != signup.UserID {
		t.Fatalf("login id %d does not match signup id %d", login.User.ID, signup.UserID)
	}
	if !mgr.IsLoggedIn() {
		t.Fatalf("expected authenticated state after login")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	mgr, client, _ := newTestManager(t)
	ctx := context.Background()

	if res := mgr.Signup(ctx, validSignup("dup@example.com")); !res.Success {
		t.Fatalf("first signup failed: %s", res.Error)
	}
	second := mgr.Signup(ctx, validSignup("dup@example.com"))
	if second.Success {
		t.Fatalf("expected duplicate signup to fail")
	}
	if second.Error != msgDuplicateEmail {
		t.Fatalf("unexpected error message %q", second.Error)
	}

	var count int64
	if err := client.DB().Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one user with the email, got %d", count)
	}
}

func TestSignupWeakPassword(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	req := validSignup("weak@example.com")
	req.Password = "abcdefgh"
	res := mgr.Signup(context.Background(), req)
	if res.Success {
		t.Fatalf("expected weak password to be rejected")
	}
	if res.Error != security.PolicyText {
		t.Fatalf("expected policy text, got %q", res.Error)
	}
}

func TestSignupStoresFingerprintNotPlaintext(t *testing.T) {
	mgr, client, _ := newTestManager(t)
	ctx := context.Background()

	if res := mgr.Signup(ctx, validSignup("fp@example.com")); !res.Success {
		t.Fatalf("signup failed: %s", res.Error)
	}

	stored, err := users.NewRepository(client.DB()).FindByEmail(ctx, "fp@example.com")
	if err != nil || stored == nil {
		t.Fatalf("find user: %v", err)
	}
	if stored.Password == "Abcdef1!" {
		t.Fatalf("plaintext password was persisted")
	}
	if stored.Password != security.Fingerprint("Abcdef1!") {
		t.Fatalf("stored value is not the fingerprint")
	}
}

func TestSignupRecordsActivityAndAnalytics(t *testing.T) {
	mgr, client, _ := newTestManager(t)
	ctx := context.Background()

	res := mgr.Signup(ctx, validSignup("events@example.com"))
	if !res.Success {
		t.Fatalf("signup failed: %s", res.Error)
	}

	var activities int64
	if err := client.DB().Model(&models.Activity{}).
		Where("user_id = ? AND activity_type = ?", res.UserID, models.ActivitySignup).
		Count(&activities).Error; err != nil {
		t.Fatalf("count activities: %v", err)
	}
	if activities != 1 {
		t.Fatalf("expected one signup activity, got %d", activities)
	}

	var events int64
	if err := client.DB().Model(&models.AnalyticsEvent{}).
		Where("event_type = ?", models.EventUserSignup).
		Count(&events).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	if events != 1 {
		t.Fatalf("expected one signup analytics event, got %d", events)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	res := mgr.Login(context.Background(), "ghost@example.com", "Abcdef1!")
	if res.Success {
		t.Fatalf("expected login to fail")
	}
	if res.Error != msgUserNotFound {
		t.Fatalf("unexpected message %q", res.Error)
	}
	if mgr.IsLoggedIn() {
		t.Fatalf("state must remain anonymous")
	}
}

func TestLoginWrongPasswordLeavesStateUntouched(t *testing.T) {
	mgr, _, snap := newTestManager(t)
	ctx := context.Background()

	if res := mgr.Signup(ctx, validSignup("wrong@example.com")); !res.Success {
		t.Fatalf("signup failed: %s", res.Error)
	}

	res := mgr.Login(ctx, "wrong@example.com", "Xyzabc9?")
	if res.Success {
		t.Fatalf("expected login to fail")
	}
	if res.Error != msgInvalidPassword {
		t.Fatalf("unexpected message %q", res.Error)
	}
	if mgr.IsLoggedIn() || mgr.CurrentUser() != nil {
		t.Fatalf("session state must not change on failed login")
	}
	if _, err := snap.Get(ctx, snapshotLoggedInKey); err == nil {
		t.Fatalf("snapshot must not be written on failed login")
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	mgr, client, _ := newTestManager(t)
	ctx := context.Background()

	res := mgr.Signup(ctx, validSignup("inactive@example.com"))
	if !res.Success {
		t.Fatalf("signup failed: %s", res.Error)
	}
	if err := users.NewRepository(client.DB()).SetActive(ctx, res.UserID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	login := mgr.Login(ctx, "inactive@example.com", "Abcdef1!")
	if login.Success {
		t.Fatalf("expected deactivated account to be rejected")
	}
	if login.Error != msgAccountDeactivated {
		t.Fatalf("unexpected message %q", login.Error)
	}
}

func TestLogoutThenRestoreReturnsFalse(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := context.Background()

	if res := mgr.Signup(ctx, validSignup("out@example.com")); !res.Success {
		t.Fatalf("signup failed: %s", res.Error)
	}
	if res := mgr.Login(ctx, "out@example.com", "Abcdef1!"); !res.Success {
		t.Fatalf("login failed: %s", res.Error)
	}

	mgr.Logout()

	if mgr.RestoreSession(ctx) {
		t.Fatalf("expected restore to fail after logout")
	}
	if mgr.IsLoggedIn() || mgr.CurrentUser() != nil {
		t.Fatalf("expected anonymous state after logout")
	}
}

func TestSnapshotRestoresFreshManager(t *testing.T) {
	mgr, client, snap := newTestManager(t)
	ctx := context.Background()

	signup := mgr.Signup(ctx, validSignup("restore@example.com"))
	if !signup.Success {
		t.Fatalf("signup failed: %s", signup.Error)
	}
	if res := mgr.Login(ctx, "restore@example.com", "Abcdef1!"); !res.Success {
		t.Fatalf("login failed: %s", res.Error)
	}

	// a fresh manager over the same snapshot mimics a reload of the kiosk UI
	fresh, err := NewManager(ManagerParams{Store: client, Snapshot: snap})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if !fresh.RestoreSession(ctx) {
		t.Fatalf("expected restore to succeed")
	}
	if !fresh.IsLoggedIn() {
		t.Fatalf("expected authenticated state after restore")
	}
	if fresh.CurrentUser().ID != signup.UserID {
		t.Fatalf("restored user id %d does not match %d", fresh.CurrentUser().ID, signup.UserID)
	}
}

func TestRestoreWithoutSnapshot(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	if mgr.RestoreSession(context.Background()) {
		t.Fatalf("expected restore to fail with empty snapshot")
	}
}

func TestRestoreIgnoresCorruptSnapshot(t *testing.T) {
	mgr, _, snap := newTestManager(t)
	ctx := context.Background()

	if err := snap.Set(ctx, snapshotLoggedInKey, "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := snap.Set(ctx, snapshotUserKey, "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}

	if mgr.RestoreSession(ctx) {
		t.Fatalf("expected corrupt snapshot to be discarded")
	}
	if mgr.IsLoggedIn() {
		t.Fatalf("expected anonymous state")
	}
}

func TestCurrentUserReturnsCopy(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	ctx := context.Background()

	if res := mgr.Signup(ctx, validSignup("copy@example.com")); !res.Success {
		t.Fatalf("signup failed: %s", res.Error)
	}
	if res := mgr.Login(ctx, "copy@example.com", "Abcdef1!"); !res.Success {
		t.Fatalf("login failed: %s", res.Error)
	}

	first := mgr.CurrentUser()
	first.Email = "mutated@example.com"
	if mgr.CurrentUser().Email == "mutated@example.com" {
		t.Fatalf("caller mutation leaked into session state")
	}
}
