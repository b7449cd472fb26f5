// Package auth owns the kiosk session: who is signed in, the snapshot that
// lets the session survive a restart of the UI process, and the signup and
// login flows against the embedded store.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/mfigueira/counseldesk/internal/activity"
	"github.com/mfigueira/counseldesk/internal/analytics"
	"github.com/mfigueira/counseldesk/internal/users"
	pkgerrors "github.com/mfigueira/counseldesk/pkg/errors"
	"github.com/mfigueira/counseldesk/pkg/logger"
	"github.com/mfigueira/counseldesk/pkg/security"
	"github.com/mfigueira/counseldesk/pkg/snapshot"
	"github.com/mfigueira/counseldesk/pkg/store"
	"github.com/mfigueira/counseldesk/pkg/store/models"
	"gorm.io/gorm"
)

// Snapshot keys. The session is restorable only when both are present.
const (
	snapshotUserKey     = "currentUser"
	snapshotLoggedInKey = "isLoggedIn"
)

// Login failure messages. These deliberately distinguish an unknown email
// from a wrong password — an information-disclosure weakness carried over
// from the original system; tightening it would change observable behavior.
const (
	msgUserNotFound       = "User not found"
	msgAccountDeactivated = "Account is deactivated"
	msgInvalidPassword    = "Invalid password"
	msgDuplicateEmail     = "Email already registered"
	msgGenericFailure     = "Something went wrong. Please try again."
)

// Manager holds the single kiosk session and orchestrates signup, login,
// logout, and restore against the store, the credential policy, and the
// session snapshot. It is the only writer of the snapshot.
type Manager struct {
	store *store.Client
	users *users.Repository
	snap  snapshot.Store
	logg  *logger.Logger

	mu      sync.RWMutex
	current *models.User
}

// ManagerParams bundles the dependencies required to build a Manager.
type ManagerParams struct {
	Store    *store.Client
	Snapshot snapshot.Store
	Logger   *logger.Logger
}

// NewManager constructs a session manager with the provided dependencies.
func NewManager(params ManagerParams) (*Manager, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("store client is required")
	}
	if params.Snapshot == nil {
		return nil, fmt.Errorf("snapshot store is required")
	}
	return &Manager{
		store: params.Store,
		users: users.NewRepository(params.Store.DB()),
		snap:  params.Snapshot,
		logg:  params.Logger,
	}, nil
}

// Signup validates the payload and the password policy, fingerprints the
// password, and inserts the user together with its signup activity and
// analytics event in one transaction. The unique email index is the
// duplicate guard; there is no pre-check.
func (m *Manager) Signup(ctx context.Context, req SignupRequest) SignupResult {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return SignupResult{Error: "All fields are required"}
	}
	if !security.ValidateStrength(req.Password) {
		return SignupResult{Error: security.PolicyText}
	}

	var created *models.User
	err := m.store.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)
		activityRepo := activity.NewRepository(tx)
		analyticsRepo := analytics.NewRepository(tx)

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Password:  security.Fingerprint(req.Password),
		})
		if err != nil {
			return err
		}

		if _, err := activityRepo.Append(ctx, user.ID, models.ActivitySignup, "New user registered"); err != nil {
			return err
		}
		if _, err := analyticsRepo.Append(ctx, models.EventUserSignup, models.Attributes{
			"userId": user.ID,
			"email":  user.Email,
		}); err != nil {
			return err
		}

		created = user
		return nil
	})
	if err != nil {
		return SignupResult{Error: m.failureMessage(ctx, "signup failed", err)}
	}

	return SignupResult{Success: true, UserID: created.ID}
}

// Login authenticates the credentials and, on success, atomically records
// the login activity and analytics event, persists the session snapshot, and
// transitions to Authenticated. Any failure leaves the manager Anonymous
// with the snapshot cleared.
func (m *Manager) Login(ctx context.Context, email, password string) LoginResult {
	email = strings.TrimSpace(email)

	user, err := m.users.FindByEmail(ctx, email)
	if err != nil {
		return LoginResult{Error: m.failureMessage(ctx, "login lookup failed", err)}
	}
	if user == nil {
		return LoginResult{Error: msgUserNotFound}
	}
	if !user.IsActive {
		return LoginResult{Error: msgAccountDeactivated}
	}
	if security.Fingerprint(password) != user.Password {
		return LoginResult{Error: msgInvalidPassword}
	}

	if err := m.writeSnapshot(ctx, user); err != nil {
		m.clearSnapshot(ctx)
		return LoginResult{Error: m.failureMessage(ctx, "session snapshot write failed", err)}
	}

	err = m.store.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := activity.NewRepository(tx).Append(ctx, user.ID, models.ActivityLogin, "User logged in"); err != nil {
			return err
		}
		_, err := analytics.NewRepository(tx).Append(ctx, models.EventUserLogin, models.Attributes{
			"userId": user.ID,
		})
		return err
	})
	if err != nil {
		m.clearSnapshot(ctx)
		return LoginResult{Error: m.failureMessage(ctx, "login recording failed", err)}
	}

	m.setCurrent(user)
	return LoginResult{Success: true, User: m.CurrentUser()}
}

// Logout unconditionally returns the manager to Anonymous and clears the
// snapshot. It never fails.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	m.clearSnapshot(context.Background())
}

// RestoreSession rebuilds the Authenticated state from the snapshot. The
// snapshot's user payload is trusted verbatim for the remainder of the
// session; it is not re-validated against the store, so a deactivation
// after login is not observed until the next login.
func (m *Manager) RestoreSession(ctx context.Context) bool {
	logged, err := m.snap.Get(ctx, snapshotLoggedInKey)
	if err != nil || logged != "true" {
		return false
	}
	payload, err := m.snap.Get(ctx, snapshotUserKey)
	if err != nil {
		return false
	}

	var user models.User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		if m.logg != nil {
			m.logg.Warn(ctx, "discarding unreadable session snapshot")
		}
		return false
	}

	m.setCurrent(&user)
	return true
}

// IsLoggedIn reports whether a session is active.
func (m *Manager) IsLoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}

// CurrentUser returns a copy of the authenticated user, or nil when
// Anonymous.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	copied := *m.current
	return &copied
}

func (m *Manager) setCurrent(user *models.User) {
	copied := *user
	m.mu.Lock()
	m.current = &copied
	m.mu.Unlock()
}

func (m *Manager) writeSnapshot(ctx context.Context, user *models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := m.snap.Set(ctx, snapshotUserKey, string(payload)); err != nil {
		return err
	}
	return m.snap.Set(ctx, snapshotLoggedInKey, "true")
}

func (m *Manager) clearSnapshot(ctx context.Context) {
	if err := m.snap.Remove(ctx, snapshotUserKey); err != nil && m.logg != nil {
		m.logg.Warn(ctx, "failed to clear session snapshot user")
	}
	if err := m.snap.Remove(ctx, snapshotLoggedInKey); err != nil && m.logg != nil {
		m.logg.Warn(ctx, "failed to clear session snapshot flag")
	}
}

// failureMessage converts an internal failure into the message surfaced to
// the collaborator layer, logging the underlying error. Recoverable classes
// keep their specific wording; everything else collapses to a generic
// message.
func (m *Manager) failureMessage(ctx context.Context, logMsg string, err error) string {
	if m.logg != nil {
		m.logg.Error(ctx, logMsg, err)
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		return msgGenericFailure
	}
	switch typed.Code() {
	case pkgerrors.CodeDuplicateKey:
		return msgDuplicateEmail
	case pkgerrors.CodeWeakPassword:
		return security.PolicyText
	default:
		return msgGenericFailure
	}
}
