package users

import (
	"context"
	"fmt"
	"strings"
	"testing"

	pkgerrors "github.com/mfigueira/counseldesk/pkg/errors"
	"github.com/mfigueira/counseldesk/pkg/security"
	"github.com/mfigueira/counseldesk/pkg/store/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.User{}))
	return conn
}

func testDTO(email string) CreateUserDTO {
	return CreateUserDTO{
		FirstName: "Jordan",
		LastName:  "Reyes",
		Email:     email,
		Phone:     "555-0101",
		Password:  security.Fingerprint("Abcdef1!"),
	}
}

func TestCreateAssignsDefaults(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	user, err := repo.Create(context.Background(), testDTO("jordan@example.com"))
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.True(t, user.IsActive)
	require.False(t, user.IsAdmin)
	require.False(t, user.CreatedAt.IsZero())
}

func TestCreateAdminFlagFromFixedEmail(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	admin, err := repo.Create(context.Background(), testDTO(AdminEmail))
	require.NoError(t, err)
	require.True(t, admin.IsAdmin)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, testDTO("dup@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testDTO("dup@example.com"))
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeDuplicateKey, typed.Code())

	// the index rejected the second insert; exactly one row survives
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestFindByEmailAbsentIsNotAnError(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestFindByEmailIsCaseSensitive(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, testDTO("Case@Example.com"))
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "Case@Example.com")
	require.NoError(t, err)
	require.NotNil(t, found)

	miss, err := repo.FindByEmail(ctx, "case@example.com")
	require.NoError(t, err)
	require.Nil(t, miss)
}

func TestSetActive(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	user, err := repo.Create(ctx, testDTO("toggle@example.com"))
	require.NoError(t, err)

	require.NoError(t, repo.SetActive(ctx, user.ID, false))

	reloaded, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	require.False(t, reloaded.IsActive)
}

func TestSetActiveUnknownUser(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	err := repo.SetActive(context.Background(), 9999, false)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
