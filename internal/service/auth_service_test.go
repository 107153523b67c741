package service

import (
	"testing"
	"time"

	"campus/config"
	"campus/internal/domain"
	"campus/internal/models"
	"campus/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		ID: "student-1", Username: "student", PasswordHash: string(hash), Role: domain.RoleStudent,
	}).Error)
	cfg := &config.SessionConfig{TokenTTL: 2 * time.Hour}
	return NewAuthService(cfg, repository.NewUserRepository(db), repository.NewSessionRepository(db))
}

func TestAuthenticateIssuesSession(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	session, err := svc.Authenticate("student", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "student-1", session.UserID)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	user, err := svc.CurrentUser(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "student-1", user.ID)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	_, err := svc.Authenticate("student", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentUserRejectsExpiredSession(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	require.NoError(t, db.Create(&models.Session{
		Token:     "stale-token",
		UserID:    "student-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}).Error)

	_, err := svc.CurrentUser("stale-token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)

	session, err := svc.Authenticate("student", "pw")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(session.Token))

	_, err = svc.CurrentUser(session.Token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
