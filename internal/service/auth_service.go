package service

import (
	"errors"
	"time"

	"campus/config"
	"campus/internal/models"
	"campus/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

type AuthService struct {
	cfg      *config.SessionConfig
	users    *repository.UserRepository
	sessions *repository.SessionRepository
}

func NewAuthService(cfg *config.SessionConfig, users *repository.UserRepository, sessions *repository.SessionRepository) *AuthService {
	return &AuthService{cfg: cfg, users: users, sessions: sessions}
}

// Authenticate verifies the credentials and issues an opaque session token.
func (s *AuthService) Authenticate(username, password string) (*models.Session, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.cfg.TokenTTL),
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// CurrentUser resolves a bearer token to its owning user. Expired sessions
// are rejected the same way as unknown tokens.
func (s *AuthService) CurrentUser(token string) (*models.User, error) {
	session, err := s.sessions.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrInvalidSession
	}
	return s.users.GetByID(session.UserID)
}

func (s *AuthService) Logout(token string) error {
	return s.sessions.Delete(token)
}
