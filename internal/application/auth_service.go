package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/reelstream/reelstream/internal/domain/entity"
	repo "github.com/reelstream/reelstream/internal/domain/repository"
	"github.com/reelstream/reelstream/pkg/helpers"
)

// ErrInvalidCredentials covers unknown email, password-less accounts, and
// wrong passwords alike so that the status code cannot be used to enumerate
// accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService orchestrates the credential store, password hasher, and token
// codec for register and login.
type AuthService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewAuthService(r repo.UserRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, Logger: logger}
}

// Register creates a user with a freshly hashed password. The pre-check gives
// the friendly duplicate path; the store's unique constraint is authoritative
// and a racing create surfaces as the same ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, repo.ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Email: email, PasswordHash: &hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	return u, nil
}

// Login validates email/password and returns the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if u.PasswordHash == nil {
		// external-only account, no local credential
		return nil, ErrInvalidCredentials
	}
	if !helpers.CheckPassword(*u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
