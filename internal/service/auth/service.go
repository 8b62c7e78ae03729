package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/infra/sessions"
	adminsRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/admins"
)

// Service gates the back office. A valid credential alone never grants
// access: the user must also hold a row in the admins allow-list, and the
// grant is re-checked on every request so revoking it signs the user out
// immediately.
type Service struct {
	repo     AdminsRepository
	sessions SessionStore
	logger   Logger
}

// NewService creates an auth service
func NewService(repo AdminsRepository, sessions SessionStore, logger Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

// Login verifies the credential and the allow-list grant, then issues a
// session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminsRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email")
			return "", nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return "", nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return "", nil, ErrInvalidCredentials
	}

	if _, err := s.repo.GetGrant(ctx, user.ID); err != nil {
		if errors.Is(err, adminsRepo.ErrNotAllowListed) {
			s.logger.Warn("Login: user id=%d holds a valid credential but is not allow-listed", user.ID)
			return "", nil, ErrNotAuthorized
		}
		s.logger.Error("Login: grant lookup failed for user id=%d: %v", user.ID, err)
		return "", nil, fmt.Errorf("%w: Login - grant lookup failed: %v", ErrInternal, err)
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		s.logger.Error("Login: session creation failed for user id=%d: %v", user.ID, err)
		return "", nil, fmt.Errorf("%w: Login - session creation failed: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d signed in", user.ID)
	return token, user, nil
}

// Logout revokes the session token
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Error("Logout: session deletion failed: %v", err)
		return fmt.Errorf("%w: Logout - session deletion failed: %v", ErrInternal, err)
	}
	return nil
}

// Authorize resolves a session token to an admin user. When the allow-list
// grant has been revoked since sign-in, the session is deleted and the
// request is rejected: a forced sign-out.
func (s *Service) Authorize(ctx context.Context, token string) (*domain.AdminUser, error) {
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return nil, ErrSessionInvalid
		}
		s.logger.Error("Authorize: session lookup failed: %v", err)
		return nil, fmt.Errorf("%w: Authorize - session lookup failed: %v", ErrInternal, err)
	}

	if _, err := s.repo.GetGrant(ctx, userID); err != nil {
		if errors.Is(err, adminsRepo.ErrNotAllowListed) {
			s.logger.Warn("Authorize: grant revoked for user id=%d, forcing sign-out", userID)
			if delErr := s.sessions.Delete(ctx, token); delErr != nil {
				s.logger.Error("Authorize: forced sign-out cleanup failed for user id=%d: %v", userID, delErr)
			}
			return nil, ErrNotAuthorized
		}
		s.logger.Error("Authorize: grant lookup failed for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Authorize - grant lookup failed: %v", ErrInternal, err)
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, adminsRepo.ErrUserNotFound) {
			s.logger.Warn("Authorize: session points at missing user id=%d", userID)
			if delErr := s.sessions.Delete(ctx, token); delErr != nil {
				s.logger.Error("Authorize: session cleanup failed for user id=%d: %v", userID, delErr)
			}
			return nil, ErrSessionInvalid
		}
		s.logger.Error("Authorize: user lookup failed for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Authorize - user lookup failed: %v", ErrInternal, err)
	}

	return user, nil
}
