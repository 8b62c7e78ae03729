package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/infra/sessions"
	adminsRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/admins"
	"github.com/m04kA/SMC-RentalService/internal/service/auth"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// mockAdminsRepo is a hand-written test double. Each method is a function
// field so a test only sets the ones it needs.
type mockAdminsRepo struct {
	getUserByEmail func(ctx context.Context, email string) (*domain.AdminUser, error)
	getUserByID    func(ctx context.Context, id int64) (*domain.AdminUser, error)
	getGrant       func(ctx context.Context, userID int64) (*domain.AdminGrant, error)
}

var _ auth.AdminsRepository = (*mockAdminsRepo)(nil)

func (m *mockAdminsRepo) GetUserByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	return m.getUserByEmail(ctx, email)
}

func (m *mockAdminsRepo) GetUserByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	return m.getUserByID(ctx, id)
}

func (m *mockAdminsRepo) GetGrant(ctx context.Context, userID int64) (*domain.AdminGrant, error) {
	return m.getGrant(ctx, userID)
}

type mockSessionStore struct {
	create  func(ctx context.Context, userID int64) (string, error)
	get     func(ctx context.Context, token string) (int64, error)
	deleted []string
}

var _ auth.SessionStore = (*mockSessionStore)(nil)

func (m *mockSessionStore) Create(ctx context.Context, userID int64) (string, error) {
	return m.create(ctx, userID)
}

func (m *mockSessionStore) Get(ctx context.Context, token string) (int64, error) {
	return m.get(ctx, token)
}

func (m *mockSessionStore) Delete(ctx context.Context, token string) error {
	m.deleted = append(m.deleted, token)
	return nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func adminUser(t *testing.T) *domain.AdminUser {
	return &domain.AdminUser{
		ID:           1,
		Email:        "ana@example.com",
		Name:         "Ana",
		PasswordHash: hashOf(t, "s3cret"),
	}
}

func TestLogin_Success(t *testing.T) {
	user := adminUser(t)
	repo := &mockAdminsRepo{
		getUserByEmail: func(ctx context.Context, email string) (*domain.AdminUser, error) {
			assert.Equal(t, "ana@example.com", email, "email must be lowercased and trimmed")
			return user, nil
		},
		getGrant: func(ctx context.Context, userID int64) (*domain.AdminGrant, error) {
			return &domain.AdminGrant{UserID: userID}, nil
		},
	}
	store := &mockSessionStore{
		create: func(ctx context.Context, userID int64) (string, error) {
			return "tok-123", nil
		},
	}

	svc := auth.NewService(repo, store, nopLogger{})

	token, got, err := svc.Login(context.Background(), "  Ana@Example.COM ", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, user, got)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &mockAdminsRepo{
		getUserByEmail: func(ctx context.Context, email string) (*domain.AdminUser, error) {
			return adminUser(t), nil
		},
	}
	store := &mockSessionStore{
		create: func(ctx context.Context, userID int64) (string, error) {
			t.Fatal("no session may be created for a failed login")
			return "", nil
		},
	}

	svc := auth.NewService(repo, store, nopLogger{})

	_, _, err := svc.Login(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockAdminsRepo{
		getUserByEmail: func(ctx context.Context, email string) (*domain.AdminUser, error) {
			return nil, adminsRepo.ErrUserNotFound
		},
	}

	svc := auth.NewService(repo, &mockSessionStore{}, nopLogger{})

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

// A valid credential without an allow-list row must not sign in.
func TestLogin_ValidCredentialWithoutGrant(t *testing.T) {
	repo := &mockAdminsRepo{
		getUserByEmail: func(ctx context.Context, email string) (*domain.AdminUser, error) {
			return adminUser(t), nil
		},
		getGrant: func(ctx context.Context, userID int64) (*domain.AdminGrant, error) {
			return nil, adminsRepo.ErrNotAllowListed
		},
	}
	store := &mockSessionStore{
		create: func(ctx context.Context, userID int64) (string, error) {
			t.Fatal("no session may be created without a grant")
			return "", nil
		},
	}

	svc := auth.NewService(repo, store, nopLogger{})

	_, _, err := svc.Login(context.Background(), "ana@example.com", "s3cret")
	assert.ErrorIs(t, err, auth.ErrNotAuthorized)
}

func TestAuthorize_Success(t *testing.T) {
	user := adminUser(t)
	repo := &mockAdminsRepo{
		getUserByID: func(ctx context.Context, id int64) (*domain.AdminUser, error) {
			return user, nil
		},
		getGrant: func(ctx context.Context, userID int64) (*domain.AdminGrant, error) {
			return &domain.AdminGrant{UserID: userID}, nil
		},
	}
	store := &mockSessionStore{
		get: func(ctx context.Context, token string) (int64, error) {
			return 1, nil
		},
	}

	svc := auth.NewService(repo, store, nopLogger{})

	got, err := svc.Authorize(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Empty(t, store.deleted)
}

func TestAuthorize_UnknownToken(t *testing.T) {
	store := &mockSessionStore{
		get: func(ctx context.Context, token string) (int64, error) {
			return 0, sessions.ErrSessionNotFound
		},
	}

	svc := auth.NewService(&mockAdminsRepo{}, store, nopLogger{})

	_, err := svc.Authorize(context.Background(), "tok-unknown")
	assert.ErrorIs(t, err, auth.ErrSessionInvalid)
}

// Revoking the grant mid-session forces a sign-out on the next request.
func TestAuthorize_RevokedGrantDeletesSession(t *testing.T) {
	repo := &mockAdminsRepo{
		getGrant: func(ctx context.Context, userID int64) (*domain.AdminGrant, error) {
			return nil, adminsRepo.ErrNotAllowListed
		},
	}
	store := &mockSessionStore{
		get: func(ctx context.Context, token string) (int64, error) {
			return 1, nil
		},
	}

	svc := auth.NewService(repo, store, nopLogger{})

	_, err := svc.Authorize(context.Background(), "tok-123")
	assert.ErrorIs(t, err, auth.ErrNotAuthorized)
	assert.Equal(t, []string{"tok-123"}, store.deleted, "revoked grant must delete the session")
}

func TestAuthorize_SessionPointsAtMissingUser(t *testing.T) {
	repo := &mockAdminsRepo{
		getGrant: func(ctx context.Context, userID int64) (*domain.AdminGrant, error) {
			return &domain.AdminGrant{UserID: userID}, nil
		},
		getUserByID: func(ctx context.Context, id int64) (*domain.AdminUser, error) {
			return nil, adminsRepo.ErrUserNotFound
		},
	}
	store := &mockSessionStore{
		get: func(ctx context.Context, token string) (int64, error) {
			return 1, nil
		},
	}

	svc := auth.NewService(repo, store, nopLogger{})

	_, err := svc.Authorize(context.Background(), "tok-123")
	assert.ErrorIs(t, err, auth.ErrSessionInvalid)
	assert.Equal(t, []string{"tok-123"}, store.deleted)
}
