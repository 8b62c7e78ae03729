package admins

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// Repository is the Postgres repository for back-office credentials and the
// admins allow-list.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an admins repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetUserByEmail returns the credential row for an email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"email",
		"name",
		"password_hash",
		"created_at",
		"updated_at",
	).
		From("admin_users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUserByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var user domain.AdminUser
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetUserByEmail - scan user: %v", ErrScanRow, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time
	return &user, nil
}

// GetUserByID returns the credential row for a user id
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"email",
		"name",
		"password_hash",
		"created_at",
		"updated_at",
	).
		From("admin_users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUserByID - build select query: %v", ErrBuildQuery, err)
	}

	var user domain.AdminUser
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetUserByID - scan user: %v", ErrScanRow, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time
	return &user, nil
}

// GetGrant returns the allow-list row for a user id. Admin access is decided
// by the presence of this row, never by the credential alone.
func (r *Repository) GetGrant(ctx context.Context, userID int64) (*domain.AdminGrant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id", "granted_at").
		From("admins").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetGrant - build select query: %v", ErrBuildQuery, err)
	}

	var grant domain.AdminGrant
	var grantedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&grant.UserID, &grantedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotAllowListed
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetGrant - scan grant: %v", ErrScanRow, err)
	}

	grant.GrantedAt = grantedAt.Time
	return &grant, nil
}
