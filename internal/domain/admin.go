package domain

import "time"

// AdminUser represents a back-office credential. Holding a valid credential
// is not enough for admin access: the user id must also appear in the admins
// allow-list (see AdminGrant).
type AdminUser struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdminGrant is one row of the admins allow-list. Its mere presence is what
// grants administrative access.
type AdminGrant struct {
	UserID    int64
	GrantedAt time.Time
}
