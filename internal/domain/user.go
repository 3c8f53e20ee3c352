package domain

import (
	"context"
	"strings"
	"time"
)

// Role is an application role. The first user ever created becomes ADMIN;
// everyone else starts as USER and is promoted manually.
type Role string

const (
	RoleUser      Role = "USER"
	RoleRegular   Role = "REGULAR"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole normalizes and validates a role value.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleRegular:
		return RoleRegular, nil
	case RoleModerator:
		return RoleModerator, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrInvalidInput
	}
}

// User mirrors an identity-provider account with the locally assigned role.
// swagger:model User
type User struct {
	ID                string    `json:"id"`
	ExternalID        string    `json:"external_id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Role              Role      `json:"role"`
	PhoneNumber       string    `json:"phone_number"`
	PaymentPreference string    `json:"payment_preference"`
	CreatedAt         time.Time `json:"created_at"`
}

// Identity is the verified caller identity extracted from a session token.
type Identity struct {
	ExternalID string
	Email      string
}

// TokenVerifier validates an identity-provider session token and returns the
// caller's identity.
type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByExternalID(ctx context.Context, externalID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Count(ctx context.Context) (int, error)
	UpdateRole(ctx context.Context, id string, role Role) error
	Search(ctx context.Context, query string, params PaginationParams) ([]*User, int, error)
}

// RoleCache is a short-lived cache of resolved roles, keyed by external id or
// email. It must be invalidated explicitly on role updates.
type RoleCache interface {
	Get(ctx context.Context, key string) (Role, bool)
	Set(ctx context.Context, key string, role Role)
	Invalidate(ctx context.Context, keys ...string)
}

// UserService defines user provisioning, role resolution, and search.
type UserService interface {
	// EnsureUser upserts the user for a verified identity. The first user
	// ever created is assigned RoleAdmin.
	EnsureUser(ctx context.Context, ident *Identity, name string) (*User, error)
	// ResolveRole resolves the caller's role by external id, falling back to
	// email, consulting the role cache first.
	ResolveRole(ctx context.Context, ident *Identity) (Role, error)
	UpdateRole(ctx context.Context, userID string, role Role) (*User, error)
	Search(ctx context.Context, query string, params PaginationParams) ([]*User, int, error)
}
