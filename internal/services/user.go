package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gameonbaby/internal/domain"
)

type userService struct {
	userRepo       domain.UserRepository
	roleCache      domain.RoleCache
	contextTimeout time.Duration
}

func NewUserService(userRepo domain.UserRepository, roleCache domain.RoleCache, timeout time.Duration) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		roleCache:      roleCache,
		contextTimeout: timeout,
	}
}

func externalKey(externalID string) string { return "ext:" + externalID }

func emailKey(email string) string { return "email:" + strings.ToLower(email) }

// EnsureUser upserts the local account for a verified identity. The very
// first account ever created gets the ADMIN role so a fresh deployment is
// administrable without manual database edits.
func (s *userService) EnsureUser(ctx context.Context, ident *domain.Identity, name string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByExternalID(ctx, ident.ExternalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("get user by external id: %w", err)
	}

	// The identity provider may mint a new external id for an email we have
	// already seen (account re-created on the provider side).
	user, err = s.userRepo.GetByEmail(ctx, ident.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	role := domain.RoleUser
	if count == 0 {
		role = domain.RoleAdmin
	}

	user = &domain.User{
		ExternalID: ident.ExternalID,
		Email:      ident.Email,
		Name:       name,
		Role:       role,
		CreatedAt:  time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// ResolveRole returns the caller's role, consulting the role cache before the
// database. Unknown identities resolve to USER without creating an account.
func (s *userService) ResolveRole(ctx context.Context, ident *domain.Identity) (domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if role, ok := s.roleCache.Get(ctx, externalKey(ident.ExternalID)); ok {
		return role, nil
	}
	if role, ok := s.roleCache.Get(ctx, emailKey(ident.Email)); ok {
		return role, nil
	}

	user, err := s.userRepo.GetByExternalID(ctx, ident.ExternalID)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.userRepo.GetByEmail(ctx, ident.Email)
	}
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUserNotFound):
		return domain.RoleUser, nil
	default:
		return "", fmt.Errorf("resolve role: %w", err)
	}

	s.roleCache.Set(ctx, externalKey(ident.ExternalID), user.Role)
	s.roleCache.Set(ctx, emailKey(user.Email), user.Role)
	return user.Role, nil
}

func (s *userService) UpdateRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update role: %w", err)
	}
	user.Role = role
	s.roleCache.Invalidate(ctx, externalKey(user.ExternalID), emailKey(user.Email))
	return user, nil
}

func (s *userService) Search(ctx context.Context, query string, params domain.PaginationParams) ([]*domain.User, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	users, total, err := s.userRepo.Search(ctx, query, params)
	if err != nil {
		return nil, 0, fmt.Errorf("search users: %w", err)
	}
	if users == nil {
		users = []*domain.User{}
	}
	return users, total, nil
}
