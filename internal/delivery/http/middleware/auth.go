package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "gameonbaby/internal/delivery/http/helpers"
	"gameonbaby/internal/domain"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	userKey     contextKey = "user"
	roleKey     contextKey = "role"
)

// SetIdentity returns a context with the verified caller identity set.
func SetIdentity(ctx context.Context, ident *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// IdentityFromContext returns the verified caller identity, if present.
func IdentityFromContext(ctx context.Context) (*domain.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(*domain.Identity)
	return ident, ok
}

// SetUser returns a context with the local user account set.
func SetUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the local user account, if present. It is set only
// on routes wrapped with WithUser.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

// ActorID returns the acting user's id for history attribution, or "" when
// the request carries no resolved user.
func ActorID(ctx context.Context) string {
	if user, ok := UserFromContext(ctx); ok {
		return user.ID
	}
	return ""
}

// RoleFromContext returns the caller's resolved role, if RequireRole ran.
func RoleFromContext(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(roleKey).(domain.Role)
	return role, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// caller identity in the request context. If the token is missing or invalid,
// it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteError(w, http.StatusUnauthorized, "missing token")
				return
			}
			ident, err := verifier.Verify(token)
			if err != nil {
				h.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(SetIdentity(r.Context(), ident)))
		}
	}
}

func roleRank(role domain.Role) int {
	switch role {
	case domain.RoleUser:
		return 0
	case domain.RoleRegular:
		return 1
	case domain.RoleModerator:
		return 2
	case domain.RoleAdmin:
		return 3
	default:
		return -1
	}
}

// RequireRole returns a wrapper that resolves the caller's role (through the
// user service's role cache) and rejects callers below min with 403. Must run
// after RequireAuth.
func RequireRole(users domain.UserService, logger *slog.Logger, min domain.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ident, ok := IdentityFromContext(r.Context())
			if !ok {
				h.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			role, err := users.ResolveRole(r.Context(), ident)
			if err != nil {
				logger.ErrorContext(r.Context(), "role resolution failed", "path", r.URL.Path, "err", err)
				h.WriteError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if roleRank(role) < roleRank(min) {
				h.WriteError(w, http.StatusForbidden, "forbidden")
				return
			}
			next(w, r.WithContext(context.WithValue(r.Context(), roleKey, role)))
		}
	}
}

// WithUser returns a wrapper that upserts and attaches the local user account
// for the verified identity, making ActorID available to handlers. Must run
// after RequireAuth. Applied to mutating admin routes where history
// attribution needs the acting user's id.
func WithUser(users domain.UserService, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ident, ok := IdentityFromContext(r.Context())
			if !ok {
				h.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			user, err := users.EnsureUser(r.Context(), ident, "")
			if err != nil {
				logger.ErrorContext(r.Context(), "user resolution failed", "path", r.URL.Path, "err", err)
				h.WriteError(w, http.StatusInternalServerError, "internal error")
				return
			}
			next(w, r.WithContext(SetUser(r.Context(), user)))
		}
	}
}

// Chain applies the given wrappers to h in order, outermost first.
func Chain(h http.HandlerFunc, wrappers ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	for i := len(wrappers) - 1; i >= 0; i-- {
		h = wrappers[i](h)
	}
	return h
}
