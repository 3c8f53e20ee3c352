package http

import (
	"log/slog"
	"net/http"

	"gameonbaby/internal/delivery/http/controllers"
	"gameonbaby/internal/delivery/http/middleware"
	"gameonbaby/internal/domain"
	"gameonbaby/internal/services"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig carries everything the route table needs: controllers plus the
// middleware dependencies (token verifier, user service for role checks, and
// the shared rate limiter).
type RouterConfig struct {
	Logger        *slog.Logger
	Verifier      domain.TokenVerifier
	Users         domain.UserService
	Limiter       *services.RateLimiter
	Events        *controllers.EventController
	Registrations *controllers.RegistrationController
	WaitingList   *controllers.WaitingListController
	NoShows       *controllers.NoShowController
	UserCtrl      *controllers.UserController
	History       *controllers.HistoryController
	Stream        *controllers.StreamController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(cfg.Verifier, cfg.Logger)
	withUser := middleware.WithUser(cfg.Users, cfg.Logger)
	rateLimited := middleware.RateLimit(cfg.Limiter)

	// Read-only admin routes resolve the caller's role through the cache;
	// mutating ones additionally attach the local user for history attribution.
	moderator := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.Chain(h, requireAuth, middleware.RequireRole(cfg.Users, cfg.Logger, domain.RoleModerator))
	}
	moderatorMut := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.Chain(h, requireAuth, middleware.RequireRole(cfg.Users, cfg.Logger, domain.RoleModerator), withUser)
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.Chain(h, requireAuth, middleware.RequireRole(cfg.Users, cfg.Logger, domain.RoleAdmin))
	}
	adminMut := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.Chain(h, requireAuth, middleware.RequireRole(cfg.Users, cfg.Logger, domain.RoleAdmin), withUser)
	}

	// Public
	mux.HandleFunc("GET /api/events", cfg.Events.ListVisible)
	mux.HandleFunc("GET /api/events/{eventID}", cfg.Events.Get)
	mux.HandleFunc("POST /api/events/{eventID}/registrations", rateLimited(cfg.Registrations.Register))
	mux.HandleFunc("DELETE /api/events/{eventID}/registrations", cfg.Registrations.Unregister)
	mux.HandleFunc("POST /api/events/{eventID}/waiting-list", rateLimited(cfg.WaitingList.Join))
	mux.HandleFunc("DELETE /api/events/{eventID}/waiting-list", cfg.WaitingList.Leave)
	mux.HandleFunc("GET /api/events/{eventID}/stream", cfg.Stream.Stream)

	// Auth
	mux.HandleFunc("POST /api/auth/callback", middleware.Chain(cfg.UserCtrl.AuthCallback, requireAuth))

	// Admin: events
	mux.HandleFunc("GET /api/admin/events", admin(cfg.Events.ListAll))
	mux.HandleFunc("POST /api/admin/events", adminMut(cfg.Events.Create))
	mux.HandleFunc("PUT /api/admin/events/{eventID}", adminMut(cfg.Events.Update))
	mux.HandleFunc("DELETE /api/admin/events/{eventID}", adminMut(cfg.Events.Delete))

	// Admin: registrations
	mux.HandleFunc("GET /api/admin/events/{eventID}/registrations", moderator(cfg.Registrations.ListParticipants))
	mux.HandleFunc("POST /api/admin/events/{eventID}/registrations", moderatorMut(cfg.Registrations.Register))
	mux.HandleFunc("PUT /api/admin/events/{eventID}/registrations/{registrationID}/attended", moderator(cfg.Registrations.SetAttended))
	mux.HandleFunc("PUT /api/admin/events/{eventID}/registrations/{registrationID}/payment", moderator(cfg.Registrations.SetPaid))
	mux.HandleFunc("DELETE /api/admin/events/{eventID}/registrations/{registrationID}", moderatorMut(cfg.Registrations.Delete))
	mux.HandleFunc("POST /api/admin/events/{eventID}/registrations/{registrationID}/move-to-waiting-list", moderatorMut(cfg.Registrations.MoveToWaitingList))

	// Admin: waiting list
	mux.HandleFunc("GET /api/admin/events/{eventID}/waiting-list", moderator(cfg.WaitingList.List))
	mux.HandleFunc("POST /api/admin/events/{eventID}/waiting-list/{waitingListID}/promote", moderatorMut(cfg.Registrations.Promote))

	// Admin: no-shows
	mux.HandleFunc("GET /api/admin/events/{eventID}/no-shows", moderator(cfg.NoShows.List))
	mux.HandleFunc("GET /api/admin/events/{eventID}/no-shows/candidates", moderator(cfg.NoShows.Candidates))
	mux.HandleFunc("POST /api/admin/events/{eventID}/no-shows", moderator(cfg.NoShows.Create))
	mux.HandleFunc("POST /api/admin/events/{eventID}/no-shows/import", moderator(cfg.NoShows.Import))
	mux.HandleFunc("PUT /api/admin/no-shows/{noShowID}/fee", moderator(cfg.NoShows.SetFeePaid))

	// Admin: history and users
	mux.HandleFunc("GET /api/admin/history", admin(cfg.History.List))
	mux.HandleFunc("GET /api/admin/users", admin(cfg.UserCtrl.Search))
	mux.HandleFunc("PUT /api/admin/users/{userID}/role", admin(cfg.UserCtrl.UpdateRole))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
