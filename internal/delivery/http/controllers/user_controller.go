package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"gameonbaby/internal/delivery/http/helpers"
	"gameonbaby/internal/delivery/http/middleware"
	"gameonbaby/internal/domain"
)

// AuthCallbackRequest is the request body for POST /api/auth/callback. Name is
// the display name supplied by the identity provider.
type AuthCallbackRequest struct {
	Name string `json:"name"`
}

// UpdateRoleRequest is the request body for PUT /api/admin/users/{userID}/role.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// Validate implements Validator.
func (u UpdateRoleRequest) Validate() []string {
	if strings.TrimSpace(u.Role) == "" {
		return []string{"role is required"}
	}
	return nil
}

// UserResponse is the success envelope carrying a single user.
type UserResponse struct {
	helpers.Response
	User *domain.User `json:"user"`
}

// UserListResponse is the success envelope for the paginated user search.
type UserListResponse struct {
	helpers.Response
	Users      []*domain.User         `json:"users"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// AuthCallback godoc
// @Summary Provision the local account after identity-provider login
// @Description Upserts the user for the verified token identity. The very
// @Description first user ever created becomes ADMIN.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AuthCallbackRequest true "Display name from the identity provider"
// @Success 200 {object} controllers.UserResponse
// @Failure 400 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/auth/callback [post]
func (c *UserController) AuthCallback(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req AuthCallbackRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.EnsureUser(r.Context(), ident, strings.TrimSpace(req.Name))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, UserResponse{Response: helpers.OK(), User: user})
}

// Search godoc
// @Summary Search users
// @Description Case-insensitive match on name and email.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.UserListResponse
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/admin/users [get]
func (c *UserController) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	params := helpers.ParsePagination(r)
	users, total, err := c.Service.Search(r.Context(), query, params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, UserListResponse{
		Response:   helpers.OK(),
		Users:      users,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// UpdateRole godoc
// @Summary Change a user's role
// @Description Invalidates the cached role so the change takes effect on the
// @Description next request.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID (UUID)"
// @Param body body UpdateRoleRequest true "New role (USER, REGULAR, MODERATOR, ADMIN)"
// @Success 200 {object} controllers.UserResponse
// @Failure 400 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/admin/users/{userID}/role [put]
func (c *UserController) UpdateRole(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if userID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing userID")
		return
	}
	var req UpdateRoleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		helpers.WriteError(w, http.StatusBadRequest, "invalid role")
		return
	}
	user, err := c.Service.UpdateRole(r.Context(), userID, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, UserResponse{Response: helpers.OK(), User: user})
}
