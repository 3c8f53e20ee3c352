package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gameonbaby/internal/delivery/http/middleware"
	"gameonbaby/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserController_AuthCallback(t *testing.T) {
	ident := &domain.Identity{ExternalID: "kinde-123", Email: "jana@example.com"}

	tests := []struct {
		name       string
		withIdent  bool
		wantStatus int
	}{
		{"success", true, http.StatusOK},
		{"no identity", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeUserService{ensureResult: &domain.User{ID: "u-1", Email: "jana@example.com", Role: domain.RoleUser}}
			ctrl := NewUserController(testLogger, fake)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/callback", bytes.NewBufferString(`{"name":"Jana Nováková"}`))
			if tt.withIdent {
				req = req.WithContext(middleware.SetIdentity(req.Context(), ident))
			}
			rr := httptest.NewRecorder()

			ctrl.AuthCallback(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var resp UserResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "u-1", resp.User.ID)
				assert.Equal(t, ident, fake.lastEnsureIdent)
				assert.Equal(t, "Jana Nováková", fake.lastEnsureName)
			}
		})
	}
}

func TestUserController_Search(t *testing.T) {
	fake := &fakeUserService{
		searchResult: []*domain.User{{ID: "u-1", Name: "Jana"}},
		searchTotal:  41,
	}
	ctrl := NewUserController(testLogger, fake)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users?q=jana&page=2&page_size=20", nil)
	rr := httptest.NewRecorder()

	ctrl.Search(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp UserListResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp.Users, 1)
	assert.Equal(t, "jana", fake.lastSearchQuery)
	assert.Equal(t, 2, fake.lastSearchParams.Page)
	assert.Equal(t, 41, resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestUserController_UpdateRole(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantRole   domain.Role
	}{
		{"promote to moderator", `{"role":"MODERATOR"}`, nil, http.StatusOK, domain.RoleModerator},
		{"lowercase accepted", `{"role":"admin"}`, nil, http.StatusOK, domain.RoleAdmin},
		{"unknown role", `{"role":"SUPERUSER"}`, nil, http.StatusBadRequest, ""},
		{"missing role", `{}`, nil, http.StatusBadRequest, ""},
		{"user not found", `{"role":"MODERATOR"}`, domain.ErrUserNotFound, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeUserService{
				updateRoleErr:    tt.fakeErr,
				updateRoleResult: &domain.User{ID: "u-1", Role: tt.wantRole},
			}
			ctrl := NewUserController(testLogger, fake)

			req := httptest.NewRequest(http.MethodPut, "/api/admin/users/u-1/role", bytes.NewBufferString(tt.body))
			req.SetPathValue("userID", "u-1")
			rr := httptest.NewRecorder()

			ctrl.UpdateRole(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "u-1", fake.lastRoleUserID)
				assert.Equal(t, tt.wantRole, fake.lastRole)
			}
		})
	}
}
