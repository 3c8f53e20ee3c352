package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gameonbaby/internal/delivery/http/helpers"
	"gameonbaby/internal/domain"
)

// CreateNoShowRequest is the request body for POST /api/admin/events/{eventID}/no-shows.
type CreateNoShowRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Notes     string `json:"notes"`
}

// Validate implements Validator.
func (c CreateNoShowRequest) Validate() []string {
	var errs []string
	if c.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(strings.TrimSpace(c.Email)) {
		errs = append(errs, "email must be a valid email address")
	}
	return errs
}

// ImportNoShowsRequest is the request body for POST /api/admin/events/{eventID}/no-shows/import.
// Candidates usually come straight from the candidates endpoint.
type ImportNoShowsRequest struct {
	Candidates []*domain.NoShowCandidate `json:"candidates"`
}

// Validate implements Validator.
func (i ImportNoShowsRequest) Validate() []string {
	if len(i.Candidates) == 0 {
		return []string{"candidates is required"}
	}
	return nil
}

// SetFeePaidRequest is the request body for PUT /api/admin/no-shows/{noShowID}/fee.
type SetFeePaidRequest struct {
	FeePaid bool `json:"fee_paid"`
}

// NoShowResponse is the success envelope carrying a single no-show record.
type NoShowResponse struct {
	helpers.Response
	NoShow *domain.NoShow `json:"no_show"`
}

// NoShowListResponse is the success envelope for a no-show listing.
type NoShowListResponse struct {
	helpers.Response
	NoShows []*domain.NoShow `json:"no_shows"`
}

// NoShowCandidateListResponse is the success envelope for the candidates listing.
type NoShowCandidateListResponse struct {
	helpers.Response
	Candidates []*domain.NoShowCandidate `json:"candidates"`
}

// ImportNoShowsResponse is the success envelope for a bulk import.
type ImportNoShowsResponse struct {
	helpers.Response
	Imported int `json:"imported"`
}

type NoShowController struct {
	Logger  *slog.Logger
	Service domain.NoShowService
}

func NewNoShowController(logger *slog.Logger, svc domain.NoShowService) *NoShowController {
	return &NoShowController{
		Logger:  logger,
		Service: svc,
	}
}

// Candidates godoc
// @Summary List no-show candidates for an event
// @Description Active registrations that did not attend, have no paid payment,
// @Description and are not yet recorded as no-shows.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.NoShowCandidateListResponse
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response "code: 10001"
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events/{eventID}/no-shows/candidates [get]
func (c *NoShowController) Candidates(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	candidates, err := c.Service.Candidates(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteErrorCode(w, http.StatusNotFound, domain.CodeEventNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, NoShowCandidateListResponse{Response: helpers.OK(), Candidates: candidates})
}

// Import godoc
// @Summary Bulk import no-shows for an event
// @Description Filters the submitted candidates against already recorded
// @Description no-shows and inserts the remainder. Importing the same list
// @Description twice inserts nothing the second time.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body ImportNoShowsRequest true "Candidates to import"
// @Success 200 {object} controllers.ImportNoShowsResponse
// @Failure 400 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response "code: 10001"
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events/{eventID}/no-shows/import [post]
func (c *NoShowController) Import(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	var req ImportNoShowsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	imported, err := c.Service.BulkImport(r.Context(), eventID, req.Candidates)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteErrorCode(w, http.StatusNotFound, domain.CodeEventNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ImportNoShowsResponse{Response: helpers.OK(), Imported: imported})
}

// Create godoc
// @Summary Record a no-show manually
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body CreateNoShowRequest true "No-show data"
// @Success 201 {object} controllers.NoShowResponse
// @Failure 400 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response "code: 10001"
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events/{eventID}/no-shows [post]
func (c *NoShowController) Create(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	var req CreateNoShowRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	noShow := &domain.NoShow{
		Email:     strings.TrimSpace(req.Email),
		EventID:   eventID,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}
	if err := c.Service.Create(r.Context(), noShow); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteErrorCode(w, http.StatusNotFound, domain.CodeEventNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, NoShowResponse{Response: helpers.OK(), NoShow: noShow})
}

// List godoc
// @Summary List no-shows of an event
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.NoShowListResponse
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response "code: 10001"
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events/{eventID}/no-shows [get]
func (c *NoShowController) List(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	noShows, err := c.Service.ListByEvent(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteErrorCode(w, http.StatusNotFound, domain.CodeEventNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, NoShowListResponse{Response: helpers.OK(), NoShows: noShows})
}

// SetFeePaid godoc
// @Summary Mark a no-show fee as paid or unpaid
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param noShowID path string true "No-show ID (UUID)"
// @Param body body SetFeePaidRequest true "Fee paid flag"
// @Success 200 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/admin/no-shows/{noShowID}/fee [put]
func (c *NoShowController) SetFeePaid(w http.ResponseWriter, r *http.Request) {
	noShowID := r.PathValue("noShowID")
	if noShowID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing noShowID")
		return
	}
	var req SetFeePaidRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.SetFeePaid(r.Context(), noShowID, req.FeePaid); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "no-show record not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.OK())
}
