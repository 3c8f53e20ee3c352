package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"gameonbaby/internal/delivery/http/helpers"
	"gameonbaby/internal/domain"
)

// JoinWaitingListRequest is the request body for POST /api/events/{eventID}/waiting-list.
type JoinWaitingListRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	PaymentType string `json:"payment_type"`
}

// Validate implements Validator.
func (j JoinWaitingListRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(j.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(j.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	if j.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(strings.TrimSpace(j.Email)) {
		errs = append(errs, "email must be a valid email address")
	}
	return errs
}

// LeaveWaitingListRequest is the request body for DELETE /api/events/{eventID}/waiting-list.
type LeaveWaitingListRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (l LeaveWaitingListRequest) Validate() []string {
	if strings.TrimSpace(l.Email) == "" {
		return []string{"email is required"}
	}
	return nil
}

// WaitingListResponse is the success envelope for a waiting-list listing.
type WaitingListResponse struct {
	helpers.Response
	Entries []*domain.WaitingListEntry `json:"entries"`
}

type WaitingListController struct {
	Logger  *slog.Logger
	Service domain.WaitingListService
}

func NewWaitingListController(logger *slog.Logger, svc domain.WaitingListService) *WaitingListController {
	return &WaitingListController{
		Logger:  logger,
		Service: svc,
	}
}

// Join godoc
// @Summary Join an event's waiting list
// @Tags waiting-list
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param entry body JoinWaitingListRequest true "Waiting-list entry data"
// @Success 201 {object} controllers.WaitingListEntryResponse
// @Failure 400 {object} helpers.Response "code: 10002 for invalid payment type"
// @Failure 404 {object} helpers.Response "code: 10001"
// @Failure 409 {object} helpers.Response "code: 10003 when already registered"
// @Failure 429 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/events/{eventID}/waiting-list [post]
func (c *WaitingListController) Join(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	var req JoinWaitingListRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	paymentType, err := domain.ParsePaymentType(req.PaymentType)
	if err != nil {
		helpers.WriteErrorCode(w, http.StatusBadRequest, domain.CodeInvalidPaymentType, "invalid payment type")
		return
	}
	input := domain.JoinWaitingListInput{
		EventID:     eventID,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		PaymentType: paymentType,
	}
	entry, err := c.Service.Join(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteErrorCode(w, http.StatusNotFound, domain.CodeEventNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			helpers.WriteErrorCode(w, http.StatusConflict, domain.CodeDuplicateRegistration, "registration already exists for this event")
			return
		}
		if errors.Is(err, domain.ErrAlreadyOnWaitingList) {
			helpers.WriteError(w, http.StatusConflict, "already on the waiting list for this event")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, WaitingListEntryResponse{Response: helpers.OK(), Entry: entry})
}

// Leave godoc
// @Summary Leave an event's waiting list
// @Tags waiting-list
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param body body LeaveWaitingListRequest true "Email used to join"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/events/{eventID}/waiting-list [delete]
func (c *WaitingListController) Leave(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	var req LeaveWaitingListRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Leave(r.Context(), eventID, strings.TrimSpace(req.Email)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "waiting-list entry not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.OK())
}

// List godoc
// @Summary List waiting-list entries of an event
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.WaitingListResponse
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response "code: 10001"
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events/{eventID}/waiting-list [get]
func (c *WaitingListController) List(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	entries, err := c.Service.ListByEvent(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteErrorCode(w, http.StatusNotFound, domain.CodeEventNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, WaitingListResponse{Response: helpers.OK(), Entries: entries})
}
