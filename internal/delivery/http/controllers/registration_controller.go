package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"gameonbaby/internal/delivery/http/helpers"
	"gameonbaby/internal/delivery/http/middleware"
	"gameonbaby/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// RegisterRequest is the request body for POST /api/events/{eventID}/registrations.
type RegisterRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	PaymentType string `json:"payment_type"`
}

// Validate implements Validator. Payment type is validated separately so it
// can carry its own error code.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	if r.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(strings.TrimSpace(r.Email)) {
		errs = append(errs, "email must be a valid email address")
	}
	return errs
}

// UnregisterRequest is the request body for DELETE /api/events/{eventID}/registrations.
type UnregisterRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (u UnregisterRequest) Validate() []string {
	if strings.TrimSpace(u.Email) == "" {
		return []string{"email is required"}
	}
	return nil
}

// SetAttendedRequest is the request body for PUT .../registrations/{registrationID}/attended.
type SetAttendedRequest struct {
	Attended bool `json:"attended"`
}

// SetPaidRequest is the request body for PUT .../registrations/{registrationID}/payment.
type SetPaidRequest struct {
	Paid bool `json:"paid"`
}

// RegisterResponse is the success envelope for a created or reactivated
// registration. QRCode is a base64 PNG data URI, present for QR payments.
type RegisterResponse struct {
	helpers.Response
	Registration *domain.Registration `json:"registration"`
	Reactivated  bool                 `json:"reactivated"`
	QRCode       string               `json:"qr_code,omitempty"`
}

// RegistrationResponse is the success envelope carrying a single registration.
type RegistrationResponse struct {
	helpers.Response
	Registration *domain.Registration `json:"registration"`
}

// ParticipantListResponse is the success envelope for the admin participant
// listing, with payment state per row and the active count.
type ParticipantListResponse struct {
	helpers.Response
	Participants []*domain.RegistrationWithPayment `json:"participants"`
	Count        int                               `json:"count"`
}

// PaymentResponse is the success envelope carrying a payment record.
type PaymentResponse struct {
	helpers.Response
	Payment *domain.Payment `json:"payment"`
}

// WaitingListEntryResponse is the success envelope carrying a waiting-list entry.
type WaitingListEntryResponse struct {
	helpers.Response
	Entry *domain.WaitingListEntry `json:"entry"`
}

type RegistrationController struct {
	Logger        *slog.Logger
	Registrations domain.RegistrationService
	Payments      domain.PaymentService
}

func NewRegistrationController(logger *slog.Logger, registrations domain.RegistrationService, payments domain.PaymentService) *RegistrationController {
	return &RegistrationController{
		Logger:        logger,
		Registrations: registrations,
		Payments:      payments,
	}
}

// Register godoc
// @Summary Register for an event
// @Description Creates a registration, or reactivates a previously removed one
// @Description for the same person. QR payment type returns a payment QR code.
// @Tags registrations
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param registration body RegisterRequest true "Registration data"
// @Success 201 {object} controllers.RegisterResponse
// @Failure 400 {object} helpers.Response "code: 10002 for invalid payment type"
// @Failure 404 {object} helpers.Response "code: 10001"
// @Failure 409 {object} helpers.Response "code: 10003"
// @Failure 429 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/events/{eventID}/registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	paymentType, err := domain.ParsePaymentType(req.PaymentType)
	if err != nil {
		helpers.WriteErrorCode(w, http.StatusBadRequest, domain.CodeInvalidPaymentType, "invalid payment type")
		return
	}
	input := domain.RegisterInput{
		EventID:     eventID,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		PaymentType: paymentType,
	}
	result, err := c.Registrations.Register(r.Context(), input, middleware.ActorID(r.Context()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteErrorCode(w, http.StatusNotFound, domain.CodeEventNotFound, "event not found")
			return
		}
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			helpers.WriteErrorCode(w, http.StatusConflict, domain.CodeDuplicateRegistration, "registration already exists for this event")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, RegisterResponse{
		Response:     helpers.OK(),
		Registration: result.Registration,
		Reactivated:  result.Reactivated,
		QRCode:       result.QRCode,
	})
}

// Unregister godoc
// @Summary Cancel a registration
// @Description Removes the caller's active registration for the event by email.
// @Tags registrations
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param body body UnregisterRequest true "Email used to register"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/events/{eventID}/registrations [delete]
func (c *RegistrationController) Unregister(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	var req UnregisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Registrations.Unregister(r.Context(), eventID, strings.TrimSpace(req.Email)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.OK())
}

// ListParticipants godoc
// @Summary List participants of an event
// @Description Returns active and removed registrations with payment state.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.ParticipantListResponse
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response "code: 10001"
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events/{eventID}/registrations [get]
func (c *RegistrationController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	participants, err := c.Registrations.ListParticipants(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteErrorCode(w, http.StatusNotFound, domain.CodeEventNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	count := 0
	for _, p := range participants {
		if !p.Deleted {
			count++
		}
	}
	helpers.WriteJSON(w, http.StatusOK, ParticipantListResponse{
		Response:     helpers.OK(),
		Participants: participants,
		Count:        count,
	})
}

// SetAttended godoc
// @Summary Toggle the attended flag of a registration
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param registrationID path string true "Registration ID (UUID)"
// @Param body body SetAttendedRequest true "Attended flag"
// @Success 200 {object} controllers.RegistrationResponse
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events/{eventID}/registrations/{registrationID}/attended [put]
func (c *RegistrationController) SetAttended(w http.ResponseWriter, r *http.Request) {
	registrationID := r.PathValue("registrationID")
	if registrationID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing registrationID")
		return
	}
	var req SetAttendedRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Registrations.SetAttended(r.Context(), registrationID, req.Attended)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, RegistrationResponse{Response: helpers.OK(), Registration: reg})
}

// SetPaid godoc
// @Summary Mark a registration paid or unpaid
// @Description Creates the payment record with a fresh variable symbol on
// @Description first use, then toggles the paid flag. Idempotent.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param registrationID path string true "Registration ID (UUID)"
// @Param body body SetPaidRequest true "Paid flag"
// @Success 200 {object} controllers.PaymentResponse
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events/{eventID}/registrations/{registrationID}/payment [put]
func (c *RegistrationController) SetPaid(w http.ResponseWriter, r *http.Request) {
	registrationID := r.PathValue("registrationID")
	if registrationID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing registrationID")
		return
	}
	var req SetPaidRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	payment, err := c.Payments.SetPaid(r.Context(), registrationID, req.Paid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, PaymentResponse{Response: helpers.OK(), Payment: payment})
}

// Delete godoc
// @Summary Remove a registration as a moderator
// @Description Soft delete; the registration can later be reactivated by the
// @Description participant registering again.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param registrationID path string true "Registration ID (UUID)"
// @Success 200 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events/{eventID}/registrations/{registrationID} [delete]
func (c *RegistrationController) Delete(w http.ResponseWriter, r *http.Request) {
	registrationID := r.PathValue("registrationID")
	if registrationID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing registrationID")
		return
	}
	if err := c.Registrations.DeleteByModerator(r.Context(), registrationID, middleware.ActorID(r.Context())); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.OK())
}

// Promote godoc
// @Summary Promote a waiting-list entry to a registration
// @Description Deletes the waiting-list entry and creates the registration in
// @Description one transaction. The promoted participant is emailed.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param waitingListID path string true "Waiting-list entry ID (UUID)"
// @Success 201 {object} controllers.RegistrationResponse
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Failure 409 {object} helpers.Response "code: 10003"
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events/{eventID}/waiting-list/{waitingListID}/promote [post]
func (c *RegistrationController) Promote(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	waitingListID := r.PathValue("waitingListID")
	if eventID == "" || waitingListID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID or waitingListID")
		return
	}
	reg, err := c.Registrations.PromoteFromWaitingList(r.Context(), eventID, waitingListID, middleware.ActorID(r.Context()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "waiting-list entry not found")
			return
		}
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			helpers.WriteErrorCode(w, http.StatusConflict, domain.CodeDuplicateRegistration, "registration already exists for this event")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, RegistrationResponse{Response: helpers.OK(), Registration: reg})
}

// MoveToWaitingList godoc
// @Summary Move a registration back to the waiting list
// @Description Soft-deletes the registration and creates the waiting-list
// @Description entry in one transaction.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param registrationID path string true "Registration ID (UUID)"
// @Success 201 {object} controllers.WaitingListEntryResponse
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Failure 409 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events/{eventID}/registrations/{registrationID}/move-to-waiting-list [post]
func (c *RegistrationController) MoveToWaitingList(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	registrationID := r.PathValue("registrationID")
	if eventID == "" || registrationID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID or registrationID")
		return
	}
	entry, err := c.Registrations.MoveToWaitingList(r.Context(), eventID, registrationID, middleware.ActorID(r.Context()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "registration not found")
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
