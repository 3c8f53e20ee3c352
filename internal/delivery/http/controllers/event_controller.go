package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"gameonbaby/internal/delivery/http/helpers"
	"gameonbaby/internal/delivery/http/middleware"
	"gameonbaby/internal/domain"
)

// CreateEventRequest is the request body for POST /api/admin/events.
type CreateEventRequest struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         int       `json:"price"`
	Place         string    `json:"place"`
	Capacity      int       `json:"capacity"`
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	Visible       bool      `json:"visible"`
	BankAccountID *string   `json:"bank_account_id"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Title == "" {
		errs = append(errs, "title is required")
	}
	if c.Price < 0 {
		errs = append(errs, "price must be non-negative")
	}
	if c.Capacity < 0 {
		errs = append(errs, "capacity must be non-negative")
	}
	if c.From.IsZero() || c.To.IsZero() {
		errs = append(errs, "from and to are required")
	} else if c.From.After(c.To) {
		errs = append(errs, "from must not be after to")
	}
	return errs
}

// UpdateEventRequest is the request body for PUT /api/admin/events/{eventID}.
// All fields optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Price       *int       `json:"price"`
	Place       *string    `json:"place"`
	Capacity    *int       `json:"capacity"`
	From        *time.Time `json:"from"`
	To          *time.Time `json:"to"`
	Visible     *bool      `json:"visible"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Title != nil && *u.Title == "" {
		errs = append(errs, "title cannot be empty")
	}
	if u.Price != nil && *u.Price < 0 {
		errs = append(errs, "price must be non-negative")
	}
	if u.Capacity != nil && *u.Capacity < 0 {
		errs = append(errs, "capacity must be non-negative")
	}
	return errs
}

// EventResponse is the success envelope carrying a single event.
type EventResponse struct {
	helpers.Response
	Event *domain.Event `json:"event"`
}

// EventListResponse is the success envelope carrying a list of events.
type EventListResponse struct {
	helpers.Response
	Events []*domain.Event `json:"events"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListVisible godoc
// @Summary List visible events
// @Description Returns events marked visible, for the public event listing.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventListResponse
// @Failure 500 {object} helpers.Response
// @Router /api/events [get]
func (c *EventController) ListVisible(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListVisibleEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventListResponse{Response: helpers.OK(), Events: events})
}

// Get godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventResponse
// @Failure 404 {object} helpers.Response "code: 10001"
// @Failure 500 {object} helpers.Response
// @Router /api/events/{eventID} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteErrorCode(w, http.StatusNotFound, domain.CodeEventNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Response: helpers.OK(), Event: event})
}

// ListAll godoc
// @Summary List all events including hidden ones
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventListResponse
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events [get]
func (c *EventController) ListAll(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListAllEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventListResponse{Response: helpers.OK(), Events: events})
}

// Create godoc
// @Summary Create an event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventResponse
// @Failure 400 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := &domain.Event{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		Place:         req.Place,
		Capacity:      req.Capacity,
		From:          req.From,
		To:            req.To,
		Visible:       req.Visible,
		BankAccountID: req.BankAccountID,
	}
	if err := c.Service.CreateEvent(r.Context(), event, middleware.ActorID(r.Context())); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, EventResponse{Response: helpers.OK(), Event: event})
}

// Update godoc
// @Summary Update an event
// @Description Partial update; omitted fields are unchanged.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param event body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response "code: 10001"
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events/{eventID} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	input := domain.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Place:       req.Place,
		Capacity:    req.Capacity,
		From:        req.From,
		To:          req.To,
		Visible:     req.Visible,
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, input, middleware.ActorID(r.Context()))
	if err != nil {
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
	helpers.WriteJSON(w, http.StatusOK, EventResponse{Response: helpers.OK(), Event: event})
}

// Delete godoc
// @Summary Delete an event
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response "code: 10001"
// @Failure 500 {object} helpers.Response
// @Router /api/admin/events/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID, middleware.ActorID(r.Context())); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteErrorCode(w, http.StatusNotFound, domain.CodeEventNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.OK())
}
