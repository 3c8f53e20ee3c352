package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gameonbaby/internal/delivery/http/helpers"
	"gameonbaby/internal/domain"

	"github.com/google/uuid"
)

// participantsUpdate is the data payload of a participants:update stream event.
type participantsUpdate struct {
	EventID      string                            `json:"event_id"`
	Count        int                               `json:"count"`
	Participants []*domain.RegistrationWithPayment `json:"participants"`
}

// StreamController pushes participant updates over a server-sent event stream.
// It polls the registration store on a fixed interval and emits an update
// whenever the active count changes, with heartbeats in between.
type StreamController struct {
	Logger        *slog.Logger
	Registrations domain.RegistrationService
	PollInterval  time.Duration
}

func NewStreamController(logger *slog.Logger, registrations domain.RegistrationService, pollInterval time.Duration) *StreamController {
	return &StreamController{
		Logger:        logger,
		Registrations: registrations,
		PollInterval:  pollInterval,
	}
}

func writeSSE(w http.ResponseWriter, flusher http.Flusher, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

// Stream godoc
// @Summary Stream participant updates for an event
// @Description Server-sent event stream. Emits participants:update events when
// @Description the active registration count changes, heartbeat events when
// @Description idle, and an error event before closing on failure.
// @Tags events
// @Produce text/event-stream
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {string} string "SSE stream"
// @Failure 404 {object} helpers.Response "code: 10001"
// @Failure 500 {object} helpers.Response
// @Router /api/events/{eventID}/stream [get]
func (c *StreamController) Stream(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteError(w, http.StatusBadRequest, "missing eventID")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		helpers.WriteError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	// First poll before committing to the stream, so a bad event id still
	// gets a regular JSON 404.
	count, err := c.Registrations.CountParticipants(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteErrorCode(w, http.StatusNotFound, domain.CodeEventNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "internal error")
		return
	}

	clientID := uuid.NewString()
	c.Logger.InfoContext(r.Context(), "stream opened", "event_id", eventID, "client_id", clientID)
	defer c.Logger.InfoContext(r.Context(), "stream closed", "event_id", eventID, "client_id", clientID)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	send := func() error {
		participants, err := c.Registrations.ListParticipants(r.Context(), eventID)
		if err != nil {
			return err
		}
		return writeSSE(w, flusher, "participants:update", participantsUpdate{
			EventID:      eventID,
			Count:        count,
			Participants: participants,
		})
	}

	// Initial snapshot.
	if err := send(); err != nil {
		c.Logger.ErrorContext(r.Context(), "stream send failed", "event_id", eventID, "client_id", clientID, "err", err)
		return
	}

	lastCount := count
	ticker := time.NewTicker(c.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			count, err = c.Registrations.CountParticipants(r.Context(), eventID)
			if err != nil {
				c.Logger.ErrorContext(r.Context(), "stream poll failed", "event_id", eventID, "client_id", clientID, "err", err)
				_ = writeSSE(w, flusher, "error", map[string]string{"message": "stream terminated"})
				return
			}
			if count == lastCount {
				if err := writeSSE(w, flusher, "heartbeat", map[string]string{"client_id": clientID}); err != nil {
					return
				}
				continue
			}
			lastCount = count
			if err := send(); err != nil {
				c.Logger.ErrorContext(r.Context(), "stream send failed", "event_id", eventID, "client_id", clientID, "err", err)
				_ = writeSSE(w, flusher, "error", map[string]string{"message": "stream terminated"})
				return
			}
		}
	}
}
