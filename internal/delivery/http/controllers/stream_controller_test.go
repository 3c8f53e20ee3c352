package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gameonbaby/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamController_EventNotFound(t *testing.T) {
	fake := &fakeRegistrationService{countErr: domain.ErrNotFound}
	ctrl := NewStreamController(testLogger, fake, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/api/events/ev-missing/stream", nil)
	req.SetPathValue("eventID", "ev-missing")
	rr := httptest.NewRecorder()

	ctrl.Stream(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), domain.CodeEventNotFound)
}

func TestStreamController_InitialSnapshot(t *testing.T) {
	fake := &fakeRegistrationService{
		countResults: []int{2},
		listResult: []*domain.RegistrationWithPayment{
			{Registration: domain.Registration{ID: "reg-1", EventID: "ev-1"}},
			{Registration: domain.Registration{ID: "reg-2", EventID: "ev-1"}},
		},
	}
	ctrl := NewStreamController(testLogger, fake, time.Minute)

	// A pre-cancelled context lets the stream emit its initial snapshot and
	// terminate on the first select.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/events/ev-1/stream", nil).WithContext(ctx)
	req.SetPathValue("eventID", "ev-1")
	rr := httptest.NewRecorder()

	ctrl.Stream(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "event: participants:update")
	assert.Contains(t, body, `"count":2`)
	assert.Contains(t, body, `"reg-1"`)
}

func TestStreamController_EmitsUpdateOnCountChange(t *testing.T) {
	fake := &fakeRegistrationService{
		countResults: []int{1, 2},
		listResult: []*domain.RegistrationWithPayment{
			{Registration: domain.Registration{ID: "reg-1", EventID: "ev-1"}},
		},
	}
	ctrl := NewStreamController(testLogger, fake, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/events/ev-1/stream", nil).WithContext(ctx)
	req.SetPathValue("eventID", "ev-1")
	rr := httptest.NewRecorder()

	ctrl.Stream(rr, req)

	body := rr.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event: participants:update"), "initial snapshot plus one change")
	assert.Contains(t, body, "event: heartbeat", "unchanged polls emit heartbeats")
	assert.NotContains(t, body, "event: error")
}
