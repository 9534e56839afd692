package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventsportal/internal/delivery/http/helpers"
	"eventsportal/internal/domain"
	"eventsportal/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events      []domain.Event
	event       *domain.Event
	err         error
	lastFilters domain.EventFilters
	lastID      int64
	lastInput   domain.EventInput
	lastPatch   domain.EventPatch
}

func (f *fakeEventService) List(_ context.Context, filters domain.EventFilters) ([]domain.Event, error) {
	f.lastFilters = filters
	return f.events, f.err
}

func (f *fakeEventService) Get(_ context.Context, id int64) (*domain.Event, error) {
	f.lastID = id
	return f.event, f.err
}

func (f *fakeEventService) Create(_ context.Context, in domain.EventInput) (*domain.Event, error) {
	f.lastInput = in
	return f.event, f.err
}

func (f *fakeEventService) Update(_ context.Context, id int64, patch domain.EventPatch) (*domain.Event, error) {
	f.lastID = id
	f.lastPatch = patch
	return f.event, f.err
}

func (f *fakeEventService) Delete(_ context.Context, id int64) error {
	f.lastID = id
	return f.err
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	user      *domain.User
	token     string
	err       error
	lastReg   domain.Registration
	lastCreds domain.Credentials
}

func (f *fakeAuthService) Register(_ context.Context, r domain.Registration) (*domain.User, error) {
	f.lastReg = r
	return f.user, f.err
}

func (f *fakeAuthService) Login(_ context.Context, c domain.Credentials) (string, *domain.User, error) {
	f.lastCreds = c
	return f.token, f.user, f.err
}

var sampleEvent = domain.Event{
	ID:    3,
	Name:  "GopherCon",
	Date:  time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	Place: "Madrid",
}

// serve routes one request through a mux so PathValue is populated.
func serve(pattern string, handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, handler)
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (json.RawMessage, *helpers.APIError) {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env.Data, env.Error
}

func TestEventController_ListEvents(t *testing.T) {
	t.Run("envelope with filters", func(t *testing.T) {
		svc := &fakeEventService{events: []domain.Event{sampleEvent}}
		c := NewEventController(testLogger, svc)
		rr := serve("GET /events", c.ListEvents, http.MethodGet, "/events?name=go&sortBy=name&sortOrder=DESC", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "go", svc.lastFilters.Name)
		assert.Equal(t, domain.SortByName, svc.lastFilters.SortBy)
		assert.Equal(t, domain.SortDesc, svc.lastFilters.SortOrder)

		data, apiErr := decodeEnvelope(t, rr)
		assert.Nil(t, apiErr)
		var events []domain.Event
		require.NoError(t, json.Unmarshal(data, &events))
		require.Len(t, events, 1)
		assert.Equal(t, "GopherCon", events[0].Name)
	})

	t.Run("simple returns bare array", func(t *testing.T) {
		svc := &fakeEventService{events: []domain.Event{sampleEvent}}
		c := NewEventController(testLogger, svc)
		rr := serve("GET /events", c.ListEvents, http.MethodGet, "/events?simple=true", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, strings.HasPrefix(strings.TrimSpace(rr.Body.String()), "["))
	})

	t.Run("bad sort field", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{})
		rr := serve("GET /events", c.ListEvents, http.MethodGet, "/events?sortBy=place", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		_, apiErr := decodeEnvelope(t, rr)
		require.NotNil(t, apiErr)
		assert.Equal(t, helpers.ErrCodeBadRequest, apiErr.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{err: errors.New("db down")})
		rr := serve("GET /events", c.ListEvents, http.MethodGet, "/events", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		_, apiErr := decodeEnvelope(t, rr)
		require.NotNil(t, apiErr)
		assert.Equal(t, helpers.ErrCodeInternalError, apiErr.Code)
		assert.NotContains(t, apiErr.Message, "db down")
	})
}

func TestEventController_GetEvent(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		svc        *fakeEventService
		wantStatus int
		wantCode   string
	}{
		{"found", "/events/3", &fakeEventService{event: &sampleEvent}, http.StatusOK, ""},
		{"not found", "/events/9", &fakeEventService{err: domain.ErrNotFound}, http.StatusNotFound, helpers.ErrCodeNotFound},
		{"bad id", "/events/abc", &fakeEventService{}, http.StatusBadRequest, helpers.ErrCodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEventController(testLogger, tt.svc)
			rr := serve("GET /events/{id}", c.GetEvent, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			data, apiErr := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			assert.Equal(t, int64(3), tt.svc.lastID)
			var ev domain.Event
			require.NoError(t, json.Unmarshal(data, &ev))
			assert.Equal(t, sampleEvent.ID, ev.ID)
		})
	}
}

func TestEventController_CreateEvent(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeEventService{event: &sampleEvent}
		c := NewEventController(testLogger, svc)
		body := `{"name":"GopherCon","date":"2025-06-01T09:00:00Z","place":"Madrid"}`
		rr := serve("POST /events", c.CreateEvent, http.MethodPost, "/events", body)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "GopherCon", svc.lastInput.Name)
		assert.Equal(t, "Madrid", svc.lastInput.Place)
		assert.True(t, svc.lastInput.Date.Equal(sampleEvent.Date))
	})

	t.Run("field errors become 400", func(t *testing.T) {
		svc := &fakeEventService{err: validation.FieldErrors{validation.FieldName: validation.MsgNameRequired}}
		c := NewEventController(testLogger, svc)
		rr := serve("POST /events", c.CreateEvent, http.MethodPost, "/events", `{"name":""}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		_, apiErr := decodeEnvelope(t, rr)
		require.NotNil(t, apiErr)
		assert.Equal(t, "name: Name is required", apiErr.Message)
	})

	t.Run("unknown field", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{})
		rr := serve("POST /events", c.CreateEvent, http.MethodPost, "/events", `{"name":"x","owner":"me"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestEventController_UpdateEvent(t *testing.T) {
	t.Run("partial patch", func(t *testing.T) {
		svc := &fakeEventService{event: &sampleEvent}
		c := NewEventController(testLogger, svc)
		rr := serve("PUT /events/{id}", c.UpdateEvent, http.MethodPut, "/events/3", `{"place":""}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(3), svc.lastID)
		assert.Nil(t, svc.lastPatch.Name)
		assert.Nil(t, svc.lastPatch.Date)
		require.NotNil(t, svc.lastPatch.Place)
		assert.Equal(t, "", *svc.lastPatch.Place)
	})

	t.Run("empty body", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{})
		rr := serve("PUT /events/{id}", c.UpdateEvent, http.MethodPut, "/events/3", `{}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{err: domain.ErrNotFound})
		rr := serve("PUT /events/{id}", c.UpdateEvent, http.MethodPut, "/events/3", `{"name":"x"}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestEventController_DeleteEvent(t *testing.T) {
	svc := &fakeEventService{}
	c := NewEventController(testLogger, svc)
	rr := serve("DELETE /events/{id}", c.DeleteEvent, http.MethodDelete, "/events/3", "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, int64(3), svc.lastID)

	svc.err = domain.ErrNotFound
	rr = serve("DELETE /events/{id}", c.DeleteEvent, http.MethodDelete, "/events/3", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAuthController_Register(t *testing.T) {
	tests := []struct {
		name       string
		svc        *fakeAuthService
		wantStatus int
		wantMsg    string
	}{
		{"created", &fakeAuthService{user: &domain.User{ID: "1", Name: "Ana", Email: "ana@example.com"}}, http.StatusCreated, ""},
		{"duplicate", &fakeAuthService{err: domain.ErrDuplicateEmail}, http.StatusBadRequest, "email already registered"},
		{"weak password", &fakeAuthService{err: validation.FieldErrors{validation.FieldPassword: validation.MsgPasswordDigit}}, http.StatusBadRequest, "password: " + validation.MsgPasswordDigit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAuthController(testLogger, tt.svc)
			body := `{"name":"Ana","email":"Ana@Example.com","password":"Secret1!"}`
			rr := serve("POST /auth/register", c.Register, http.MethodPost, "/auth/register", body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "Ana@Example.com", tt.svc.lastReg.Email)
			data, apiErr := decodeEnvelope(t, rr)
			if tt.wantMsg != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantMsg, apiErr.Message)
				return
			}
			var u domain.User
			require.NoError(t, json.Unmarshal(data, &u))
			assert.Equal(t, "1", u.ID)
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{token: "jwt", user: &domain.User{ID: "1", Email: "ana@example.com"}}
		c := NewAuthController(testLogger, svc)
		rr := serve("POST /auth/login", c.Login, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"Secret1!"}`)

		require.Equal(t, http.StatusOK, rr.Code)
		data, _ := decodeEnvelope(t, rr)
		var resp LoginResponse
		require.NoError(t, json.Unmarshal(data, &resp))
		assert.Equal(t, "jwt", resp.Token)
		assert.Equal(t, "Bearer", resp.TokenType)
		require.NotNil(t, resp.User)
		assert.Equal(t, "1", resp.User.ID)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		c := NewAuthController(testLogger, &fakeAuthService{err: domain.ErrInvalidCredentials})
		rr := serve("POST /auth/login", c.Login, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		_, apiErr := decodeEnvelope(t, rr)
		require.NotNil(t, apiErr)
		assert.Equal(t, "invalid credentials", apiErr.Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := &fakeAuthService{}
		c := NewAuthController(testLogger, svc)
		rr := serve("POST /auth/login", c.Login, http.MethodPost, "/auth/login", `{"email":""}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, svc.lastCreds.Email)
	})
}
