package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsportal/internal/adapters/httpclient"
	"eventsportal/internal/domain"
)

const eventJSON = `{"id":1,"name":"Launch","date":"2025-01-01T10:00:00Z","place":"Madrid","createdAt":"2024-12-01T00:00:00Z","updatedAt":"2024-12-01T00:00:00Z"}`

// recordingServer answers every request with status/body and remembers the last request.
type recordingServer struct {
	*httptest.Server
	method string
	path   string
	query  url.Values
	body   []byte
}

func newRecordingServer(t *testing.T, status int, body string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.method = r.Method
		rs.path = r.URL.Path
		rs.query = r.URL.Query()
		rs.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func newEventRepo(rs *recordingServer) domain.EventRepository {
	return NewEventRepository(httpclient.NewClient(rs.URL, nil, nil, nil))
}

func TestEventRepository_FindAll_NormalisesShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bare array", "[" + eventJSON + "]"},
		{"data envelope", `{"data":[` + eventJSON + `],"error":null}`},
	}

	var results [][]domain.Event
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := newRecordingServer(t, http.StatusOK, tt.body)
			events, err := newEventRepo(rs).FindAll(context.Background(), true, nil)
			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, int64(1), events[0].ID)
			assert.Equal(t, "Launch", events[0].Name)
			assert.Equal(t, "Madrid", events[0].Place)
			results = append(results, events)
		})
	}
	require.Len(t, results, 2)
	assert.Equal(t, results[0], results[1])
}

func TestEventRepository_FindAll_EmptyShapes(t *testing.T) {
	for _, body := range []string{`[]`, `{"data":[]}`, `{"data":null}`} {
		rs := newRecordingServer(t, http.StatusOK, body)
		events, err := newEventRepo(rs).FindAll(context.Background(), true, nil)
		require.NoError(t, err, body)
		assert.NotNil(t, events, body)
		assert.Empty(t, events, body)
	}
}

func TestEventRepository_FindAll_Query(t *testing.T) {
	rs := newRecordingServer(t, http.StatusOK, `[]`)
	filters := &domain.EventFilters{
		Name:      "conf",
		Place:     "Madrid",
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		SortBy:    domain.SortByName,
		SortOrder: domain.SortDesc,
	}
	_, err := newEventRepo(rs).FindAll(context.Background(), true, filters)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rs.method)
	assert.Equal(t, "/events", rs.path)
	assert.Equal(t, "true", rs.query.Get("simple"))
	assert.Equal(t, "conf", rs.query.Get("name"))
	assert.Equal(t, "Madrid", rs.query.Get("place"))
	assert.Equal(t, "2025-01-01T00:00:00Z", rs.query.Get("startDate"))
	assert.Equal(t, "2025-02-01T00:00:00Z", rs.query.Get("endDate"))
	assert.Equal(t, "name", rs.query.Get("sortBy"))
	assert.Equal(t, "DESC", rs.query.Get("sortOrder"))

	_, err = newEventRepo(rs).FindAll(context.Background(), false, &domain.EventFilters{})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"simple": {"false"}}, rs.query)
}

func TestEventRepository_FindByID(t *testing.T) {
	for _, body := range []string{eventJSON, `{"data":` + eventJSON + `}`} {
		rs := newRecordingServer(t, http.StatusOK, body)
		e, err := newEventRepo(rs).FindByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "/events/1", rs.path)
		assert.Equal(t, "Launch", e.Name)
		assert.Equal(t, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), e.Date.UTC())
	}

	rs := newRecordingServer(t, http.StatusNotFound, `{"error":{"code":"not_found","message":"event not found"}}`)
	_, err := newEventRepo(rs).FindByID(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepository_Create(t *testing.T) {
	rs := newRecordingServer(t, http.StatusCreated, eventJSON)
	in := domain.EventInput{Name: "Launch", Date: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}

	e, err := newEventRepo(rs).Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.ID)
	assert.Equal(t, http.MethodPost, rs.method)
	assert.Equal(t, "/events", rs.path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(rs.body, &sent))
	assert.Equal(t, map[string]any{"name": "Launch", "date": "2025-01-01T10:00:00Z"}, sent,
		"empty optional fields and server-owned fields must not be sent")
}

func TestEventRepository_Update_PartialBody(t *testing.T) {
	rs := newRecordingServer(t, http.StatusOK, eventJSON)
	place := "Madrid"

	_, err := newEventRepo(rs).Update(context.Background(), 1, domain.EventPatch{Place: &place})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rs.method)
	assert.Equal(t, "/events/1", rs.path)
	assert.JSONEq(t, `{"place":"Madrid"}`, string(rs.body))
}

func TestEventRepository_Delete(t *testing.T) {
	rs := newRecordingServer(t, http.StatusNoContent, ``)
	require.NoError(t, newEventRepo(rs).Delete(context.Background(), 5))
	assert.Equal(t, http.MethodDelete, rs.method)
	assert.Equal(t, "/events/5", rs.path)

	missing := newRecordingServer(t, http.StatusNotFound, `{"message":"Event with id 5 not found"}`)
	err := newEventRepo(missing).Delete(context.Background(), 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "Event with id 5 not found")
}
