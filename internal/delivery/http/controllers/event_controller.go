package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventsportal/internal/delivery/http/helpers"
	"eventsportal/internal/delivery/http/middleware"
	"eventsportal/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Name        string    `json:"name" example:"GopherCon"`
	Date        time.Time `json:"date" example:"2025-06-01T09:00:00Z"`
	Description string    `json:"description,omitempty"`
	Place       string    `json:"place,omitempty" example:"Madrid"`
}

// Validate implements Validator. Name and date rules live in the service.
func (c CreateEventRequest) Validate() []string { return nil }

func (c CreateEventRequest) input() domain.EventInput {
	return domain.EventInput{Name: c.Name, Date: c.Date, Description: c.Description, Place: c.Place}
}

// UpdateEventRequest is the request body for PUT /events/{id}. Omitted fields are left untouched.
type UpdateEventRequest struct {
	Name        *string    `json:"name,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Description *string    `json:"description,omitempty"`
	Place       *string    `json:"place,omitempty"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	if u.Name == nil && u.Date == nil && u.Description == nil && u.Place == nil {
		return []string{"at least one field is required"}
	}
	return nil
}

func (u UpdateEventRequest) patch() domain.EventPatch {
	return domain.EventPatch{Name: u.Name, Date: u.Date, Description: u.Description, Place: u.Place}
}

// EventSuccessResponse is the success envelope for single-event responses.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success envelope for GET /events without simple=true.
type EventListSuccessResponse struct {
	Data  []domain.Event    `json:"data"`
	Error *helpers.APIError `json:"error"`
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

// ListEvents godoc
// @Summary List events
// @Description Lists events matching the optional filters. name and place are case-insensitive substring matches; the date range is inclusive. With simple=true the body is a bare array instead of the envelope.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param simple query bool false "Return a bare JSON array"
// @Param name query string false "Name contains"
// @Param place query string false "Place contains"
// @Param startDate query string false "Earliest date (RFC 3339)"
// @Param endDate query string false "Latest date (RFC 3339)"
// @Param sortBy query string false "name, date or createdAt" default(date)
// @Param sortOrder query string false "ASC or DESC" default(ASC)
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	filters, simple, err := helpers.ParseEventFilters(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	events, err := c.Service.List(r.Context(), filters)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	if simple {
		helpers.WriteJSON(w, http.StatusOK, events)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	event, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Name and date are required; id and timestamps are server-generated.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), req.input())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	userID, _ := middleware.SessionUserID(r.Context())
	c.Logger.InfoContext(r.Context(), "event created", "event_id", event.ID, "user_id", userID)
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Applies only the supplied fields. An empty description or place clears it.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Update(r.Context(), id, req.patch())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 204 "No content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
