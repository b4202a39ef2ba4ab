package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/crewhive/crewhive/internal/client/api"
)

// CalendarHandler serves events and shifts from the generated demo dataset
// plus whatever the session has created. It speaks the same wire shapes the
// mobile clients consume.
type CalendarHandler struct {
	logger   *zap.Logger
	data     api.Client
	validate *validator.Validate
}

func NewCalendarHandler(data api.Client, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		logger:   logger,
		data:     data,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *CalendarHandler) EventRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListEvents)
	r.Post("/", h.CreateEvent)
	r.Patch("/{id}", h.PatchEvent)
	r.Delete("/{id}", h.DeleteEvent)
	return r
}

func (h *CalendarHandler) ShiftRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListShifts)
	r.Post("/", h.CreateShift)
	r.Patch("/{id}", h.PatchShift)
	r.Delete("/{id}", h.DeleteShift)
	return r
}

type createEventRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=64"`
	Description    string  `json:"description" validate:"max=256"`
	StartTime      string  `json:"startTime" validate:"required"`
	EndTime        string  `json:"endTime" validate:"required"`
	Color          string  `json:"color" validate:"omitempty,max=32"`
	EventType      string  `json:"eventType" validate:"omitempty,max=32"`
	ParticipantIDs []int64 `json:"participantIds" validate:"omitempty,dive,gt=0"`
}

type createShiftRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=32"`
	Description string `json:"description" validate:"max=256"`
	StartTime   string `json:"startTime" validate:"required"`
	EndTime     string `json:"endTime" validate:"required"`
	Color       string `json:"color" validate:"omitempty,max=32"`
}

func (h *CalendarHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	from, to, ok := rangeParams(w, r)
	if !ok {
		return
	}
	events, err := h.data.Events(r.Context(), from, to)
	if err != nil {
		h.internal(w, "list events", err)
		return
	}
	WriteJSON(w, http.StatusOK, events)
}

func (h *CalendarHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if !decodeStrict(w, r, h.validate, &req) {
		return
	}
	if !timesParse(w, req.StartTime, req.EndTime) {
		return
	}

	event, err := h.data.CreateEvent(r.Context(), api.CreateEventRequest{
		Name: req.Name, Description: req.Description,
		StartTime: req.StartTime, EndTime: req.EndTime,
		Color: req.Color, EventType: req.EventType,
		ParticipantIDs: req.ParticipantIDs,
	})
	if err != nil {
		h.internal(w, "create event", err)
		return
	}
	WriteJSON(w, http.StatusCreated, event)
}

func (h *CalendarHandler) PatchEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req createEventRequest
	if !decodeStrict(w, r, h.validate, &req) {
		return
	}
	if !timesParse(w, req.StartTime, req.EndTime) {
		return
	}

	event, err := h.data.PatchEvent(r.Context(), id, api.PatchEventRequest{
		Name: req.Name, Description: req.Description,
		StartTime: req.StartTime, EndTime: req.EndTime,
		Color: req.Color, EventType: req.EventType,
		ParticipantIDs: req.ParticipantIDs,
	})
	if err != nil {
		h.notFoundOrInternal(w, "patch event", err)
		return
	}
	WriteJSON(w, http.StatusOK, event)
}

func (h *CalendarHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.data.DeleteEvent(r.Context(), id); err != nil {
		h.notFoundOrInternal(w, "delete event", err)
		return
	}
	WriteJSON(w, http.StatusNoContent, nil)
}

func (h *CalendarHandler) ListShifts(w http.ResponseWriter, r *http.Request) {
	from, to, ok := rangeParams(w, r)
	if !ok {
		return
	}
	shifts, err := h.data.Shifts(r.Context(), from, to)
	if err != nil {
		h.internal(w, "list shifts", err)
		return
	}
	WriteJSON(w, http.StatusOK, shifts)
}

func (h *CalendarHandler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req createShiftRequest
	if !decodeStrict(w, r, h.validate, &req) {
		return
	}
	if !timesParse(w, req.StartTime, req.EndTime) {
		return
	}

	shift, err := h.data.CreateShift(r.Context(), api.CreateShiftRequest{
		Name: req.Name, Description: req.Description,
		StartTime: req.StartTime, EndTime: req.EndTime, Color: req.Color,
	})
	if err != nil {
		h.internal(w, "create shift", err)
		return
	}
	WriteJSON(w, http.StatusCreated, shift)
}

func (h *CalendarHandler) PatchShift(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req createShiftRequest
	if !decodeStrict(w, r, h.validate, &req) {
		return
	}
	if !timesParse(w, req.StartTime, req.EndTime) {
		return
	}

	shift, err := h.data.PatchShift(r.Context(), id, api.PatchShiftRequest{
		Name: req.Name, Description: req.Description,
		StartTime: req.StartTime, EndTime: req.EndTime, Color: req.Color,
	})
	if err != nil {
		h.notFoundOrInternal(w, "patch shift", err)
		return
	}
	WriteJSON(w, http.StatusOK, shift)
}

func (h *CalendarHandler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.data.DeleteShift(r.Context(), id); err != nil {
		h.notFoundOrInternal(w, "delete shift", err)
		return
	}
	WriteJSON(w, http.StatusNoContent, nil)
}

func (h *CalendarHandler) internal(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op, zap.Error(err))
	WriteError(w, http.StatusInternalServerError, ErrorBody{
		Code: CodeInternal, Message: "internal server error",
	})
}

// notFoundOrInternal maps a missing-entry failure from the data layer to 404
// and everything else to 500.
func (h *CalendarHandler) notFoundOrInternal(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, api.ErrConflict) {
		WriteError(w, http.StatusNotFound, ErrorBody{Code: CodeNotFound, Message: "no such entry"})
		return
	}
	h.internal(w, op, err)
}

// rangeParams parses the from/to query pair. Both are required RFC3339
// offset date-times and from must precede to.
func rangeParams(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	from, err1 := time.Parse(time.RFC3339, r.URL.Query().Get("from"))
	to, err2 := time.Parse(time.RFC3339, r.URL.Query().Get("to"))
	if err1 != nil || err2 != nil || !from.Before(to) {
		WriteError(w, http.StatusBadRequest, ErrorBody{
			Code: CodeValidationFailed, Message: "from and to must be RFC3339 date-times with from < to",
		})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func timesParse(w http.ResponseWriter, startISO, endISO string) bool {
	_, err1 := time.Parse(time.RFC3339, startISO)
	_, err2 := time.Parse(time.RFC3339, endISO)
	if err1 != nil || err2 != nil {
		WriteError(w, http.StatusUnprocessableEntity, ErrorBody{
			Code: CodeValidationFailed, Message: "startTime and endTime must be RFC3339 date-times",
		})
		return false
	}
	return true
}

func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, ErrorBody{
			Code: CodeValidationFailed, Message: "id must be numeric",
		})
		return 0, false
	}
	return id, true
}
