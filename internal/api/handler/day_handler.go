package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/vitals-tracker/internal/api/validation"
	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/blaisecz/vitals-tracker/internal/service"
	"github.com/blaisecz/vitals-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ingest bodies carry up to ten thousand readings.
const maxIngestBodyBytes = 4 << 20

type DayHandler struct {
	service service.DailyService
	log     *zap.Logger
}

func NewDayHandler(service service.DailyService, log *zap.Logger) *DayHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DayHandler{service: service, log: log}
}

// dayParams reads {userId} and {date}, writing a 400 on failure.
func dayParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, string, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return uuid.Nil, "", false
	}
	date := chi.URLParam(r, "date")
	if _, err := domain.ParseDate(date); err != nil {
		problem.BadRequest("Date must be formatted as YYYY-MM-DD").WithInstance(r).Write(w)
		return uuid.Nil, "", false
	}
	return userID, date, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxIngestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			problem.PayloadTooLarge("Request body exceeds 4 MiB").WithInstance(r).Write(w)
			return false
		}
		problem.BadRequest("Invalid JSON body").WithInstance(r).Write(w)
		return false
	}
	return true
}

func (h *DayHandler) writeError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("User or reading not found").WithInstance(r).Write(w)
	case errors.Is(err, domain.ErrInvalidDate), errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).WithInstance(r).Write(w)
	default:
		h.log.Error(action+" failed", zap.String("path", r.URL.Path), zap.Error(err))
		problem.InternalError("Failed to " + action).WithInstance(r).Write(w)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Ingest handles POST /v1/users/{userId}/days/{date}/readings
// @Summary Ingest readings
// @Description Buffer a batch of quantity readings, sleep segments and cached aggregates into one calendar day. Readings already buffered are counted as duplicates.
// @Tags days
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param date path string true "Calendar day (YYYY-MM-DD)" example(2024-01-15)
// @Param request body domain.IngestReadingsRequest true "Readings batch"
// @Success 200 {object} domain.IngestResult
// @Failure 400 {object} problem.Problem "Invalid path or body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 413 {object} problem.Problem "Body too large"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/days/{date}/readings [post]
func (h *DayHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	userID, date, ok := dayParams(w, r)
	if !ok {
		return
	}

	var req domain.IngestReadingsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).WithInstance(r).Write(w)
		return
	}

	result, err := h.service.Ingest(r.Context(), userID, date, &req)
	if err != nil {
		h.writeError(w, r, err, "ingest readings")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Deletions handles POST /v1/users/{userId}/days/{date}/deletions
// @Summary Prune deleted readings
// @Description Remove every buffered reading whose ID was deleted at the source. Cached aggregates are left as they are.
// @Tags days
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param date path string true "Calendar day (YYYY-MM-DD)" example(2024-01-15)
// @Param request body domain.DeletionsRequest true "Deleted source IDs"
// @Success 200 {object} domain.DeletionsResponse
// @Failure 400 {object} problem.Problem "Invalid path or body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation error"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/days/{date}/deletions [post]
func (h *DayHandler) Deletions(w http.ResponseWriter, r *http.Request) {
	userID, date, ok := dayParams(w, r)
	if !ok {
		return
	}

	var req domain.DeletionsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).WithInstance(r).Write(w)
		return
	}

	changed, err := h.service.PruneDeleted(r.Context(), userID, date, req.IDs)
	if err != nil {
		h.writeError(w, r, err, "prune readings")
		return
	}

	writeJSON(w, http.StatusOK, domain.DeletionsResponse{Changed: changed})
}

// RemoveReading handles DELETE /v1/users/{userId}/days/{date}/readings/{readingId}
// @Summary Remove one reading
// @Tags days
// @Param userId path string true "User UUID" format(uuid)
// @Param date path string true "Calendar day (YYYY-MM-DD)" example(2024-01-15)
// @Param readingId path string true "Source reading ID"
// @Success 204 "Reading removed"
// @Failure 400 {object} problem.Problem "Invalid path"
// @Failure 404 {object} problem.Problem "User or reading not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/days/{date}/readings/{readingId} [delete]
func (h *DayHandler) RemoveReading(w http.ResponseWriter, r *http.Request) {
	userID, date, ok := dayParams(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveReading(r.Context(), userID, date, chi.URLParam(r, "readingId")); err != nil {
		h.writeError(w, r, err, "remove reading")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary handles GET /v1/users/{userId}/days/{date}/summary
// @Summary Daily summary
// @Description Aggregate the day's readings into HRV, nocturnal and resting heart rate, sleep, respiratory rate and steps. Metrics missing for the day are carried forward from the latest earlier summary and flagged in "imputed".
// @Tags days
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param date path string true "Calendar day (YYYY-MM-DD)" example(2024-01-15)
// @Success 200 {object} domain.SummaryResponse
// @Failure 400 {object} problem.Problem "Invalid path"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/days/{date}/summary [get]
func (h *DayHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, date, ok := dayParams(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summarize(r.Context(), userID, date)
	if err != nil {
		h.writeError(w, r, err, "summarize day")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// ListSummaries handles GET /v1/users/{userId}/summaries
// @Summary List daily summaries
// @Description Fetch stored summaries, newest first, optionally bounded by date.
// @Tags days
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "First day (YYYY-MM-DD), inclusive" example(2024-01-01)
// @Param to query string false "Last day (YYYY-MM-DD), inclusive" example(2024-01-31)
// @Param limit query integer false "Results per page (1-92)" default(14) minimum(1) maximum(92)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SummaryListResponse
// @Failure 400 {object} problem.Problem "Invalid cursor or range"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/summaries [get]
func (h *DayHandler) ListSummaries(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").WithInstance(r).Write(w)
		return
	}

	filter, fieldErrors := parseSummaryFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).WithInstance(r).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		h.writeError(w, r, err, "list summaries")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func parseSummaryFilter(r *http.Request) (domain.SummaryFilter, []problem.FieldError) {
	var filter domain.SummaryFilter
	var fieldErrors []problem.FieldError
	q := r.URL.Query()

	for _, p := range []struct {
		name string
		dst  *string
	}{{"from", &filter.From}, {"to", &filter.To}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		if _, err := domain.ParseDate(v); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   p.name,
				Message: "must be a date formatted as YYYY-MM-DD",
			})
			continue
		}
		*p.dst = v
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = q.Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
