package http

import (
	"errors"
	"net/http"
	"strconv"

	"advising-backend/internal/domain/record"
	"advising-backend/internal/domain/student"
	"advising-backend/internal/usecase/advising"
	"advising-backend/internal/usecase/review"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type RecordHandler struct {
	advising *advising.Usecase
	review   *review.Usecase
	log      zerolog.Logger
}

func NewRecordHandler(adv *advising.Usecase, rev *review.Usecase, log zerolog.Logger) *RecordHandler {
	return &RecordHandler{advising: adv, review: rev, log: log.With().Str("component", "record_handler").Logger()}
}

type createEntryReq struct {
	Email       string  `json:"email"       validate:"required,email"`
	LastTerm    string  `json:"lastTerm"    validate:"required,term"`
	LastGPA     float64 `json:"lastGPA"     validate:"gte=0,lte=4"`
	CurrentTerm string  `json:"currentTerm" validate:"required,term"`
	// selectedItems1 are prerequisite IDs, selectedItems2 course IDs —
	// the field names the submission form has always used.
	SelectedItems1 []int64 `json:"selectedItems1"`
	SelectedItems2 []int64 `json:"selectedItems2"`
}

// CreateEntry handles POST /records/create-entry.
func (h *RecordHandler) CreateEntry(c echo.Context) error {
	var req createEntryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"message": "Invalid request payload",
			"details": ToFieldErrors(err),
		})
	}

	_, err := h.advising.CreateEntry(c.Request().Context(), advising.CreateEntryInput{
		Email:       req.Email,
		LastTerm:    req.LastTerm,
		LastGPA:     req.LastGPA,
		CurrentTerm: req.CurrentTerm,
		PrereqIDs:   req.SelectedItems1,
		CourseIDs:   req.SelectedItems2,
	})
	if err != nil {
		var conflict *advising.ConflictError
		switch {
		case errors.As(err, &conflict):
			return c.JSON(http.StatusBadRequest, conflictBody(conflict))
		case errors.Is(err, advising.ErrEmailRequired), errors.Is(err, advising.ErrTermRequired):
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		default:
			h.log.Error().Err(err).Str("email", req.Email).Msg("create entry failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create entry"})
		}
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Entry created successfully"})
}

func conflictBody(conflict *advising.ConflictError) map[string]any {
	body := map[string]any{}
	if len(conflict.Courses) > 0 {
		body["message"] = "Cannot create entry. The following courses are already scheduled in other terms:"
		body["conflictingCourses"] = conflict.Courses
	}
	if len(conflict.Prereqs) > 0 {
		if _, ok := body["message"]; !ok {
			body["message"] = "Cannot create entry. The following prerequisites are already scheduled in other terms:"
		}
		body["conflictingPrereqs"] = conflict.Prereqs
	}
	return body
}

// ListRecords handles GET /records. All records, or one student's when
// ?email= is present. No rows is an empty array, not an error.
func (h *RecordHandler) ListRecords(c echo.Context) error {
	email := c.QueryParam("email")
	rows, err := h.advising.ListRecords(c.Request().Context(), email)
	if err != nil {
		h.log.Error().Err(err).Msg("list records failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch records"})
	}
	if rows == nil {
		rows = []record.AdvisingRecord{}
	}
	return c.JSON(http.StatusOK, rows)
}

// StudentInfo handles GET /records/student-info.
func (h *RecordHandler) StudentInfo(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email is required"})
	}
	advisingID, err := strconv.ParseInt(c.QueryParam("advisingID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "A valid advisingID is required"})
	}

	dto, err := h.advising.StudentInfo(c.Request().Context(), email, advisingID)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Student not found"})
		}
		h.log.Error().Err(err).Str("email", email).Msg("student info lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error retrieving student information"})
	}
	return c.JSON(http.StatusOK, dto)
}

// PreviousCourses handles GET /records/previous-courses. The empty-result
// shape (200 with message + empty list) is kept for wire compatibility
// with the existing client.
func (h *RecordHandler) PreviousCourses(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email is required"})
	}

	courses, err := h.advising.PreviousCourses(c.Request().Context(), email)
	if err != nil {
		h.log.Error().Err(err).Str("email", email).Msg("previous courses lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch previous courses"})
	}
	if len(courses) == 0 {
		return c.JSON(http.StatusOK, map[string]any{
			"message": "No previously taken courses found.",
			"courses": []record.CourseSelection{},
		})
	}
	return c.JSON(http.StatusOK, courses)
}

// UpdateRecords handles POST /records: direct status/rejectReason writes
// keyed by advisingID, no notifications.
func (h *RecordHandler) UpdateRecords(c echo.Context) error {
	var body map[string]review.FieldUpdate
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request payload"})
	}

	updates, err := keyedByAdvisingID(body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Record keys must be numeric advising IDs"})
	}
	if err := h.review.BulkUpdate(c.Request().Context(), updates); err != nil {
		h.log.Error().Err(err).Msg("bulk record update failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update records"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Entries updated successfully"})
}

type updateStatusReq struct {
	Updates map[string]review.StatusUpdate `json:"updates"`
}

// UpdateStatus handles POST /records/update-status: applies each
// accepted/rejected decision and emails the student.
func (h *RecordHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request payload"})
	}

	updates, err := keyedByAdvisingID(req.Updates)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Update keys must be numeric advising IDs"})
	}
	if err := h.review.ApplyStatusUpdates(c.Request().Context(), updates); err != nil {
		h.log.Error().Err(err).Msg("status update failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update entries"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Entries updated and emails sent successfully"})
}

// keyedByAdvisingID converts JSON object keys (always strings) to int64 ids.
func keyedByAdvisingID[T any](in map[string]T) (map[int64]T, error) {
	out := make(map[int64]T, len(in))
	for k, v := range in {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return nil, err
		}
		out[id] = v
	}
	return out, nil
}
