package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"termine-api/internal/schedule"
	"termine-api/internal/service"
	"termine-api/internal/store"
)

// HTTPError is an error with the status code and body it is answered with.
type HTTPError struct {
	Code      int
	Message   string
	Fields    map[string]string
	Conflicts []conflict
}

type conflict struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (e *HTTPError) Error() string { return e.Message }

func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	ErrNotFound   = NewHTTPError(http.StatusNotFound, "not found")
)

// body is the JSON error document.
func (e *HTTPError) body() map[string]any {
	b := map[string]any{"error": e.Message}
	if len(e.Fields) > 0 {
		b["fields"] = e.Fields
	}
	if len(e.Conflicts) > 0 {
		b["conflicts"] = e.Conflicts
	}
	return b
}

// toHTTPError maps service and validator errors onto status codes. The bool
// is false for unexpected errors, which are answered with a generic 500.
func toHTTPError(err error) (*HTTPError, bool) {
	var (
		he  *HTTPError
		ve  *service.ValidationError
		ord *schedule.OrderingError
		ovl *schedule.OverlapError
	)
	switch {
	case errors.As(err, &he):
		return he, true
	case errors.As(err, &ve):
		fields := make(map[string]string)
		for _, f := range ve.Fields() {
			fields[f.Field] = f.Message
		}
		return &HTTPError{Code: http.StatusBadRequest, Message: ve.Error(), Fields: fields}, true
	case errors.As(err, &ord):
		return ErrBadRequest(ord.Error()), true
	case errors.As(err, &ovl):
		he := NewHTTPError(http.StatusConflict, ovl.Error())
		for _, c := range ovl.Conflicts {
			he.Conflicts = append(he.Conflicts, conflict{ID: c.ID, Start: c.Start, End: c.End})
		}
		return he, true
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound, true
	case errors.Is(err, schedule.ErrSourceUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, "existing appointments could not be read"), true
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return NewHTTPError(http.StatusServiceUnavailable, "request cancelled"), true
	}
	return NewHTTPError(http.StatusInternalServerError, "internal error"), false
}
