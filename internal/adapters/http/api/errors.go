package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/okian/scout/internal/adapters/dataset"
	"github.com/okian/scout/internal/adapters/repository"
	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/profile"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
)

// Error records the handler operation that failed, the error kind used for
// classification and the underlying cause.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Kind != nil {
		b.WriteString(": ")
		b.WriteString(e.Kind.Error())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// WrapKind attaches op and kind to err.
func WrapKind(op string, kind, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Wrap attaches op to err.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// classify maps an error to an HTTP status and a stable error code.
func classify(err error) (int, string) {
	var tooBig *http.MaxBytesError
	switch {
	case errors.Is(err, profile.ErrUnknownRole):
		return http.StatusNotFound, "unknown_role"
	case errors.Is(err, profile.ErrUnknownLanguage):
		return http.StatusBadRequest, "unknown_language"
	case errors.Is(err, service.ErrInvalidTopN):
		return http.StatusBadRequest, "invalid_top_n"
	case errors.Is(err, filter.ErrUnknownScope):
		return http.StatusBadRequest, "unknown_scope"
	case errors.Is(err, model.ErrUnknownIdentityKey):
		return http.StatusBadRequest, "unknown_identity_key"
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, repository.ErrNoDataset):
		return http.StatusServiceUnavailable, "no_dataset"
	case errors.Is(err, dataset.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType, "unsupported_format"
	case errors.As(err, &tooBig), errors.Is(err, dataset.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, "too_large"
	case errors.Is(err, dataset.ErrMissingColumn), errors.Is(err, dataset.ErrEmptyDataset), errors.Is(err, dataset.ErrParse):
		return http.StatusUnprocessableEntity, "invalid_dataset"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// fail writes err with its classified status.
func fail(w http.ResponseWriter, err error) {
	status, code := classify(err)
	writeError(w, status, code, err)
}
