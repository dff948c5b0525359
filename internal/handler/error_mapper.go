package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/forgo/retreats/api/internal/model"
)

// ErrInvalidParameter marks a malformed query or path parameter
var ErrInvalidParameter = errors.New("invalid parameter")

// parameterError names the offending parameter
type parameterError struct {
	Name   string
	Value  string
	Reason string
}

func (e *parameterError) Error() string {
	return fmt.Sprintf("%s: %q %s", e.Name, e.Value, e.Reason)
}

func (e *parameterError) Unwrap() error {
	return ErrInvalidParameter
}

// MapError converts a handler error to a ProblemDetails response.
// Catalog lookups never fail, so only request parsing errors reach here
// in practice; anything else is reported as an internal error.
func MapError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	var perr *parameterError
	switch {
	case errors.As(err, &perr):
		problem := model.NewBadRequestError(perr.Error())
		problem.Errors = []model.FieldError{{Field: perr.Name, Message: perr.Reason}}
		return problem
	case errors.Is(err, ErrInvalidParameter):
		return model.NewBadRequestError(err.Error())
	}

	slog.Error("unmapped handler error", slog.String("error", err.Error()))
	return model.NewInternalError("")
}

// parseInt reads an optional integer query parameter.
// A missing parameter returns nil.
func parseInt(name, raw string, minValue int) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &parameterError{Name: name, Value: raw, Reason: "must be an integer"}
	}
	if n < minValue {
		return nil, &parameterError{Name: name, Value: raw, Reason: fmt.Sprintf("must be at least %d", minValue)}
	}
	return &n, nil
}

// parseBool reads an optional boolean query parameter
func parseBool(name, raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &parameterError{Name: name, Value: raw, Reason: "must be true or false"}
	}
	return b, nil
}
