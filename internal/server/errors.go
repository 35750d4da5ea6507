package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/extraction"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/ingestion"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/interview"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/validation"
)

// ErrNotFound indicates a profile or interview session id is unknown.
type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrBadRequest indicates a malformed or invalid request body.
type ErrBadRequest struct {
	Message string
	Cause   error
}

func (e *ErrBadRequest) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ErrBadRequest) Unwrap() error { return e.Cause }

// HTTPStatus maps an error to the HTTP status code it should produce.
//
// Validation failures of model output are 422: the request was fine, the
// extracted record was not. Provider and fetch failures are 502: something
// upstream broke.
func HTTPStatus(err error) int {
	var (
		notFound   *ErrNotFound
		badRequest *ErrBadRequest
		stateErr   *interview.StateError
		valErr     *validation.ValidationError
		schemaErr  *validation.SchemaError
		apiErr     *extraction.APICallError
		callErr    *interview.CallError
		docErr     *ingestion.DocumentError
		fetchErr   *ingestion.FetchError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &badRequest), errors.As(err, &docErr), errors.As(err, &stateErr):
		return http.StatusBadRequest
	case errors.As(err, &valErr), errors.As(err, &schemaErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &apiErr), errors.As(err, &callErr), errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
