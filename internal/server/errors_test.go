package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/extraction"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/ingestion"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/interview"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/validation"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &ErrNotFound{Kind: "profile", ID: "x"}, http.StatusNotFound},
		{"bad request", &ErrBadRequest{Message: "invalid"}, http.StatusBadRequest},
		{"unreadable document", &ingestion.DocumentError{Filename: "r.pdf"}, http.StatusBadRequest},
		{"model output invalid", &validation.ValidationError{Schema: "ResumeProfile"}, http.StatusUnprocessableEntity},
		{"model output malformed", &validation.SchemaError{Schema: "ResumeProfile"}, http.StatusUnprocessableEntity},
		{"provider down", &extraction.APICallError{Message: "call failed"}, http.StatusBadGateway},
		{"interview call failed", &interview.CallError{Message: "turn failed"}, http.StatusBadGateway},
		{"interview wrong state", &interview.StateError{Status: "finished", Op: "reply"}, http.StatusBadRequest},
		{"posting fetch failed", &ingestion.FetchError{URL: "https://x.test"}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
