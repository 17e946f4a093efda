package http

import (
	"errors"
	"net/http"

	"exphub/internal/domain"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorBody `json:"error"`
}

func mappingDomainErrors(err error) (int, ErrorResponse) {
	var code string
	var status int

	switch {
	case errors.Is(err, domain.ErrInvalidPayload):
		status = http.StatusBadRequest
		code = "INVALID_PAYLOAD"

	case errors.Is(err, domain.ErrProjectNotFound):
		status = http.StatusNotFound
		code = "PROJECT_NOT_FOUND"

	case errors.Is(err, domain.ErrIssueNotFound):
		status = http.StatusNotFound
		code = "ISSUE_NOT_FOUND"

	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"

	case errors.Is(err, domain.ErrUpstreamUnavailable):
		// The webhook contract exposes upstream trouble as an internal
		// failure, not a client error.
		status = http.StatusInternalServerError
		code = "UPSTREAM_UNAVAILABLE"

	default:
		status = http.StatusInternalServerError
		code = "INTERNAL"
	}

	return status, ErrorResponse{
		Error: errorBody{
			Code:    code,
			Message: err.Error(),
		},
	}
}
