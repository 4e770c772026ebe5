package errors

import (
	"fmt"
	"net/http"
)

type ApiError struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
	Raw       string `json:"raw,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

var (
	ErrBadRequest       = func(detail string) *ApiError { return New(http.StatusBadRequest, "Bad Request", detail) }
	ErrNotFound         = func(detail string) *ApiError { return New(http.StatusNotFound, "Not Found", detail) }
	ErrMethodNotAllowed = func(detail string) *ApiError { return New(http.StatusMethodNotAllowed, "Method Not Allowed", detail) }
	ErrInternalServer   = func(detail string) *ApiError {
		return New(http.StatusInternalServerError, "Internal Server Error", detail)
	}
	ErrLLMUnavailable = func(detail string) *ApiError {
		return New(http.StatusBadGateway, "Generation Request Failed", detail)
	}
	ErrLLMContract = func(detail string) *ApiError {
		return New(http.StatusBadGateway, "Malformed Generation Response", detail)
	}
)

func New(code int, message, detail string) *ApiError {
	return &ApiError{
		Code:    code,
		Message: message,
		Detail:  detail,
	}
}

func (e *ApiError) WithRequestID(requestID string) *ApiError {
	e.RequestID = requestID
	return e
}

// WithRaw attaches the unparseable model output so the client can show it
// for inspection.
func (e *ApiError) WithRaw(raw string) *ApiError {
	e.Raw = raw
	return e
}

func (e *ApiError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func (e *ApiError) StatusCode() int {
	return e.Code
}

// TransportError wraps any failure reaching the completion endpoint:
// network, quota, auth. The request is never retried automatically.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "generation request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports an analyze-mode response that was not a valid JSON
// object. Raw always holds the model output unchanged.
type DecodeError struct {
	Reason string
	Raw    string
}

func (e *DecodeError) Error() string {
	return "response decode failed: " + e.Reason
}

// ExtractionError reports an uploaded document that produced no usable
// text.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "text extraction failed: " + e.Reason
}
