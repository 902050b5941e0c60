// Package apperr defines the coded errors returned on the request/response
// boundary. Relay-path failures never use these; they are logged and dropped.
package apperr

import (
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeAuthRequired Code = "AUTH_REQUIRED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeNotFound     Code = "NOT_FOUND"
	CodeGateway      Code = "GATEWAY_FAILURE"
)

type Error struct {
	Code    Code   `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Status  int    `json:"-"`
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg, Status: http.StatusBadRequest}
}

func AuthRequired(msg string) *Error {
	return &Error{Code: CodeAuthRequired, Message: msg, Status: http.StatusUnauthorized}
}

func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Message: msg, Status: http.StatusForbidden}
}

func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg, Status: http.StatusNotFound}
}

// Gateway wraps a failure of the external media-transport gateway call,
// keeping the underlying message for diagnostics.
func Gateway(msg string, cause error) *Error {
	e := &Error{Code: CodeGateway, Message: msg, Status: http.StatusInternalServerError}
	if cause != nil {
		e.Detail = cause.Error()
	}
	return e
}
