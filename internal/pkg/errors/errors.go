// Package errors carries HTTP-mappable application errors rendered as
// RFC 7807 problem documents.
package errors

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Error is an application error with an HTTP status attached.
type Error struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *Error) Error() string {
	return e.Title + ": " + e.Detail
}

// New creates an application error.
func New(status int, title, detail string) *Error {
	return &Error{Status: status, Title: title, Detail: detail}
}

// Wrap converts err into an application error with the given status and
// title. An err that already is an *Error passes through unchanged.
func Wrap(err error, status int, title string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Status: status, Title: title, Detail: err.Error()}
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// WriteError renders err to w as a problem+json response. Errors that are
// not *Error become 500 Internal Server Error.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	_ = r
	appErr := &Error{
		Status: http.StatusInternalServerError,
		Title:  "Internal Server Error",
		Detail: err.Error(),
	}
	var e *Error
	if errors.As(err, &e) {
		appErr = e
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(appErr.Status)
	_ = json.NewEncoder(w).Encode(problem{
		Type:   "about:blank",
		Title:  appErr.Title,
		Status: appErr.Status,
		Detail: appErr.Detail,
	})
}
