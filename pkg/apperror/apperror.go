// Package apperror defines the error taxonomy shared by usecases and the HTTP layer.
package apperror

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation      Kind = "validation_failed"
	KindNotFound        Kind = "not_found"
	KindUnauthorized    Kind = "unauthorized"
	KindForbidden       Kind = "forbidden"
	KindDuplicate       Kind = "duplicate_account"
	KindAlreadyLiked    Kind = "already_liked"
	KindNotLiked        Kind = "not_liked"
	KindUpstreamFailure Kind = "upstream_failure"
	KindInternal        Kind = "internal"
)

// FieldError is one entry of an error list response.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

type Error struct {
	Kind    Kind
	Status  int
	Message string
	// Fields, when set, is rendered as {"errors": [...]} instead of {"msg": ...}.
	Fields []FieldError
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on kind and message so sentinel values compare equal after wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func New(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

// Listed builds an error rendered as a single-entry error list.
func Listed(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message, Fields: []FieldError{{Msg: message}}}
}

func Validation(fields []FieldError) *Error {
	msg := "validation failed"
	if len(fields) > 0 {
		msg = fields[0].Msg
	}
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: msg, Fields: fields}
}

func NotFound(status int, message string) *Error {
	return New(KindNotFound, status, message)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, http.StatusUnauthorized, message)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, http.StatusUnauthorized, message)
}

func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstreamFailure, Status: http.StatusNotFound, Message: message, Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: "Server error", Err: err}
}

// From converts any error into an *Error, treating unknown errors as internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
