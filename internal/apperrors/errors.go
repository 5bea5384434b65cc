// Package apperrors defines the typed error taxonomy shared by all services.
// Every operation resolves to either a result or one of these errors; the
// HTTP layer maps kinds to status codes and forwards the stable reason code.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	KindValidation Kind = iota
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindInternal
)

// Stable reason codes reported to callers.
const (
	CodeMissingToken       = "MISSING_TOKEN"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailTaken         = "EMAIL_TAKEN"

	CodeUserNotFound       = "USER_NOT_FOUND"
	CodePostNotFound       = "POST_NOT_FOUND"
	CodeConnectionNotFound = "CONNECTION_NOT_FOUND"

	CodeSelfConnection       = "SELF_CONNECTION_NOT_ALLOWED"
	CodeConnectionPending    = "CONNECTION_PENDING"
	CodeAlreadyConnected     = "ALREADY_CONNECTED"
	CodeConnectionNotPending = "CONNECTION_NOT_PENDING"
	CodeNotAuthorized        = "NOT_AUTHORIZED"

	CodeEmptyContent   = "EMPTY_CONTENT"
	CodeContentTooLong = "CONTENT_TOO_LONG"

	CodeNoFieldsProvided = "NO_FIELDS_PROVIDED"
	CodeInvalidName      = "INVALID_NAME"
	CodeInvalidHeadline  = "INVALID_HEADLINE"
	CodeInvalidBio       = "INVALID_BIO"
	CodeInvalidAvatarURL = "INVALID_AVATAR_URL"
	CodeInvalidLocation  = "INVALID_LOCATION"
	CodeInvalidCompany   = "INVALID_COMPANY"
	CodeInvalidPosition  = "INVALID_POSITION"

	CodeInternal = "INTERNAL_ERROR"
)

// Error carries the kind, a stable machine-readable code and a human message.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func Authentication(code, message string) *Error {
	return &Error{Kind: KindAuthentication, Code: code, Message: message}
}

func Authorization(code, message string) *Error {
	return &Error{Kind: KindAuthorization, Code: code, Message: message}
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// Internal wraps an unexpected store or infrastructure failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: "internal server error", Err: err}
}

// As unwraps err into a typed *Error, or wraps it as internal when it isn't one.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// HTTPStatus maps an error kind to its wire status code.
func HTTPStatus(err error) int {
	switch As(err).Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
