// README: Application error type pairing a user-safe message with internal detail and an HTTP status.
package apperr

import (
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation     Kind = "VALIDATION_ERROR"
	KindConfig         Kind = "CONFIG_ERROR"
	KindAuth           Kind = "AUTHENTICATION_ERROR"
	KindRateLimit      Kind = "RATE_LIMIT"
	KindUpstream       Kind = "UPSTREAM_ERROR"
	KindTimeout        Kind = "TIMEOUT"
	KindNetwork        Kind = "NETWORK_ERROR"
	KindBadModelOutput Kind = "BAD_MODEL_OUTPUT"
	KindStorage        Kind = "STORAGE_ERROR"
	KindNotFound       Kind = "NOT_FOUND"
	KindInternal       Kind = "SERVER_ERROR"
)

// Error carries both sides of the trust boundary: UserMessage is the only
// text that may be returned to a client, Detail is logged server-side.
type Error struct {
	Kind        Kind
	UserMessage string
	Detail      string
	HTTPStatus  int
	Raw         error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.UserMessage)
}

func (e *Error) Unwrap() error {
	return e.Raw
}

// New builds an Error with an explicit status.
func New(kind Kind, userMessage, detail string, status int) *Error {
	return &Error{Kind: kind, UserMessage: userMessage, Detail: detail, HTTPStatus: status}
}

// Wrap attaches a raw cause to a new Error.
func Wrap(err error, kind Kind, userMessage, detail string, status int) *Error {
	return &Error{Kind: kind, UserMessage: userMessage, Detail: detail, HTTPStatus: status, Raw: err}
}

func ValidationFailed(userMessage, detail string) *Error {
	return New(KindValidation, userMessage, detail, http.StatusBadRequest)
}

func NotFound(userMessage, detail string) *Error {
	return New(KindNotFound, userMessage, detail, http.StatusNotFound)
}

func StorageUnavailable(userMessage, detail string) *Error {
	return New(KindStorage, userMessage, detail, http.StatusServiceUnavailable)
}

func Internal(userMessage, detail string) *Error {
	return New(KindInternal, userMessage, detail, http.StatusInternalServerError)
}

// User-safe messages shared between the model client, the share store and
// the HTTP layer. Clients never see anything else.
const (
	MsgValidation       = "Please fill in all required fields."
	MsgAPIKeyMissing    = "Trip planning service is not configured. Please contact support."
	MsgAPIKeyInvalid    = "Trip planning service authentication failed. Please contact support."
	MsgRateLimited      = "We're experiencing high demand. Please try again in a moment."
	MsgTimeout          = "The request took too long. Please try again with a shorter trip duration."
	MsgBadModelOutput   = "We received an unexpected response. Please try again."
	MsgModelUnavailable = "The AI service is temporarily unavailable. Please try again later."
	MsgNetwork          = "Connection error. Please check your internet and try again."
	MsgShareUnavailable = "Share feature is not available. Please try again later."
	MsgShareFailed      = "Couldn't create share link. Please try again."
	MsgShareNotFound    = "This trip link has expired or doesn't exist."
	MsgGeneric          = "Something went wrong. Please try again."
)

// UpstreamMessage maps a provider HTTP status to a user-safe message.
func UpstreamMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Invalid request. Please check your trip details and try again."
	case http.StatusUnauthorized:
		return "Authentication failed. Please contact support."
	case http.StatusForbidden:
		return "Access denied. Please contact support."
	case http.StatusNotFound:
		return "AI model not found. The service may be temporarily unavailable or misconfigured."
	case http.StatusTooManyRequests:
		return MsgRateLimited
	case http.StatusInternalServerError:
		return "The AI service encountered an error. Please try again."
	case http.StatusBadGateway:
		return "The AI service is temporarily unavailable. Please try again."
	case http.StatusServiceUnavailable:
		return "The AI service is under maintenance. Please try again later."
	default:
		return "We couldn't generate your trip. Please try again."
	}
}
