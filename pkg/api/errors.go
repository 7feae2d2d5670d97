package api

import (
	"net/http"

	"github.com/roomkit/roomkit/internal/common/apperrors"
)

var (
	// ErrSessionClient is the base error for all session client failures.
	ErrSessionClient apperrors.Error = apperrors.New("session client error").SetStatusCode(http.StatusInternalServerError)

	// ErrRemoteStatus is returned when the server answered with a non-success
	// HTTP status. The error message is the numeric status code and
	// StatusCode() carries the same value.
	ErrRemoteStatus apperrors.Error = ErrSessionClient.New("server returned error status")

	// ErrTransport is returned when the request was sent but no response
	// arrived (network partition, connection drop, reset).
	ErrTransport apperrors.Error = ErrSessionClient.New("no response from server").SetStatusCode(http.StatusBadGateway)

	// ErrRequestSetup is returned when the request could not be constructed
	// or sent; the failure happened before any network I/O.
	ErrRequestSetup apperrors.Error = ErrSessionClient.New("request setup failed").SetStatusCode(http.StatusInternalServerError)

	// ErrDeadlineExceeded is returned when the per-call context expired or
	// was canceled before a response arrived.
	ErrDeadlineExceeded apperrors.Error = ErrSessionClient.New("operation deadline exceeded").SetStatusCode(http.StatusGatewayTimeout)

	// ErrBadServerResponse is returned when the server answered with a
	// success status but the body did not carry the expected fields.
	ErrBadServerResponse apperrors.Error = ErrSessionClient.New("malformed server response").SetStatusCode(http.StatusBadGateway)

	// ErrInvalidProperties is returned when session properties fail
	// validation at client construction.
	ErrInvalidProperties apperrors.Error = ErrSessionClient.New("invalid session properties").SetStatusCode(http.StatusBadRequest)

	// ErrInvalidTokenOptions is returned when token options fail validation.
	ErrInvalidTokenOptions apperrors.Error = ErrSessionClient.New("invalid token options").SetStatusCode(http.StatusBadRequest)

	// ErrInvalidToken is returned when a token cannot be decoded as a JWT.
	ErrInvalidToken apperrors.Error = ErrSessionClient.New("token is not a decodable JWT").SetStatusCode(http.StatusBadRequest)

	// ErrIncompatibleServer is returned when the server reports an API
	// version this client does not speak.
	ErrIncompatibleServer apperrors.Error = ErrSessionClient.New("incompatible server version").SetStatusCode(http.StatusBadRequest)
)
