// Package api provides the client for a media-server session and token API.
// A SessionClient represents one remote conferencing session: it can create
// or reuse the session on the server and mint short-lived access tokens
// scoped to it.
package api

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// MediaMode determines how media travels between participants.
type MediaMode string

// Supported media modes.
const (
	// MediaModeRouted routes all media through the media server.
	MediaModeRouted MediaMode = "ROUTED"
	// MediaModeRelayed relays media peer-to-peer where possible.
	MediaModeRelayed MediaMode = "RELAYED"
)

// RecordingMode determines when session recording starts.
type RecordingMode string

// Supported recording modes.
const (
	// RecordingModeManual starts recording only on request.
	RecordingModeManual RecordingMode = "MANUAL"
	// RecordingModeAlways starts recording as soon as the session starts.
	RecordingModeAlways RecordingMode = "ALWAYS"
)

// RecordingLayout is the visual arrangement strategy for composed recordings.
type RecordingLayout string

// Supported recording layouts.
const (
	RecordingLayoutBestFit                RecordingLayout = "BEST_FIT"
	RecordingLayoutCustom                 RecordingLayout = "CUSTOM"
	RecordingLayoutPictureInPicture       RecordingLayout = "PICTURE_IN_PICTURE"
	RecordingLayoutVerticalPresentation   RecordingLayout = "VERTICAL_PRESENTATION"
	RecordingLayoutHorizontalPresentation RecordingLayout = "HORIZONTAL_PRESENTATION"
)

// Role is the privilege level a token grants within a session.
type Role string

// Supported roles, lowest privilege first.
const (
	RoleSubscriber Role = "SUBSCRIBER"
	RolePublisher  Role = "PUBLISHER"
	RoleModerator  Role = "MODERATOR"
)

// Defaults substituted at request-build time for properties and options the
// caller left unset. Tests assert on these by name.
const (
	DefaultMediaMode       = MediaModeRouted
	DefaultRecordingMode   = RecordingModeManual
	DefaultRecordingLayout = RecordingLayoutBestFit
	DefaultCustomLayout    = ""
	DefaultCustomSessionID = ""
	DefaultRole            = RolePublisher
	DefaultTokenData       = ""
)

// SessionProperties configures the session created on the remote server.
// All fields are optional; unset fields get the documented defaults when the
// create request is built. Properties are read-only after client construction.
type SessionProperties struct {
	MediaMode              MediaMode       `json:"mediaMode,omitempty" validate:"omitempty,oneof=ROUTED RELAYED"`
	RecordingMode          RecordingMode   `json:"recordingMode,omitempty" validate:"omitempty,oneof=MANUAL ALWAYS"`
	DefaultRecordingLayout RecordingLayout `json:"defaultRecordingLayout,omitempty" validate:"omitempty,oneof=BEST_FIT CUSTOM PICTURE_IN_PICTURE VERTICAL_PRESENTATION HORIZONTAL_PRESENTATION"`
	DefaultCustomLayout    string          `json:"defaultCustomLayout,omitempty" validate:"omitempty,max=255"`
	CustomSessionID        string          `json:"customSessionId,omitempty" validate:"omitempty,resourceid,max=128"`
}

// TokenOptions configures a minted token. Zero values get the documented
// defaults: the lowest-privilege publisher role and empty data.
type TokenOptions struct {
	Role Role   `validate:"omitempty,oneof=SUBSCRIBER PUBLISHER MODERATOR"`
	Data string `validate:"omitempty,max=4096"`
}

// sessionCreateRequest is the wire form of the session-creation body. It is
// derived from SessionProperties with defaults substituted and never stored.
type sessionCreateRequest struct {
	MediaMode              MediaMode       `json:"mediaMode"`
	RecordingMode          RecordingMode   `json:"recordingMode"`
	DefaultRecordingLayout RecordingLayout `json:"defaultRecordingLayout"`
	DefaultCustomLayout    string          `json:"defaultCustomLayout"`
	CustomSessionID        string          `json:"customSessionId"`
}

// tokenRequest is the wire form of the token-creation body.
type tokenRequest struct {
	Session string `json:"session"`
	Role    Role   `json:"role"`
	Data    string `json:"data"`
}

var resourceIDRegexp = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("resourceid", func(fl validator.FieldLevel) bool {
		return resourceIDRegexp.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks the properties against the allowed enumeration values and
// identifier shape. Returns ErrInvalidProperties describing the first
// offending field.
func (p SessionProperties) Validate() error {
	if err := validate.Struct(p); err != nil {
		return ErrInvalidProperties.MsgErr("invalid session properties", err)
	}
	return nil
}

// Validate checks the token options against the allowed role values.
func (o TokenOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		return ErrInvalidTokenOptions.MsgErr("invalid token options", err)
	}
	return nil
}

// createRequest builds the wire request from the properties, substituting
// the documented default for every unset field.
func (p SessionProperties) createRequest() sessionCreateRequest {
	req := sessionCreateRequest{
		MediaMode:              p.MediaMode,
		RecordingMode:          p.RecordingMode,
		DefaultRecordingLayout: p.DefaultRecordingLayout,
		DefaultCustomLayout:    p.DefaultCustomLayout,
		CustomSessionID:        p.CustomSessionID,
	}
	if req.MediaMode == "" {
		req.MediaMode = DefaultMediaMode
	}
	if req.RecordingMode == "" {
		req.RecordingMode = DefaultRecordingMode
	}
	if req.DefaultRecordingLayout == "" {
		req.DefaultRecordingLayout = DefaultRecordingLayout
	}
	if req.DefaultCustomLayout == "" {
		req.DefaultCustomLayout = DefaultCustomLayout
	}
	if req.CustomSessionID == "" {
		req.CustomSessionID = DefaultCustomSessionID
	}
	return req
}

// tokenRequestFor builds the wire request for a token scoped to sessionID,
// substituting defaults for unset options. An unset sessionID is sent as an
// empty string; the server decides whether that is acceptable.
func (o TokenOptions) tokenRequestFor(sessionID string) tokenRequest {
	req := tokenRequest{
		Session: sessionID,
		Role:    o.Role,
		Data:    o.Data,
	}
	if req.Role == "" {
		req.Role = DefaultRole
	}
	if req.Data == "" {
		req.Data = DefaultTokenData
	}
	return req
}
