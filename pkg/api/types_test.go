package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRequestDefaults(t *testing.T) {
	tests := []struct {
		name  string
		props SessionProperties
		check func(t *testing.T, req sessionCreateRequest)
	}{
		{
			name:  "all defaults",
			props: SessionProperties{},
			check: func(t *testing.T, req sessionCreateRequest) {
				assert.Equal(t, DefaultMediaMode, req.MediaMode)
				assert.Equal(t, DefaultRecordingMode, req.RecordingMode)
				assert.Equal(t, DefaultRecordingLayout, req.DefaultRecordingLayout)
				assert.Equal(t, DefaultCustomLayout, req.DefaultCustomLayout)
				assert.Equal(t, DefaultCustomSessionID, req.CustomSessionID)
			},
		},
		{
			name:  "media mode set",
			props: SessionProperties{MediaMode: MediaModeRelayed},
			check: func(t *testing.T, req sessionCreateRequest) {
				assert.Equal(t, MediaModeRelayed, req.MediaMode)
				assert.Equal(t, DefaultRecordingMode, req.RecordingMode)
			},
		},
		{
			name:  "recording mode set",
			props: SessionProperties{RecordingMode: RecordingModeAlways},
			check: func(t *testing.T, req sessionCreateRequest) {
				assert.Equal(t, RecordingModeAlways, req.RecordingMode)
				assert.Equal(t, DefaultMediaMode, req.MediaMode)
			},
		},
		{
			name: "custom layout set",
			props: SessionProperties{
				DefaultRecordingLayout: RecordingLayoutCustom,
				DefaultCustomLayout:    "grid-3x3",
			},
			check: func(t *testing.T, req sessionCreateRequest) {
				assert.Equal(t, RecordingLayoutCustom, req.DefaultRecordingLayout)
				assert.Equal(t, "grid-3x3", req.DefaultCustomLayout)
			},
		},
		{
			name:  "custom session id set",
			props: SessionProperties{CustomSessionID: "room42"},
			check: func(t *testing.T, req sessionCreateRequest) {
				assert.Equal(t, "room42", req.CustomSessionID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.props.createRequest())
		})
	}
}

func TestSessionPropertiesValidate(t *testing.T) {
	assert.NoError(t, SessionProperties{}.Validate())
	assert.NoError(t, SessionProperties{
		MediaMode:              MediaModeRelayed,
		RecordingMode:          RecordingModeAlways,
		DefaultRecordingLayout: RecordingLayoutCustom,
		CustomSessionID:        "room_42-a",
	}.Validate())

	assert.ErrorIs(t, SessionProperties{MediaMode: "BROADCAST"}.Validate(), ErrInvalidProperties)
	assert.ErrorIs(t, SessionProperties{RecordingMode: "SOMETIMES"}.Validate(), ErrInvalidProperties)
	assert.ErrorIs(t, SessionProperties{DefaultRecordingLayout: "MOSAIC"}.Validate(), ErrInvalidProperties)
	assert.ErrorIs(t, SessionProperties{CustomSessionID: "room 42"}.Validate(), ErrInvalidProperties)
	assert.ErrorIs(t, SessionProperties{CustomSessionID: "room/42"}.Validate(), ErrInvalidProperties)
}

func TestTokenRequestDefaults(t *testing.T) {
	req := TokenOptions{}.tokenRequestFor("ses_ABC")
	assert.Equal(t, "ses_ABC", req.Session)
	assert.Equal(t, DefaultRole, req.Role)
	assert.Equal(t, DefaultTokenData, req.Data)

	req = TokenOptions{Role: RoleSubscriber, Data: "seat=12"}.tokenRequestFor("ses_ABC")
	assert.Equal(t, RoleSubscriber, req.Role)
	assert.Equal(t, "seat=12", req.Data)
}

func TestTokenOptionsValidate(t *testing.T) {
	assert.NoError(t, TokenOptions{}.Validate())
	assert.NoError(t, TokenOptions{Role: RoleModerator}.Validate())
	assert.ErrorIs(t, TokenOptions{Role: "SUPERUSER"}.Validate(), ErrInvalidTokenOptions)
}
