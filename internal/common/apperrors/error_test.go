package apperrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	ErrBase := New("base error")
	assert.Equal(t, "base error", ErrBase.Error())
	assert.Equal(t, "derived", ErrBase.New("derived").Error())
	assert.ErrorIs(t, ErrBase, ErrBase)

	ErrFirstLevel := ErrBase.New("first level")
	assert.Equal(t, "first level", ErrFirstLevel.Error())
	assert.ErrorIs(t, ErrFirstLevel, ErrBase)

	ErrOther := New("other error")
	ErrOtherMsg := ErrOther.Msg("other error msg")
	wrapped := ErrFirstLevel.Err(ErrOtherMsg)
	assert.Equal(t, "first level", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrBase)
	assert.ErrorIs(t, wrapped, ErrFirstLevel)
	assert.ErrorIs(t, wrapped, ErrOther)
	assert.ErrorIs(t, wrapped, ErrOtherMsg)

	err := errors.New("plain error")
	wrapped = ErrFirstLevel.Err(err)
	assert.Equal(t, "first level", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrBase)
	assert.ErrorIs(t, wrapped, err)

	wrapped = ErrFirstLevel.MsgErr("msg", err)
	assert.Equal(t, "msg", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrBase)
	assert.ErrorIs(t, wrapped, err)

	goErr := fmt.Errorf("go error")
	wrapped = ErrFirstLevel.Err(goErr)
	assert.ErrorIs(t, wrapped, goErr)
	assert.Len(t, wrapped.UnwrapAll(), 2)
}

func TestErrorStatusCode(t *testing.T) {
	ErrRemote := New("remote error").SetStatusCode(http.StatusBadGateway)
	assert.Equal(t, http.StatusBadGateway, ErrRemote.StatusCode())

	// derived errors inherit the status code unless overridden
	refined := ErrRemote.Msg("502")
	assert.Equal(t, http.StatusBadGateway, refined.StatusCode())
	assert.Equal(t, "502", refined.Error())
	assert.ErrorIs(t, refined, ErrRemote)

	overridden := ErrRemote.New("not found").SetStatusCode(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, overridden.StatusCode())
	assert.ErrorIs(t, overridden, ErrRemote)
}

func TestErrorPrefix(t *testing.T) {
	ErrBase := New("request failed")
	withPrefix := ErrBase.Prefix("create session")
	assert.Equal(t, "create session: request failed", withPrefix.Error())
	// original sentinel is untouched
	assert.Equal(t, "request failed", ErrBase.Error())
}
