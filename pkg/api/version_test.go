package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckServerVersion(t *testing.T) {
	assert.NoError(t, CheckServerVersion("2.0.0"))
	assert.NoError(t, CheckServerVersion("2.31.4"))
	assert.NoError(t, CheckServerVersion("v2.1.0"))

	assert.ErrorIs(t, CheckServerVersion("1.9.0"), ErrIncompatibleServer)
	assert.ErrorIs(t, CheckServerVersion("3.0.0"), ErrIncompatibleServer)
	assert.ErrorIs(t, CheckServerVersion("not-a-version"), ErrIncompatibleServer)
}
