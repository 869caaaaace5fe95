package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	cause := errors.New("open /etc/model.json: permission denied")
	err := NewUserError("could not load the fraud model", cause)

	assert.Equal(t, "could not load the fraud model: open /etc/model.json: permission denied", err.Error())
	assert.True(t, errors.Is(err, cause))

	// The CLI pulls the user-facing message back out of a wrapped chain.
	wrapped := fmt.Errorf("batch failed: %w", err)
	var userErr *UserError
	require.True(t, errors.As(wrapped, &userErr))
	assert.Equal(t, "could not load the fraud model", userErr.UserMessage)
}

func TestUserErrorNoCause(t *testing.T) {
	err := NewUserError("nothing to score", nil)
	assert.Equal(t, "nothing to score", err.Error())
}
