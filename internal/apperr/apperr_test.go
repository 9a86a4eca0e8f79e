package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{NotFound("missing"), http.StatusNotFound},
		{Conflict("taken"), http.StatusConflict},
		{Forbidden("nope"), http.StatusForbidden},
		{State("too late"), http.StatusConflict},
	}

	for _, tc := range cases {
		var ae *Error
		assert.True(t, errors.As(tc.err, &ae))
		assert.Equal(t, tc.status, statusOf(ae.Kind), "message %q", tc.err.Error())
	}
}

func TestIs(t *testing.T) {
	err := Conflict("slot already booked")

	assert.True(t, Is(err, KindConflict))
	assert.False(t, Is(err, KindValidation))
	assert.False(t, Is(errors.New("plain"), KindConflict))
	assert.False(t, Is(nil, KindConflict))

	// wrapped errors keep their kind
	wrapped := fmt.Errorf("create booking: %w", err)
	assert.True(t, Is(wrapped, KindConflict))
}

func TestMessagePreserved(t *testing.T) {
	err := Validation("slots required")
	assert.EqualError(t, err, "slots required")
}
