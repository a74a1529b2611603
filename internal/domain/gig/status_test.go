package gig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freelancedesk/freelance-tracker/internal/httperr"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusActive, InitialStatus())
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(StatusActive))
	assert.True(t, IsValid(StatusCompleted))
	assert.True(t, IsValid(StatusCancelled))
	assert.False(t, IsValid("bogus"))
	assert.False(t, IsValid(""))
}

func TestTransition(t *testing.T) {
	valid := []Status{StatusActive, StatusCompleted, StatusCancelled}

	// Every enumerated pair is allowed, including reopening.
	for _, from := range valid {
		for _, to := range valid {
			assert.NoError(t, Transition(from, to), "%s -> %s", from, to)
		}
	}

	err := Transition(StatusActive, "bogus")
	assert.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}
