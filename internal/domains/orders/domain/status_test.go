package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_NextSequence(t *testing.T) {
	status := StatusReceived
	want := []Status{StatusPreparing, StatusReady, StatusFinalized}
	for _, expected := range want {
		next, err := status.Next()
		require.NoError(t, err)
		assert.Equal(t, expected, next)
		status = next
	}

	_, err := status.Next()
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
}

func TestStatus_NextOnCancelled(t *testing.T) {
	_, err := StatusCancelled.Next()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusReceived.CanTransitionTo(StatusPreparing))
	assert.True(t, StatusReceived.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusReceived.CanTransitionTo(StatusReady), "skipping ahead is rejected")
	assert.False(t, StatusPreparing.CanTransitionTo(StatusReceived), "backward moves are rejected")
	assert.False(t, StatusPreparing.CanTransitionTo(StatusCancelled))
}

func TestStatus_BadgeColorIsExhaustive(t *testing.T) {
	colors := map[Status]string{
		StatusReceived:  "#FFA500",
		StatusPreparing: "#4285F4",
		StatusReady:     "#0F9D58",
		StatusFinalized: "#757575",
		StatusCancelled: "#FF4444",
	}
	for status, want := range colors {
		assert.Equal(t, want, status.BadgeColor())
	}
}
