package middleware

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitOpensAfterConsecutiveFailures(t *testing.T) {
	cb := NewCircuitBreaker("storefront", 2, time.Minute)
	fail := func() error { return errors.New("boom") }

	require.Error(t, cb.Call(fail))
	assert.Equal(t, StateClosed, cb.GetState())

	require.Error(t, cb.Call(fail))
	assert.Equal(t, StateOpen, cb.GetState())

	err := cb.Call(func() error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
}

func TestSuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker("storefront", 2, time.Minute)

	require.Error(t, cb.Call(func() error { return errors.New("boom") }))
	require.NoError(t, cb.Call(func() error { return nil }))
	require.Error(t, cb.Call(func() error { return errors.New("boom") }))

	assert.Equal(t, StateClosed, cb.GetState())
}

func TestCircuitRecoversThroughHalfOpen(t *testing.T) {
	cb := NewCircuitBreaker("storefront", 1, 10*time.Millisecond)

	require.Error(t, cb.Call(func() error { return errors.New("boom") }))
	require.Equal(t, StateOpen, cb.GetState())

	time.Sleep(20 * time.Millisecond)

	// Three successes in half-open close the circuit
	for i := 0; i < 3; i++ {
		require.NoError(t, cb.Call(func() error { return nil }))
	}
	assert.Equal(t, StateClosed, cb.GetState())
}

func TestHalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker("storefront", 1, 10*time.Millisecond)

	require.Error(t, cb.Call(func() error { return errors.New("boom") }))
	time.Sleep(20 * time.Millisecond)

	require.Error(t, cb.Call(func() error { return errors.New("still down") }))
	assert.Equal(t, StateOpen, cb.GetState())
}

func TestDetermineServiceFromPath(t *testing.T) {
	assert.Equal(t, "storefront", determineServiceFromPath("/api/products"))
	assert.Equal(t, "storefront", determineServiceFromPath("/api/products/3"))
	assert.Equal(t, "storefront", determineServiceFromPath("/api/categories"))
	assert.Equal(t, "storefront", determineServiceFromPath("/api/catalog/refresh"))
	assert.Equal(t, "storefront", determineServiceFromPath("/api/cart/items/1"))
	assert.Empty(t, determineServiceFromPath("/health"))
	assert.Empty(t, determineServiceFromPath("/"))
}
