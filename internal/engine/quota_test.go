package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuotaEnforcer_WithinLimit tests normal operation within quota.
func TestQuotaEnforcer_WithinLimit(t *testing.T) {
	q := NewQuotaEnforcer(10)

	for i := 0; i < 10; i++ {
		err := q.Check()
		assert.NoError(t, err, "step %d should be allowed", i+1)
	}

	assert.Equal(t, int64(10), q.Current())
	assert.Equal(t, int64(10), q.MaxSteps())
}

// TestQuotaEnforcer_ExceedsLimit tests quota exceeded error.
func TestQuotaEnforcer_ExceedsLimit(t *testing.T) {
	q := NewQuotaEnforcer(5)

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Check())
	}

	err := q.Check()
	require.Error(t, err)

	var stepsErr *StepsExceededError
	require.ErrorAs(t, err, &stepsErr)
	assert.Equal(t, int64(6), stepsErr.Steps)
	assert.Equal(t, int64(5), stepsErr.Limit)
}

// TestQuotaEnforcer_Unlimited tests that 0 disables the limit but keeps counting.
func TestQuotaEnforcer_Unlimited(t *testing.T) {
	q := NewQuotaEnforcer(0)
	for i := 0; i < 10000; i++ {
		require.NoError(t, q.Check())
	}
	assert.Equal(t, int64(10000), q.Current())
}

// TestQuotaEnforcer_Reset tests resetting the counter.
func TestQuotaEnforcer_Reset(t *testing.T) {
	q := NewQuotaEnforcer(5)

	for i := 0; i < 5; i++ {
		_ = q.Check()
	}
	assert.Equal(t, int64(5), q.Current())

	q.Reset()
	assert.Equal(t, int64(0), q.Current())

	for i := 0; i < 5; i++ {
		assert.NoError(t, q.Check())
	}
}
