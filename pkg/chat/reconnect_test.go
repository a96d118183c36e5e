package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newSamplePolicy() reconnectPolicy {
	return newReconnectPolicy(DefaultConfig())
}

func TestUnit_ReconnectPolicy_DelayFormula(t *testing.T) {
	policy := newSamplePolicy()

	expected := []time.Duration{
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
		30 * time.Second,
		30 * time.Second,
		30 * time.Second,
		30 * time.Second,
	}

	for k := 1; k <= 8; k++ {
		assert.Equal(
			t,
			expected[k-1],
			policy.delayFor(k),
			"Unexpected delay for attempt %d",
			k,
		)
	}
}

func TestUnit_ReconnectPolicy_NextIncrementsAttempts(t *testing.T) {
	policy := newSamplePolicy()

	delay := policy.next()

	assert.Equal(t, 1, policy.attempts)
	assert.Equal(t, 2*time.Second, delay)
}

func TestUnit_ReconnectPolicy_ExhaustedAfterMaxAttempts(t *testing.T) {
	policy := newSamplePolicy()

	for i := 0; i < 5; i++ {
		assert.False(t, policy.exhausted(), "Exhausted after %d attempt(s)", i)
		policy.next()
	}

	assert.True(t, policy.exhausted())
}

func TestUnit_ReconnectPolicy_ResetClearsAttempts(t *testing.T) {
	policy := newSamplePolicy()

	for i := 0; i < 5; i++ {
		policy.next()
	}
	assert.True(t, policy.exhausted())

	policy.reset()

	assert.False(t, policy.exhausted())
	assert.Equal(t, 0, policy.attempts)
}

func TestUnit_ReconnectPolicy_DelayForVeryLargeAttempt_ExpectCap(t *testing.T) {
	policy := newSamplePolicy()

	assert.Equal(t, 30*time.Second, policy.delayFor(40))
	assert.Equal(t, 30*time.Second, policy.delayFor(1000))
}
