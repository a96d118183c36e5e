package chat

import "time"

// reconnectPolicy tracks how many automatic reconnection attempts were
// made since the last successful connection. Once the cap is reached
// the policy stays exhausted until a manual reconnect resets it.
type reconnectPolicy struct {
	attempts    int
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
}

func newReconnectPolicy(config Config) reconnectPolicy {
	return reconnectPolicy{
		maxAttempts: config.MaxReconnectAttempts,
		baseDelay:   config.ReconnectBaseDelay,
		maxDelay:    config.ReconnectMaxDelay,
	}
}

func (p *reconnectPolicy) exhausted() bool {
	return p.attempts >= p.maxAttempts
}

func (p *reconnectPolicy) reset() {
	p.attempts = 0
}

// next registers one more attempt and returns how long to wait before
// performing it.
func (p *reconnectPolicy) next() time.Duration {
	p.attempts++
	return p.delayFor(p.attempts)
}

// delayFor returns the backoff delay for the k-th attempt (1-indexed):
// min(baseDelay * 2^k, maxDelay). The first retry waits twice the base
// delay and each subsequent one doubles it until the cap.
func (p *reconnectPolicy) delayFor(attempt int) time.Duration {
	const maxShift = 30
	if attempt > maxShift {
		return p.maxDelay
	}

	delay := p.baseDelay << uint(attempt)
	if delay <= 0 || delay > p.maxDelay {
		return p.maxDelay
	}

	return delay
}
