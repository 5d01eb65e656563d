package translation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakingRemote guards a Remote with a circuit breaker. While the breaker
// is open, Translate fails immediately without a network call.
type BreakingRemote struct {
	next Remote
	cb   *gobreaker.CircuitBreaker
}

// NewBreakingRemote trips after maxFailures consecutive failures and probes
// again after openTimeout.
func NewBreakingRemote(next Remote, maxFailures uint32, openTimeout time.Duration) *BreakingRemote {
	settings := gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// A caller giving up is not a remote failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("translation circuit breaker state changed",
				"remote", name, "from", from.String(), "to", to.String())
		},
	}

	return &BreakingRemote{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate calls the wrapped Remote through the breaker.
func (b *BreakingRemote) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, text, sourceCode, targetCode)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// Name returns the provider name
func (b *BreakingRemote) Name() string {
	return b.next.Name()
}

// State returns the current breaker state.
func (b *BreakingRemote) State() gobreaker.State {
	return b.cb.State()
}
