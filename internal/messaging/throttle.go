package messaging

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Throttle paces consecutive gateway calls
type Throttle interface {
	Wait(ctx context.Context) error
}

// RateThrottle is a token bucket backed Throttle
type RateThrottle struct {
	limiter *rate.Limiter
}

// Every allows one call per interval with no burst
func Every(interval time.Duration) *RateThrottle {
	if interval <= 0 {
		return &RateThrottle{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &RateThrottle{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// PerSecond allows n calls per second with the given burst
func PerSecond(n float64, burst int) *RateThrottle {
	if burst < 1 {
		burst = 1
	}
	return &RateThrottle{limiter: rate.NewLimiter(rate.Limit(n), burst)}
}

// Wait blocks until the next call is allowed or ctx is done
func (t *RateThrottle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

type noThrottle struct{}

func (noThrottle) Wait(ctx context.Context) error {
	return ctx.Err()
}

// NoThrottle never waits
var NoThrottle Throttle = noThrottle{}
