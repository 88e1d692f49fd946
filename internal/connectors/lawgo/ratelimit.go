package lawgo

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter throttles outgoing API calls on the client side.
// A nil or disabled limiter never waits.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter allows perSecond requests with the given burst.
// perSecond <= 0 disables throttling.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if perSecond <= 0 {
		return &RateLimiter{}
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{bucket: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until a request may be sent or ctx ends.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil || r.bucket == nil {
		return ctx.Err()
	}
	return r.bucket.Wait(ctx)
}

// Enabled reports whether the limiter throttles.
func (r *RateLimiter) Enabled() bool {
	return r != nil && r.bucket != nil
}
