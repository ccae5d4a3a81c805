package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	drepo "FinQuote/internal/domain/repository"
	applogger "FinQuote/pkg/logger"
)

// Failure classifications for a provider attempt. None of them reach
// the caller; they only decide logging and metrics before the chain
// advances.
const (
	reasonTimeout     = "timeout"
	reasonUnavailable = "unavailable"
	reasonMalformed   = "malformed"
)

// Provider is one rung of a resolution chain. Timeout zero means the
// attempt runs under the caller's context alone (the synthetic
// terminal rung has no network latency to bound).
type Provider[T any] struct {
	Name    string
	Timeout time.Duration
	Fetch   func(ctx context.Context) (T, error)
}

// resolveChain tries providers in order and returns the first payload
// that passes valid, together with the answering provider's name. A
// failed or timed-out attempt advances immediately; there is no retry
// in place. The chain aborts only when the caller's own context is
// done. A fully exhausted chain means the terminal synthetic provider
// misbehaved, which is a defect, not a runtime condition.
func resolveChain[T any](
	ctx context.Context,
	providers []Provider[T],
	valid func(T) error,
	log *applogger.Logger,
	metrics drepo.Metrics,
) (T, string, error) {
	var zero T

	for _, p := range providers {
		if err := ctx.Err(); err != nil {
			return zero, "", err
		}

		attemptCtx := ctx
		cancel := func() {}
		if p.Timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, p.Timeout)
		}

		start := time.Now()
		payload, err := p.Fetch(attemptCtx)
		cancel()
		metrics.RecordProviderLatency(p.Name, time.Since(start).Seconds())

		if err != nil {
			reason := classifyFailure(err)
			metrics.RecordProviderFailure(p.Name, reason)
			log.Warn("provider fell through",
				applogger.String("provider", p.Name),
				applogger.String("reason", reason),
				applogger.Error(err),
			)
			continue
		}

		if valid != nil {
			if verr := valid(payload); verr != nil {
				metrics.RecordProviderFailure(p.Name, reasonMalformed)
				log.Warn("provider payload rejected",
					applogger.String("provider", p.Name),
					applogger.Error(verr),
				)
				continue
			}
		}

		return payload, p.Name, nil
	}

	return zero, "", fmt.Errorf("resolution chain exhausted after %d providers", len(providers))
}

func classifyFailure(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return reasonTimeout
	}
	return reasonUnavailable
}
