package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/docset"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultMaxAttempts is the number of fetch attempts before giving up.
// Rate-limit responses do not consume attempts.
const DefaultMaxAttempts = 6

// BackoffFunc maps an attempt count to a sleep duration.
type BackoffFunc func(n int) time.Duration

// DefaultBackoff returns the retry delay for transient failures:
// 1s, 2s, 4s ... capped at 30s.
func DefaultBackoff(n int) time.Duration {
	return min(time.Duration(1<<n)*time.Second, 30*time.Second)
}

// RateLimitBackoff returns the pause for a 429 without a Retry-After
// header: 60s, 120s, 240s ... capped at 10 minutes. The hit count is
// clamped so long 429 streaks cannot overflow the shift into a
// negative duration.
func RateLimitBackoff(hits int) time.Duration {
	if hits < 1 {
		hits = 1
	}
	if hits > 10 {
		hits = 10
	}
	return min(time.Duration(60<<(hits-1))*time.Second, 10*time.Minute)
}

// FetchWithRetry fetches a URL with status-aware retry logic:
//
//   - 404 is permanent: the error is returned without retrying.
//   - 429 pauses all workers through the gate for Retry-After (or the
//     rate-limit backoff when the header is absent) and does NOT consume
//     an attempt, so transient rate-limit bursts cannot exhaust retries.
//   - Anything else (network errors, 5xx) retries with exponential
//     backoff up to DefaultMaxAttempts total attempts.
//
// The gate may be nil, in which case 429 back-offs sleep locally.
// The logger, if provided, is called for each retry.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, gate docset.RateGate, logger LogFunc) (string, error) {
	return FetchWithBackoff(ctx, url, fetch, gate, logger, DefaultBackoff, RateLimitBackoff, DefaultMaxAttempts)
}

// FetchWithBackoff is like FetchWithRetry but with configurable backoff
// schedules and attempt budget. Useful for testing without real delays.
func FetchWithBackoff(ctx context.Context, url string, fetch FetchFunc, gate docset.RateGate, logger LogFunc, backoff, limitBackoff BackoffFunc, maxAttempts int) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	var lastErr error
	rateLimitHits := 0

	for attempt := 0; attempt < maxAttempts; {
		// Block here if another worker is sleeping through a back-off.
		if gate != nil {
			if err := gate.Wait(ctx); err != nil {
				return "", err
			}
		}

		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}

		switch docset.ErrorCode(err) {
		case docset.ENOTFOUND:
			return "", err

		case docset.ERATELIMITED:
			rateLimitHits++
			retryAfter, _ := docset.RetryAfter(err)
			if retryAfter <= 0 {
				retryAfter = limitBackoff(rateLimitHits)
			}
			if logger != nil {
				logger("rate limited (429) for %s, pausing %s", url, retryAfter)
			}
			if gate != nil {
				if perr := gate.Pause(ctx, retryAfter); perr != nil {
					return "", perr
				}
			} else {
				select {
				case <-ctx.Done():
					return "", ctx.Err()
				case <-time.After(retryAfter):
				}
			}
			// The pause already handled the back-off; re-run the same
			// attempt index.
			continue

		default:
			lastErr = err
			attempt++
			if attempt >= maxAttempts {
				break
			}
			wait := backoff(attempt)
			if logger != nil {
				logger("retry %s (attempt %d/%d): %v, retrying in %s", url, attempt+1, maxAttempts, err, wait)
			}
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(wait):
			}
		}
	}

	return "", lastErr
}
