package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/moonhaus-contact-api/internal/platform/logging"
)

// jitterFraction is the randomization applied to each backoff delay (±25%).
const jitterFraction = 0.25

// doWithRetry executes req under the client's backoff policy. Only
// idempotent methods are retried; anything else gets a single attempt. The
// body is buffered so it can be replayed. A response that is never retried
// (success, non-retryable status or the final attempt) is written to resp and
// the caller owns its body; intermediate responses are drained before sleeping.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	maxAttempts := c.retryCfg.maxAttempts
	if !isIdempotent(req.Method) {
		maxAttempts = 1
	}

	bodyBytes, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	var (
		last    *http.Response
		attempt int
	)

	operation := func() (struct{}, error) {
		attempt++
		resetRequestBody(req, bodyBytes)

		r, err := c.httpClient.Do(req)
		if err != nil {
			last = nil
			if !isRetryable(err) {
				return struct{}{}, backoff.Permanent(err)
			}
			return struct{}{}, err
		}

		last = r
		if !isRetryableStatus(r.StatusCode) {
			return struct{}{}, nil
		}

		statusErr := fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if hint := retryAfter(r.Header.Get("Retry-After"), time.Now()); hint > 0 {
			return struct{}{}, fmt.Errorf("%w: %w", statusErr,
				&backoff.RetryAfterError{Duration: min(hint, c.retryCfg.maxInterval)})
		}
		return struct{}{}, statusErr
	}

	notify := func(err error, delay time.Duration) {
		if last != nil {
			drainResponseBody(last)
			last = nil
		}
		logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
			slog.String("operation", "httpclient.Do"),
			slog.String("method", req.Method),
			slog.String("url", req.URL.Redacted()),
			slog.String("peer_service", c.serviceName),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", maxAttempts),
			slog.Duration("backoff", delay),
			slog.Any("error", err),
		)
	}

	_, err = backoff.Retry(ctx, operation,
		backoff.WithBackOff(newBackOff(c.retryCfg)),
		backoff.WithMaxTries(uint(maxAttempts)),
		backoff.WithNotify(notify),
	)

	*resp = last

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Unwrap()
	}
	return err
}

// newBackOff builds a fresh exponential policy; the type is stateful so each
// request gets its own.
func newBackOff(cfg retryConfig) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.initialInterval
	b.MaxInterval = cfg.maxInterval
	b.Multiplier = cfg.multiplier
	b.RandomizationFactor = jitterFraction
	return b
}

func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	bodyBytes, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return bodyBytes, nil
}

func resetRequestBody(req *http.Request, bodyBytes []byte) {
	if bodyBytes == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	req.ContentLength = int64(len(bodyBytes))
}

// drainResponseBody discards the body so the connection can be reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// retryAfter parses a Retry-After header given either as delta seconds or an
// HTTP date. Unparseable or past values yield zero.
func retryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}

// isRetryable reports whether a transport error is worth another attempt.
// Caller cancellation and deadlines are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isIdempotent reports whether a request with method can be replayed
// without side effects beyond the first (RFC 9110 section 9.2.2).
func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace,
		http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// isRetryableStatus reports 429 and 5xx as retryable.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
