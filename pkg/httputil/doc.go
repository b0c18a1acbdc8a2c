// Package httputil provides HTTP client helpers shared by the langcard
// integrations: retry with exponential backoff and retryable error wrapping.
//
// Transient failures (network faults, timeouts, 5xx responses) should be
// wrapped with [RetryableError] so that [Retry] attempts them again.
// Structured failures reported inside an otherwise successful response must
// not be wrapped; they are returned immediately without another attempt.
package httputil
