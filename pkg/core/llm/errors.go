package llm

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy. Every provider failure wraps exactly one of these
// sentinels so callers can branch with errors.Is. The classification is a
// pass-through of what the underlying API surfaced; nothing is retried here.
var (
	// ErrMissingAPIKey means the provider's credential env var is unset.
	// Always returned before any network call is attempted.
	ErrMissingAPIKey = errors.New("API_KEY_MISSING")

	// ErrAuth means the provider rejected the credentials (401/403).
	ErrAuth = errors.New("PROVIDER_AUTH_ERROR")

	// ErrRateLimit means the provider throttled the request (429).
	ErrRateLimit = errors.New("PROVIDER_RATE_LIMITED")

	// ErrProvider covers every other transport or service failure.
	ErrProvider = errors.New("PROVIDER_ERROR")
)

// classifyStatus maps an HTTP status from a hand-rolled provider call onto
// the taxonomy.
func classifyStatus(provider string, status int, body string) error {
	switch status {
	case 401, 403:
		return fmt.Errorf("%w: %s returned status %d: %s", ErrAuth, provider, status, body)
	case 429:
		return fmt.Errorf("%w: %s returned status %d: %s", ErrRateLimit, provider, status, body)
	default:
		return fmt.Errorf("%w: %s returned status %d: %s", ErrProvider, provider, status, body)
	}
}

// classifyErr maps an SDK error onto the taxonomy. SDKs wrap their HTTP
// status differently, so this falls back to message inspection.
func classifyErr(provider string, err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "unauthorized") || strings.Contains(msg, "invalid api key") ||
		strings.Contains(msg, "permission denied") || strings.Contains(msg, "invalid_api_key"):
		return fmt.Errorf("%w: %s: %v", ErrAuth, provider, err)
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota") || strings.Contains(msg, "resource exhausted"):
		return fmt.Errorf("%w: %s: %v", ErrRateLimit, provider, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrProvider, provider, err)
	}
}
