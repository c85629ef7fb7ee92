// Package clients provides the instrumented HTTP client used by every
// outbound adapter: the storefront backend, reCAPTCHA verification and
// health probes.
package clients

import "errors"

// Infrastructure failures. Adapters translate these into domain errors.
var (
	// ErrCircuitOpen is returned without contacting the downstream while the breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last transport error once no attempt produced a response.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)
