// Package transport provides the shared outbound HTTP client.
//
// Every connector sends its requests through a RetryTransport, which
// retries server errors, throttling responses and transport failures
// with a linear backoff. Below it a ReadTimeoutTransport fails any read
// that stalls past the configured read timeout. NewHTTPClient wires both
// over a pooled http.Transport configured from domain.HTTPSettings.
package transport
