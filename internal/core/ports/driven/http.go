package driven

import "net/http"

// HTTPDoer sends one HTTP request. *http.Client satisfies it.
// Connectors depend on this rather than on a concrete client so tests
// can substitute a stub and the application can share one pool.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
