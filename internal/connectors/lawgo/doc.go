// Package lawgo provides the connector for the law.go.kr open API (DRF).
//
// # Endpoints
//
// Every call is a GET with the user key (OC), a target and type=JSON:
//
//   - lawSearch.do: list queries (target=law, prec)
//   - lawService.do: content lookups (target=law, eflaw, lsJoHstInf, prec)
//
// The printable decision page (LSW/precInfoP.do) is served by the same
// site but outside the API; PageFetcher reads it and reports redirects
// to the tax-law system instead of following them.
//
// # Errors
//
// Non-2xx responses are returned as *APIError. Bodies that are not JSON,
// or JSON without the expected root, are not errors: the result carries
// the raw payload and no content.
package lawgo
