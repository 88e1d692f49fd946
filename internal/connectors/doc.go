// Package connectors holds the upstream clients. Each subpackage talks to
// one system and implements the driven source ports:
//
//   - lawgo: the law.go.kr open API (DRF) and printable decision pages
//   - nts: the tax-law system reached through decision-page redirects
//   - comwel: the workers' compensation case pages
//
// Connectors share the retrying HTTP client from adapters/driven/transport.
package connectors
