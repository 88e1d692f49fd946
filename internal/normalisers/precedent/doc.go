// Package precedent parses case decisions from the open API JSON endpoints
// and from the printable decision page used as a fallback.
package precedent
