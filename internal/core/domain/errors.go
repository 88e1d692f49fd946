package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTypeMismatch indicates a JSON value did not have the expected shape.
	// Parsers record mismatches on the record instead of returning this
	// error, except where a whole collection cannot be normalised.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrEmptyResponse indicates an endpoint answered with an empty body
	// or an envelope without the expected root field.
	ErrEmptyResponse = errors.New("empty response")

	// Transport Errors.

	// ErrRetriesExhausted indicates every retry attempt failed.
	ErrRetriesExhausted = errors.New("retries exhausted")

	// ErrUnexpectedStatus indicates a non-success HTTP status.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrRedirect indicates a redirect response that was not followed.
	ErrRedirect = errors.New("redirect not followed")

	// Source Errors.

	// ErrSourceFailed indicates a content source could not produce a record.
	ErrSourceFailed = errors.New("source failed")

	// ErrMissingAPIKey indicates the open API user key (OC) is not configured.
	ErrMissingAPIKey = errors.New("open API key (OC) not configured")
)
