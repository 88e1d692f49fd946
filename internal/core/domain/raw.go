package domain

// RawPayload represents the undecoded body of one upstream response.
// It is kept next to parsed records for diagnostics.
type RawPayload struct {
	// URL is the request URL that produced the payload.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"status_code,omitempty" yaml:"status_code,omitempty"`

	// ContentType is the response media type (e.g., "application/json").
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`

	// Body is the decoded response text.
	Body string `json:"body,omitempty" yaml:"body,omitempty"`
}

// IsEmpty reports whether the payload carries no body.
func (p *RawPayload) IsEmpty() bool {
	return p == nil || p.Body == ""
}

// UnexpectedFields maps a dotted field path to the serialised raw value.
// It collects unknown fields and fields whose shape did not match.
type UnexpectedFields map[string]string

// OrNil returns nil for an empty map so it is omitted on output.
func (u UnexpectedFields) OrNil() UnexpectedFields {
	if len(u) == 0 {
		return nil
	}
	return u
}
