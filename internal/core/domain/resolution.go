package domain

// SourceSystem identifies which backend produced a resolved document.
type SourceSystem string

// Resolution stages, in fallback order.
const (
	// SourcePrimary is the open API JSON content endpoint.
	SourcePrimary SourceSystem = "PRIMARY"

	// SourceHTMLFallback is the printable decision page on law.go.kr.
	SourceHTMLFallback SourceSystem = "HTML_FALLBACK"

	// SourceSecondaryJSON is the tax-law system reached through a redirect.
	SourceSecondaryJSON SourceSystem = "SECONDARY_JSON"

	// SourceNone marks a resolution where every source failed.
	SourceNone SourceSystem = "NONE"
)

// IsValid returns true if the source system is recognised.
func (s SourceSystem) IsValid() bool {
	switch s {
	case SourcePrimary, SourceHTMLFallback, SourceSecondaryJSON, SourceNone:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s SourceSystem) String() string {
	return string(s)
}

// Description returns a human-readable description of the source.
func (s SourceSystem) Description() string {
	switch s {
	case SourcePrimary:
		return "Open API (law.go.kr DRF)"
	case SourceHTMLFallback:
		return "Printable page (law.go.kr LSW)"
	case SourceSecondaryJSON:
		return "Tax-law system (taxlaw.nts.go.kr)"
	case SourceNone:
		return "No source succeeded"
	default:
		return "Unknown"
	}
}

// ResolvedContent is the outcome of resolving one precedent.
// Record is nil when every source failed; Raw still carries the last
// payload seen for diagnostics.
type ResolvedContent struct {
	// TraceID correlates log lines of one resolution.
	TraceID string `json:"trace_id" yaml:"trace_id"`

	SourceSystem SourceSystem `json:"source_system" yaml:"source_system"`
	Raw          *RawPayload  `json:"raw,omitempty" yaml:"raw,omitempty"`
	Record       *Precedent   `json:"record,omitempty" yaml:"record,omitempty"`

	// Supplemented reports whether tertiary metadata changed the record.
	Supplemented bool `json:"supplemented" yaml:"supplemented"`

	// Attempts lists the stages tried, in order.
	Attempts []SourceSystem `json:"attempts" yaml:"attempts"`
}

// HasRecord reports whether a typed record was produced.
func (r *ResolvedContent) HasRecord() bool {
	return r != nil && r.Record != nil
}

// FallbackPage is the outcome of fetching the printable decision page.
type FallbackPage struct {
	Raw    *RawPayload
	Record *Precedent

	// Location is set when the page redirected instead of rendering.
	Location string

	// SecondaryID is the ntstDcmId carried by a redirect to the tax-law
	// system. It is empty for other redirects.
	SecondaryID string
}

// IsRedirect reports whether the page answered with a redirect.
func (p *FallbackPage) IsRedirect() bool {
	return p != nil && p.Location != ""
}

// ResolveOptions tunes one content resolution.
type ResolveOptions struct {
	// Name is the case name, passed to the content endpoint (LM).
	Name string

	// DataSource is the data source tag known from a list hit. It decides
	// supplement eligibility when the resolved record carries none.
	DataSource string

	// SkipSupplement disables the tertiary metadata step.
	SkipSupplement bool
}
