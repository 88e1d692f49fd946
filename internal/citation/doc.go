// Package citation extracts structured references from the free-text
// reference fields of case decisions.
//
// Article references ("참조조문") are split into segments and each segment
// resolves a law name and an article key. A segment that names no law, or
// refers back with "동법"/"같은 법", inherits the law name of the segment
// before it. Precedent references ("참조판례") yield a court, a decision date
// and a normalised case number.
package citation
