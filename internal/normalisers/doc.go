// Package normalisers turns upstream payloads into domain records.
// Each subpackage knows one payload family: jsonfield holds the shared
// field extraction, statute and precedent parse open API JSON, html
// cleans and parses markup, and nts and comwel parse the fallback sources.
//
// Normalisers never fail on shape mismatches; they record them on the
// record's unexpected-field map instead.
package normalisers
