// Package statute parses statute responses of the open API into domain
// records: list searches, full statute content and article histories.
//
// The article text is a four level tree. Each level is read with a
// jsonfield.Extractor and its children with jsonfield.Normalize, so an
// article with no paragraphs, one paragraph or many paragraphs all parse
// the same way. Unknown and mis-shaped fields end up in the Unexpected map
// of the node they belong to, keyed by a dotted path naming the level.
package statute
