// Package jsonfield reads loosely shaped JSON from the open API.
//
// The API encodes the same field in several shapes: an absent field, an
// empty string, a single object or an array all appear for collections,
// and numbers and dates arrive as JSON numbers or as strings. This package
// turns those shapes into typed values without failing a whole record:
// every value whose shape does not match is handed to a MismatchFunc and
// the accessor returns nil.
//
// Values come from Decode, which keeps numbers as json.Number so integer
// fields never pass through float64.
package jsonfield
