// Package buffer implements the text document behind the template editor.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
// Offsets flatten the document into a single grapheme sequence where each
// line break counts as one.
package buffer
