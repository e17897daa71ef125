// Package selection normalizes stored country field values against a
// catalog.
//
// Storage layers hand over values in many shapes: JSON strings, bare codes,
// slices, or a value normalized earlier. DecodeRaw folds all of them into a
// RawValue, and Normalize turns that into a Single or Multi value carrying the
// full option list with the chosen entries marked. Normalization is lenient by
// construction: a form must render even when the stored data is stale or
// malformed, so nothing here returns an error.
package selection
