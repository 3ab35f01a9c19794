// # TypedCSV: A Streaming Typed-Row CSV Decoder for Go
//
// TypedCSV turns lines of delimited, optionally quoted text into strongly-typed rows according to a caller-declared column schema. It is designed for embedding as a lazy row source: the consumer pulls one decoded row per input line and receives decode failures as structured errors carrying line and column location.
//
// # Features
//
// - Lazy, pull-based `Stream` over any io.Reader with custom field and quote separators.
// - Runtime column schemas (`Schema`, `Kind`) mapping each field to string, int, int64, uint, float, or bool.
// - Structured error reporting via `DecodeError`, `ErrBadValue`, and `ErrFieldCount`; a bad row never stops iteration unless the consumer wants it to.
// - Quote-aware single-pass tokenizer: delimiters inside quoted fields stay in one token. Single-line fields only, no doubled-quote escaping.
// - Typed `Writer` that re-emits decoded records, plus Go 1.23 `Rows()` iteration and a cobra CLI under cmd/typedcsv.
//
// # Getting Started
//
// The module path is `typedcsv`. Declare a schema, wrap your source in a Stream, and pull:
//
//	stream := typedcsv.NewStream(file, typedcsv.Schema{typedcsv.KindString, typedcsv.KindInt, typedcsv.KindFloat})
//	for rec, err := range stream.Rows() {
//		...
//	}
package typedcsv
