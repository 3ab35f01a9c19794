package typedcsv

import (
	"errors"
	"fmt"
)

// ErrFieldCount is returned when a row's field count does not match the schema arity.
var ErrFieldCount = errors.New("typedcsv: wrong number of fields")

// Schema is the ordered list of column kinds a row must decode into.
// Its length fixes the arity of every record for the lifetime of a Stream.
type Schema []Kind

// DecodeError locates the first failure within a row. Line is the 1-based
// data row number (lines skipped via Stream.SkipLines are not counted) and
// Column is the 0-based field index.
type DecodeError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the decode error message with the stored line, column, and Err values.
func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("typedcsv: decode error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so DecodeError participates in errors.Unwrap.
func (e *DecodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Record is one fully decoded row: a fixed-arity tuple of values whose types
// match the schema positionally. Records are freshly constructed per row and
// immutable once returned, so a consumer may retain one while the stream
// advances.
type Record struct {
	line   int
	values []any
}

// NewRecord builds a Record directly from already-typed values. The decoder
// produces records itself; this constructor exists for callers that feed a
// Writer from values they did not decode.
func NewRecord(values ...any) Record {
	return Record{values: values}
}

// Len reports the record's arity.
func (r Record) Len() int {
	return len(r.values)
}

// Line reports the 1-based data row number the record was decoded from,
// or zero for records built with NewRecord.
func (r Record) Line() int {
	return r.line
}

// Value returns field i untyped.
func (r Record) Value(i int) any {
	return r.values[i]
}

// String returns field i, panicking if the column kind is not KindString.
func (r Record) String(i int) string { return at[string](r, i) }

// Int returns field i, panicking if the column kind is not KindInt.
func (r Record) Int(i int) int { return at[int](r, i) }

// Int64 returns field i, panicking if the column kind is not KindInt64.
func (r Record) Int64(i int) int64 { return at[int64](r, i) }

// Uint returns field i, panicking if the column kind is not KindUint.
func (r Record) Uint(i int) uint64 { return at[uint64](r, i) }

// Float returns field i, panicking if the column kind is not KindFloat.
func (r Record) Float(i int) float64 { return at[float64](r, i) }

// Bool returns field i, panicking if the column kind is not KindBool.
func (r Record) Bool(i int) bool { return at[bool](r, i) }

func at[T any](r Record, i int) T {
	v, ok := r.values[i].(T)
	if !ok {
		panic(fmt.Sprintf("typedcsv: field %d holds %T, not %T", i, r.values[i], v))
	}
	return v
}

// DecodeRow converts one row of tokens into a Record using the schema, in
// schema order. The token count must equal the schema arity; a mismatch is a
// DecodeError carrying ErrFieldCount at the first missing or surplus column.
// The first field that fails conversion aborts the row with a DecodeError at
// that column; later fields are not converted and no partial record is ever
// returned. line is the 1-based data row number recorded on both the Record
// and any error, for every arity including single-column schemas.
func DecodeRow(tokens []string, schema Schema, line int) (Record, error) {
	if len(tokens) != len(schema) {
		column := len(tokens)
		if len(schema) < column {
			column = len(schema)
		}
		return Record{}, &DecodeError{Line: line, Column: column, Err: ErrFieldCount}
	}

	values := make([]any, len(schema))
	for i, kind := range schema {
		v, err := Convert(kind, tokens[i])
		if err != nil {
			return Record{}, &DecodeError{Line: line, Column: i, Err: err}
		}
		values[i] = v
	}
	return Record{line: line, values: values}, nil
}
