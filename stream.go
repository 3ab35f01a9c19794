package typedcsv

import (
	"bufio"
	"errors"
	"io"
	"iter"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

const maxLineSize = 1 << 20 // longest accepted input line

// Stream lazily decodes typed rows from a line-oriented source. It is
// forward-only and single-pass: each pull consumes exactly one input line,
// and a Stream cannot be rewound or restarted once exhausted. A Stream owns
// its cursor state and must not be shared between goroutines.
type Stream struct {
	scanner *bufio.Scanner
	schema  Schema

	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte
	// SkipLines discards this many leading lines before the first row.
	// Skipped lines are never decoded and do not count toward the line
	// numbers reported on records and errors. Default is 0.
	SkipLines int

	line     int
	skipped  bool
	finished bool
	err      error
}

// NewStream creates a Stream that decodes rows from r against schema,
// panicking if r is nil or the schema is empty. Configuration fields may be
// set on the returned Stream before the first call to Next.
func NewStream(r io.Reader, schema Schema) *Stream {
	if r == nil {
		panic("typedcsv: stream source cannot be nil")
	}
	if len(schema) == 0 {
		panic("typedcsv: schema cannot be empty")
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, defaultBufferSize), maxLineSize)

	return &Stream{
		scanner: scanner,
		schema:  append(Schema(nil), schema...),
		Comma:   ',',
		Quote:   '"',
	}
}

// Next decodes and returns the next row. io.EOF signals normal exhaustion;
// after it, every further call returns io.EOF. A *DecodeError reports a bad
// row and leaves the stream positioned at the following line, so the caller
// may keep pulling past it or stop. Any other error comes from the underlying
// source and is terminal.
func (s *Stream) Next() (Record, error) {
	if s == nil || s.scanner == nil {
		return Record{}, io.EOF
	}
	if s.finished {
		if s.err != nil {
			return Record{}, s.err
		}
		return Record{}, io.EOF
	}

	if !s.skipped {
		s.skipped = true
		for i := 0; i < s.SkipLines; i++ {
			if !s.scanner.Scan() {
				return s.finish()
			}
		}
	}

	if !s.scanner.Scan() {
		return s.finish()
	}

	s.line++
	tokens := Tokenize(s.scanner.Text(), s.Comma, s.Quote)
	return DecodeRow(tokens, s.schema, s.line)
}

// finish records exhaustion, capturing any source read error so later pulls
// keep reporting it instead of io.EOF.
func (s *Stream) finish() (Record, error) {
	s.finished = true
	s.err = s.scanner.Err()
	if s.err != nil {
		return Record{}, s.err
	}
	return Record{}, io.EOF
}

// Rows returns a lazy iterator over the remaining rows. Each decoded row is
// yielded with a nil error; a bad row is yielded as a zero Record with its
// *DecodeError, and iteration continues with the next line. Iteration ends
// silently at exhaustion, when the consumer breaks, or after a source read
// error has been yielded.
func (s *Stream) Rows() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			rec, err := s.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) {
				return
			}
			if err != nil {
				var derr *DecodeError
				if !errors.As(err, &derr) {
					return
				}
			}
		}
	}
}

// ReadAll exhausts the stream, collecting rows until io.EOF and stopping at
// the first decode or source error.
func (s *Stream) ReadAll() (records []Record, err error) {
	for {
		rec, err := s.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}
