package typedcsv

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamNext(t *testing.T) {
	t.Parallel()

	input := "\"Alice\",30,5.5\nBob,25,5.9\n"
	stream := NewStream(strings.NewReader(input), Schema{KindString, KindInt, KindFloat})

	first, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, first.Line())
	assert.Equal(t, "Alice", first.String(0))
	assert.Equal(t, 30, first.Int(1))
	assert.Equal(t, 5.5, first.Float(2))

	second, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, second.Line())
	assert.Equal(t, "Bob", second.String(0))

	// Exhaustion is stable: every further pull reports io.EOF, never an error.
	for i := 0; i < 3; i++ {
		_, err := stream.Next()
		assert.ErrorIs(t, err, io.EOF)
	}
}

func TestStreamContinuesPastBadRow(t *testing.T) {
	t.Parallel()

	input := "1,2\nx,2\n3,4\n"
	stream := NewStream(strings.NewReader(input), Schema{KindInt, KindInt})

	first, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, first.Int(0))

	_, err = stream.Next()
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 2, derr.Line)
	assert.Equal(t, 0, derr.Column)

	third, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, third.Line())
	assert.Equal(t, 3, third.Int(0))
	assert.Equal(t, 4, third.Int(1))

	_, err = stream.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamSkipLines(t *testing.T) {
	t.Parallel()

	stream := NewStream(strings.NewReader("header\n1,2\n"), Schema{KindInt, KindInt})
	stream.SkipLines = 1

	rec, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Line(), "skipped lines must not count toward row line numbers")
	assert.Equal(t, 1, rec.Int(0))
	assert.Equal(t, 2, rec.Int(1))

	_, err = stream.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamSkipLinesErrorLineNumber(t *testing.T) {
	t.Parallel()

	stream := NewStream(strings.NewReader("header\n1,oops\n"), Schema{KindInt, KindInt})
	stream.SkipLines = 1

	_, err := stream.Next()
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 1, derr.Line)
	assert.Equal(t, 1, derr.Column)
}

func TestStreamSkipBeyondInput(t *testing.T) {
	t.Parallel()

	stream := NewStream(strings.NewReader("only line\n"), Schema{KindString})
	stream.SkipLines = 5

	_, err := stream.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamEmptyInput(t *testing.T) {
	t.Parallel()

	stream := NewStream(strings.NewReader(""), Schema{KindString})
	_, err := stream.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamEmptyLine(t *testing.T) {
	t.Parallel()

	// A blank line is one empty field: fine for a single string column,
	// a field-count mismatch for wider schemas.
	rec, err := NewStream(strings.NewReader("\n"), Schema{KindString}).Next()
	require.NoError(t, err)
	assert.Equal(t, "", rec.String(0))

	_, err = NewStream(strings.NewReader("\n"), Schema{KindString, KindString}).Next()
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.ErrorIs(t, err, ErrFieldCount)
	assert.Equal(t, 1, derr.Column)
}

func TestStreamCRLF(t *testing.T) {
	t.Parallel()

	stream := NewStream(strings.NewReader("1,2\r\n3,4\r\n"), Schema{KindInt, KindInt})

	first, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, first.Int(1))

	second, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, 4, second.Int(1))
}

func TestStreamCustomDelimiterAndQuote(t *testing.T) {
	t.Parallel()

	stream := NewStream(strings.NewReader("'a;b';1\n"), Schema{KindString, KindInt})
	stream.Comma = ';'
	stream.Quote = '\''

	rec, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, "a;b", rec.String(0))
	assert.Equal(t, 1, rec.Int(1))
}

func TestStreamNoTrimming(t *testing.T) {
	t.Parallel()

	_, err := NewStream(strings.NewReader(" 1,2\n"), Schema{KindInt, KindInt}).Next()
	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 0, derr.Column)
}

func TestStreamRows(t *testing.T) {
	t.Parallel()

	input := "1,2\nbad,2\n3,4\n"
	stream := NewStream(strings.NewReader(input), Schema{KindInt, KindInt})

	var sums []int
	var decodeErrs []*DecodeError
	for rec, err := range stream.Rows() {
		if err != nil {
			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			decodeErrs = append(decodeErrs, derr)
			continue
		}
		sums = append(sums, rec.Int(0)+rec.Int(1))
	}

	assert.Equal(t, []int{3, 7}, sums)
	require.Len(t, decodeErrs, 1)
	assert.Equal(t, 2, decodeErrs[0].Line)
}

func TestStreamRowsEarlyBreak(t *testing.T) {
	t.Parallel()

	stream := NewStream(strings.NewReader("1\n2\n3\n"), Schema{KindInt})

	var got []int
	for rec, err := range stream.Rows() {
		require.NoError(t, err)
		got = append(got, rec.Int(0))
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)

	// Breaking out of Rows leaves the stream usable from the next line.
	rec, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Int(0))
}

func TestStreamReadAll(t *testing.T) {
	t.Parallel()

	stream := NewStream(strings.NewReader("1\n2\n3\n"), Schema{KindInt})
	records, err := stream.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 2, records[1].Int(0))
	assert.Equal(t, 2, records[1].Line())
}

func TestStreamReadAllStopsAtError(t *testing.T) {
	t.Parallel()

	stream := NewStream(strings.NewReader("1\nbad\n3\n"), Schema{KindInt})
	records, err := stream.ReadAll()
	assert.Nil(t, records)

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 2, derr.Line)
}

type failingReader struct {
	data string
	err  error
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, r.data), nil
	}
	return 0, r.err
}

func TestStreamSourceError(t *testing.T) {
	t.Parallel()

	srcErr := errors.New("disk on fire")
	stream := NewStream(&failingReader{data: "1\n", err: srcErr}, Schema{KindInt})

	rec, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Int(0))

	// Source failures are terminal and never reported as io.EOF.
	_, err = stream.Next()
	require.ErrorIs(t, err, srcErr)
	var derr *DecodeError
	assert.False(t, errors.As(err, &derr))

	_, err = stream.Next()
	assert.ErrorIs(t, err, srcErr)
}

func TestStreamSourceErrorEndsRows(t *testing.T) {
	t.Parallel()

	srcErr := errors.New("torn cable")
	stream := NewStream(&failingReader{data: "1\n", err: srcErr}, Schema{KindInt})

	var rows, errs int
	for _, err := range stream.Rows() {
		if err != nil {
			errs++
			continue
		}
		rows++
	}
	assert.Equal(t, 1, rows)
	assert.Equal(t, 1, errs)
}

func TestNewStreamPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewStream(nil, Schema{KindString}) })
	assert.Panics(t, func() { NewStream(strings.NewReader(""), nil) })
}

func TestStreamSchemaCopied(t *testing.T) {
	t.Parallel()

	schema := Schema{KindInt, KindInt}
	stream := NewStream(strings.NewReader("1,2\n"), schema)
	schema[1] = KindString // mutation after construction must not leak in

	rec, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Int(1))
}
