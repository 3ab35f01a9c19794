package typedcsv

import (
	stdcsv "encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
)

func benchmarkData() string {
	return strings.Repeat(`alpha,12345,67.89
"beta,with comma",-42,0.5
gamma,0,1e3
delta,999999,3.14159
`, 64)
}

func BenchmarkStream(b *testing.B) {
	data := benchmarkData()
	schema := Schema{KindString, KindInt, KindFloat}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		stream := NewStream(strings.NewReader(data), schema)
		for {
			if _, err := stream.Next(); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkEncodingCSVTyped(b *testing.B) {
	data := benchmarkData()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		r := stdcsv.NewReader(strings.NewReader(data))
		for {
			record, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatal(err)
			}
			if _, err := strconv.Atoi(record[1]); err != nil {
				b.Fatal(err)
			}
			if _, err := strconv.ParseFloat(record[2], 64); err != nil {
				b.Fatal(err)
			}
		}
	}
}
