package typedcsv

// Tokenize splits one line into fields, honoring a single-character delimiter
// and quote. The scanner tracks quoted spans before splitting, so a delimiter
// inside a quoted field stays in one token. Quoting is deliberately simple:
// a quote opens a span only at the start of a field, the next quote closes it,
// and quote characters anywhere else are literal. There is no doubled-quote
// escaping and no spanning of line boundaries; an unterminated span runs to
// the end of the line with the opening quote stripped.
//
// A zero delimiter or quote falls back to ',' and '"'. The empty line yields
// a single empty field. Tokenize is a pure function of its arguments.
func Tokenize(line string, delimiter, quote byte) []string {
	if delimiter == 0 {
		delimiter = ','
	}
	if quote == 0 {
		quote = '"'
	}

	fields := make([]string, 0, 8)
	buf := make([]byte, 0, 32)
	inQuotes := false
	atFieldStart := true

	for i := 0; i < len(line); i++ {
		c := line[i]

		if inQuotes {
			if c == quote {
				inQuotes = false
			} else {
				buf = append(buf, c)
			}
			atFieldStart = false
			continue
		}

		switch c {
		case delimiter:
			fields = append(fields, string(buf))
			buf = buf[:0]
			atFieldStart = true
		case quote:
			if atFieldStart {
				inQuotes = true
			} else {
				buf = append(buf, c)
			}
			atFieldStart = false
		default:
			buf = append(buf, c)
			atFieldStart = false
		}
	}

	fields = append(fields, string(buf))
	return fields
}
