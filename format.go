package tod

import "fmt"

// TextLayout is the canonical short form: hours, minutes and seconds,
// zero-padded and separated by hyphens. Microseconds are not included.
const TextLayout = "%02d-%02d-%02d"

const textLen = len("HH-MM-SS")

func Format(t Time) string {
	return string(t.AppendText(make([]byte, 0, textLen)))
}

func (t Time) String() string {
	return Format(t)
}

func (t Time) AppendText(buf []byte) []byte {
	return fmt.Appendf(buf, TextLayout, t.hour, t.minute, t.second)
}

// MarshalText makes Time render in the short form in JSON and other
// text-based encodings. There is intentionally no UnmarshalText.
func (t Time) MarshalText() ([]byte, error) {
	return t.AppendText(make([]byte, 0, textLen)), nil
}

func (n NullTime) String() string {
	if !n.Valid {
		return "NULL"
	}
	return Format(n.Time)
}
