package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Text is a JSON scalar read as a string. Strings are kept as-is, numbers keep
// their literal form and true becomes "true". false, null and missing fields
// are empty. Objects and arrays are rejected.
type Text string

// String returns the text.
func (t Text) String() string { return string(t) }

// IsEmpty reports whether the text is empty.
func (t Text) IsEmpty() bool { return t == "" }

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 't':
		*t = "true"
	case 'f', 'n':
		*t = ""
	case '{', '[':
		return fmt.Errorf("content: expected a scalar, got %s", kindOf(data[0]))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*t = Text(formatNumber(n))
	}
	return nil
}

// formatNumber renders a JSON number the way it would print as a string:
// integral values without a fraction, zero as empty.
func formatNumber(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func kindOf(b byte) string {
	if b == '{' {
		return "object"
	}
	return "array"
}
