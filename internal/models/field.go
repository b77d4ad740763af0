package models

import (
	"encoding/json"
	"strings"
)

// NotAvailable is how a missing field is rendered everywhere outside the engine.
const NotAvailable = "N/A"

// Field is an extracted attribute that may be absent.
type Field struct {
	value   string
	present bool
}

// Extracted wraps a matched value. Blank values are treated as missing.
func Extracted(value string) Field {
	if strings.TrimSpace(value) == "" || value == NotAvailable {
		return Missing()
	}
	return Field{value: value, present: true}
}

func Missing() Field {
	return Field{}
}

func (f Field) Present() bool {
	return f.present
}

func (f Field) String() string {
	if !f.present {
		return NotAvailable
	}
	return f.value
}

func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Field) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = Extracted(s)
	return nil
}
