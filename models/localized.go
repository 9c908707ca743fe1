package models

import (
	"encoding/json"
	"fmt"
)

// LocalizedText holds the fixed set of language slots used across the
// directory. Payloads are validated here at the boundary: unknown language
// keys are rejected instead of silently dropped, so inside the core every
// slot is structurally present and comparisons never deal with missing
// keys.
type LocalizedText struct {
	En string `gorm:"column:en" json:"en"`
	De string `gorm:"column:de" json:"de"`
	Ja string `gorm:"column:ja" json:"ja"`
}

// UnmarshalJSON fills the fixed slots and rejects any other key.
func (l *LocalizedText) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		switch key {
		case "en":
			l.En = value
		case "de":
			l.De = value
		case "ja":
			l.Ja = value
		default:
			return fmt.Errorf("unsupported language %q (supported: en, de, ja)", key)
		}
	}
	return nil
}

// IsEmpty reports whether no slot carries text.
func (l LocalizedText) IsEmpty() bool {
	return l.En == "" && l.De == "" && l.Ja == ""
}
