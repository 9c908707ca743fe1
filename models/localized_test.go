package models

import (
	"encoding/json"
	"testing"
)

func TestLocalizedTextUnmarshalFillsSlots(t *testing.T) {
	var text LocalizedText
	if err := json.Unmarshal([]byte(`{"en":"painter","ja":"画家"}`), &text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text.En != "painter" || text.Ja != "画家" || text.De != "" {
		t.Fatalf("unexpected slots: %+v", text)
	}
	if text.IsEmpty() {
		t.Fatalf("text with content reported empty")
	}
}

func TestLocalizedTextRejectsUnknownLanguage(t *testing.T) {
	var text LocalizedText
	err := json.Unmarshal([]byte(`{"en":"painter","fr":"peintre"}`), &text)
	if err == nil {
		t.Fatalf("expected unknown language to be rejected")
	}
}

func TestLocalizedTextIsEmpty(t *testing.T) {
	if !(LocalizedText{}).IsEmpty() {
		t.Fatalf("zero value should be empty")
	}
}
