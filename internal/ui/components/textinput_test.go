package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestTextInput_NumericOnlyFilters(t *testing.T) {
	ti := NewTextInput("answer", true, 12)
	for _, r := range "1a2,3x-" {
		ti, _ = ti.Update(key(r))
	}
	if got := ti.Value(); got != "12,3-" {
		t.Errorf("Value = %q, want %q", got, "12,3-")
	}
}

func TestTextInput_NumericValue(t *testing.T) {
	ti := NewTextInput("answer", true, 12)
	ti.Model.SetValue("12,345")
	n, err := ti.NumericValue()
	if err != nil || n != 12345 {
		t.Errorf("NumericValue = %d, %v; want 12345", n, err)
	}
}

func TestTextInput_Reset(t *testing.T) {
	ti := NewTextInput("answer", false, 12)
	ti.Model.SetValue("99")
	ti.Submit(true)
	ti.Reset()
	if ti.Value() != "" {
		t.Errorf("Value = %q after reset", ti.Value())
	}
	if ti.View() == "" {
		t.Error("expected a rendered input")
	}
}
