package shell

import (
	"slices"
	"testing"

	"github.com/javiermolinar/roboticarm/internal/arm"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"r", []string{"rm", "replay"}},
		{"siz", []string{"size"}},
		{"addd", []string{"add"}},
		{"move", []string{"mv"}},
		{"Remove", []string{"rm"}},
		{"redo", []string{"replay"}},
		{"zzz", nil},
		{"rply", []string{"replay"}},
		{"sze", []string{"size"}},
		{"rmv", []string{"mv", "rm"}},
		{"udno", []string{"undo"}},
		{"mvoe", []string{"mv"}},
		{"SZE", []string{"size"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Suggest(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCommands_CoverEveryKind(t *testing.T) {
	names := make(map[string]bool)
	for _, doc := range Commands() {
		names[doc.Name] = true
	}
	for _, k := range arm.Kinds() {
		if !names[string(k)] {
			t.Errorf("help listing is missing %q", k)
		}
	}
	if !names["exit"] {
		t.Error("help listing is missing exit")
	}
}
