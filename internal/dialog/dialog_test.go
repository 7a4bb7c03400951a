package dialog

import (
	"bytes"
	"strings"
	"testing"

	"feedscroll/internal/config"
)

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  да \n", true},
		{"是\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
		{"y", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := AskYesNo(strings.NewReader(tt.input), &out, "debug? ")
		if got != tt.want {
			t.Errorf("AskYesNo(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if out.String() != "debug? " {
			t.Errorf("prompt written as %q", out.String())
		}
	}
}

func TestAskDebugNoneNeverPrompts(t *testing.T) {
	if AskDebug(config.PromptNone) {
		t.Fatalf("prompt none must answer no")
	}
}
