package terminal

import (
	"errors"
	"testing"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		text string
		want Input
	}{
		{"13", Input{Action: ActionClick, Position: 13}},
		{"  7 ", Input{Action: ActionClick, Position: 7}},
		{"42", Input{Action: ActionClick, Position: 42}},
		{"p", Input{Action: ActionPause}},
		{"Pause", Input{Action: ActionPause}},
		{"r", Input{Action: ActionResume}},
		{"n", Input{Action: ActionReset}},
		{"redo", Input{Action: ActionReset}},
		{"q", Input{Action: ActionQuit}},
		{"?", Input{Action: ActionHelp}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseInput(tt.text)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.text, err)
			}
			if got != tt.want {
				t.Fatalf("parse %q = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseInputRejectsUnknown(t *testing.T) {
	for _, text := range []string{"", "x", "1.5", "move 3"} {
		if _, err := ParseInput(text); !errors.Is(err, ErrUnknownInput) {
			t.Fatalf("parse %q err = %v, want ErrUnknownInput", text, err)
		}
	}
}
