package dupe_test

import (
	"errors"
	"testing"

	"dupe/internal/dupe"
	"dupe/internal/testutil"
)

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		name      string
		def       dupe.Default
		answers   []string
		want      bool
		wantAsked int
		wantQ     string
	}{
		{name: "y", def: dupe.DefaultNone, answers: []string{"y"}, want: true, wantAsked: 1, wantQ: "go? [y/n]"},
		{name: "ye", def: dupe.DefaultNone, answers: []string{"ye"}, want: true, wantAsked: 1, wantQ: "go? [y/n]"},
		{name: "YES", def: dupe.DefaultNone, answers: []string{"YES"}, want: true, wantAsked: 1, wantQ: "go? [y/n]"},
		{name: "n", def: dupe.DefaultYes, answers: []string{"n"}, want: false, wantAsked: 1, wantQ: "go? [Y/n]"},
		{name: "No with spaces", def: dupe.DefaultYes, answers: []string{"  No "}, want: false, wantAsked: 1, wantQ: "go? [Y/n]"},
		{name: "empty uses yes default", def: dupe.DefaultYes, answers: []string{""}, want: true, wantAsked: 1, wantQ: "go? [Y/n]"},
		{name: "empty uses no default", def: dupe.DefaultNo, answers: []string{""}, want: false, wantAsked: 1, wantQ: "go? [y/N]"},
		{name: "empty without default asks again", def: dupe.DefaultNone, answers: []string{"", "n"}, want: false, wantAsked: 2, wantQ: "go? [y/n]"},
		{name: "unrecognized asks again", def: dupe.DefaultNo, answers: []string{"maybe", "nope", "yes"}, want: true, wantAsked: 3, wantQ: "go? [y/N]"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := testutil.NewScriptedPrompter(tt.answers...)
			got, err := dupe.AskYesNo(p, "go?", tt.def)
			if err != nil {
				t.Fatalf("AskYesNo() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AskYesNo() = %v, want %v", got, tt.want)
			}

			questions := p.Questions()
			if len(questions) != tt.wantAsked {
				t.Fatalf("asked %d times, want %d", len(questions), tt.wantAsked)
			}
			if questions[0] != tt.wantQ {
				t.Errorf("question = %q, want %q", questions[0], tt.wantQ)
			}
			if hints := len(p.Said()); hints != tt.wantAsked-1 {
				t.Errorf("printed %d hints, want %d", hints, tt.wantAsked-1)
			}
		})
	}
}

func TestAskYesNo_InvalidDefault(t *testing.T) {
	t.Parallel()
	p := testutil.NewScriptedPrompter("y")
	_, err := dupe.AskYesNo(p, "go?", dupe.Default("maybe"))
	if !errors.Is(err, dupe.ErrInvalidDefault) {
		t.Fatalf("AskYesNo() error = %v, want ErrInvalidDefault", err)
	}
	if len(p.Questions()) != 0 {
		t.Errorf("asked %q, want no question", p.Questions())
	}
}

func TestAskYesNo_PrompterError(t *testing.T) {
	t.Parallel()
	p := testutil.NewScriptedPrompter()
	if _, err := dupe.AskYesNo(p, "go?", dupe.DefaultYes); !errors.Is(err, testutil.ErrScriptExhausted) {
		t.Fatalf("AskYesNo() error = %v, want ErrScriptExhausted", err)
	}
}

func TestParseDefault(t *testing.T) {
	tests := []struct {
		in      string
		want    dupe.Default
		wantErr bool
	}{
		{in: "", want: dupe.DefaultNone},
		{in: "yes", want: dupe.DefaultYes},
		{in: " YES ", want: dupe.DefaultYes},
		{in: "no", want: dupe.DefaultNo},
		{in: "No", want: dupe.DefaultNo},
		{in: "y", wantErr: true},
		{in: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := dupe.ParseDefault(tt.in)
			if tt.wantErr {
				if !errors.Is(err, dupe.ErrInvalidDefault) {
					t.Fatalf("ParseDefault(%q) error = %v, want ErrInvalidDefault", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDefault(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDefault(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
