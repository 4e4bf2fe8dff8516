package dupe

import (
	"errors"
	"fmt"
	"strings"
)

// Prompter is the operator's side of the interactive protocol.
// Implementations deal in raw lines; parsing and validation live here.
type Prompter interface {
	// Ask writes question and blocks until the operator answers with one line.
	// The returned answer does not include the line terminator.
	Ask(question string) (string, error)

	// Say writes an informational line.
	Say(format string, args ...any)
}

// Default is the answer assumed when the operator submits an empty line.
type Default string

const (
	DefaultNone Default = ""
	DefaultYes  Default = "yes"
	DefaultNo   Default = "no"
)

// ErrInvalidDefault is returned when a yes/no prompt is configured with a
// default other than "yes", "no" or none.
var ErrInvalidDefault = errors.New("invalid default answer")

// ParseDefault converts a configuration value into a Default.
func ParseDefault(s string) (Default, error) {
	d := Default(strings.ToLower(strings.TrimSpace(s)))
	if _, err := d.suffix(); err != nil {
		return DefaultNone, err
	}
	return d, nil
}

func (d Default) suffix() (string, error) {
	switch d {
	case DefaultNone:
		return " [y/n]", nil
	case DefaultYes:
		return " [Y/n]", nil
	case DefaultNo:
		return " [y/N]", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDefault, string(d))
	}
}

var yesNoAnswers = map[string]bool{
	"yes": true,
	"ye":  true,
	"y":   true,
	"no":  false,
	"n":   false,
}

const yesNoHint = "Please respond with 'yes' or 'no' (or 'y' or 'n')."

// AskYesNo asks question until the operator gives a recognized answer.
// An empty answer resolves to def unless def is DefaultNone.
func AskYesNo(p Prompter, question string, def Default) (bool, error) {
	suffix, err := def.suffix()
	if err != nil {
		return false, err
	}

	for {
		answer, err := p.Ask(question + suffix)
		if err != nil {
			return false, fmt.Errorf("reading answer: %w", err)
		}

		choice := strings.ToLower(strings.TrimSpace(answer))
		if choice == "" && def != DefaultNone {
			return yesNoAnswers[string(def)], nil
		}
		if v, ok := yesNoAnswers[choice]; ok {
			return v, nil
		}
		p.Say(yesNoHint)
	}
}
