package testutil

import (
	"errors"
	"fmt"
	"sync"

	"dupe/internal/dupe"
)

// ErrScriptExhausted is returned by ScriptedPrompter once every answer has been used.
var ErrScriptExhausted = errors.New("scripted prompter: no answers left")

// ScriptedPrompter answers questions from a fixed list and records the conversation.
type ScriptedPrompter struct {
	mu        sync.Mutex
	answers   []string
	questions []string
	said      []string
}

// NewScriptedPrompter creates a prompter that returns answers in order.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

func (p *ScriptedPrompter) Ask(question string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.questions = append(p.questions, question)
	if len(p.answers) == 0 {
		return "", ErrScriptExhausted
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *ScriptedPrompter) Say(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.said = append(p.said, fmt.Sprintf(format, args...))
}

// Questions returns every question asked so far.
func (p *ScriptedPrompter) Questions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.questions...)
}

// Said returns every informational line written so far.
func (p *ScriptedPrompter) Said() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.said...)
}

// Remaining returns the number of unused answers.
func (p *ScriptedPrompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.answers)
}

// Compile-time check
var _ dupe.Prompter = (*ScriptedPrompter)(nil)
