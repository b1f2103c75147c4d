package memory

import "github.com/anthropics/anthropic-sdk-go"

// Transcript is the ordered record of conversation turns replayed to the
// model on every request. It only grows: turns are never rewritten,
// reordered, or trimmed.
//
// A Transcript belongs to exactly one loop and is not safe for concurrent
// use.
type Transcript struct {
	turns []anthropic.MessageParam
}

func NewTranscript(turns ...anthropic.MessageParam) *Transcript {
	t := &Transcript{}
	t.turns = append(t.turns, turns...)
	return t
}

// Append adds one turn at the end of the record.
func (t *Transcript) Append(turn anthropic.MessageParam) {
	t.turns = append(t.turns, turn)
}

// Len reports the number of recorded turns.
func (t *Transcript) Len() int { return len(t.turns) }

// Messages returns a copy of the turns in order, ready to send.
func (t *Transcript) Messages() []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, len(t.turns))
	copy(out, t.turns)
	return out
}
