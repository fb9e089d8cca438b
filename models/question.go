// Package models defines the data structures shared across the pipeline.
package models

// MaxQuestionText is the character cap applied to extracted question text.
const MaxQuestionText = 500

// Mode selects which prompt template the composer uses.
type Mode string

const (
	// ModeHint asks the model for a non-revealing hint.
	ModeHint Mode = "hint"
	// ModeAuto asks the model for a single letter answer and applies it.
	ModeAuto Mode = "auto"
)

// Option is a non-owning handle to one selectable control on the page.
// Radio-style controls are exclusive within their group by the document's
// own semantics; checkbox-style controls toggle independently. The core
// only ever selects, it never clears another option in the group.
type Option interface {
	Selected() bool
	SetSelected(v bool)
}

// Question is one logical question extracted from a page: the visible
// text of its enclosing container plus handles to its answer options.
// Questions are transient; they live for a single pipeline run.
type Question struct {
	ID      int // extraction-order index
	Text    string
	Options []Option
}

// OutcomeKind classifies what the resolver did with a model answer.
type OutcomeKind int

const (
	// OutcomeApplied means a letter was parsed and its option selected.
	OutcomeApplied OutcomeKind = iota
	// OutcomeNoMatch means no A-D letter was found in the answer text.
	OutcomeNoMatch
	// OutcomeOutOfRange means the letter mapped past the option count.
	OutcomeOutOfRange
)

// Outcome is the result of resolving a free-text answer against a
// question. Index is meaningful only when Kind is OutcomeApplied.
type Outcome struct {
	Kind  OutcomeKind
	Index int
}
