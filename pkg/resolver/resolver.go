// Package resolver maps a model's free-text answer back onto a
// question's selectable options.
package resolver

import (
	"regexp"

	"trainingcopilot/models"
)

// letterPattern matches the first standalone A-D letter, case-insensitive.
var letterPattern = regexp.MustCompile(`(?i)\b([a-d])\b`)

// Resolve scans the answer text for a letter A-D and selects the matching
// option. It only ever selects: exclusivity within a radio group is the
// document's own behavior, and a checkbox group is left otherwise
// untouched. No letter yields NoMatch; a letter past the option count
// yields OutOfRange.
func Resolve(answer string, q models.Question) models.Outcome {
	m := letterPattern.FindStringSubmatch(answer)
	if m == nil {
		return models.Outcome{Kind: models.OutcomeNoMatch}
	}

	letter := m[1][0]
	if letter >= 'a' {
		letter -= 'a' - 'A'
	}
	index := int(letter - 'A')

	if index >= len(q.Options) {
		return models.Outcome{Kind: models.OutcomeOutOfRange, Index: index}
	}

	q.Options[index].SetSelected(true)
	return models.Outcome{Kind: models.OutcomeApplied, Index: index}
}
