// Package composer builds bounded-length prompts from the corpus and a
// single question.
package composer

import (
	"fmt"
	"strings"

	"trainingcopilot/models"
)

// MaxContext is the character cap on the corpus segment embedded in a
// prompt. It is a plain character cap, not a token-aware one.
const MaxContext = 2000

const hintTemplate = `You are a training assistant. Use the study material below as context.

Study material:
%s

Question:
%s

Give a short hint that points toward the right answer without revealing it.`

const autoTemplate = `You are a training assistant. Use the study material below as context.

Study material:
%s

Question:
%s

Answer with a single letter: A, B, C, or D. Reply with the letter only.`

// Compose embeds the corpus and the question text into the template for
// the given mode. Corpus entries are joined in order with blank lines and
// the joined material is truncated to MaxContext characters.
func Compose(corpus []models.TrainingPage, q models.Question, mode models.Mode) string {
	material := make([]string, 0, len(corpus))
	for _, page := range corpus {
		material = append(material, page.Content)
	}
	context := models.Truncate(strings.Join(material, "\n\n"), MaxContext)
	if context == "" {
		context = "(no study material captured yet)"
	}

	template := hintTemplate
	if mode == models.ModeAuto {
		template = autoTemplate
	}
	return fmt.Sprintf(template, context, q.Text)
}
