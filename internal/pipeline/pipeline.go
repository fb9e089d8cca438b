// Package pipeline orchestrates one run: extract questions, build a
// prompt per question, call the inference endpoint, and in auto mode
// apply the parsed answer back onto the page.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"

	"trainingcopilot/models"
	"trainingcopilot/pkg/composer"
	"trainingcopilot/pkg/extractor"
	"trainingcopilot/pkg/resolver"
)

// MaxQuestions caps how many questions one run processes.
const MaxQuestions = 5

// DefaultDelay is the pause between successive inference calls.
const DefaultDelay = time.Second

const previewLen = 80

// Inferrer is the slice of the inference client the controller needs.
type Inferrer interface {
	Infer(ctx context.Context, prompt string) (string, error)
}

// CorpusReader provides the training pages snapshot read once per run.
type CorpusReader interface {
	All() ([]models.TrainingPage, error)
}

// Marker is a terminal progress signal for the presentation surface.
type Marker string

const (
	MarkerNoControls  Marker = "no-controls-found"
	MarkerNoQuestions Marker = "no-questions-found"
	MarkerCompleted   Marker = "completed"
)

// Reporter receives incremental per-question outcomes. The controller
// never renders anything itself.
type Reporter interface {
	Result(index int, question, answer string)
	Failure(index int, question string, err error)
	Marker(m Marker)
}

// Controller runs the extraction → compose → infer → resolve loop.
// Execution is strictly sequential; no two inference calls are ever in
// flight at once, and reported order matches extraction order.
type Controller struct {
	Corpus   CorpusReader
	Client   Inferrer
	Reporter Reporter
	Logger   *slog.Logger
	Delay    time.Duration

	sleep func(ctx context.Context, d time.Duration)
}

func NewController(corpus CorpusReader, client Inferrer, reporter Reporter, logger *slog.Logger) *Controller {
	return &Controller{
		Corpus:   corpus,
		Client:   client,
		Reporter: reporter,
		Logger:   logger,
		Delay:    DefaultDelay,
		sleep:    sleepCtx,
	}
}

// Run processes the first min(5, N) questions of the document. A failed
// inference call is reported for that question only; the loop always
// continues to the next one and always ends with a completion marker.
func (c *Controller) Run(ctx context.Context, doc *goquery.Document, mode models.Mode) {
	if !extractor.HasControls(doc) {
		c.Reporter.Marker(MarkerNoControls)
		return
	}

	questions := extractor.Extract(doc)
	if len(questions) == 0 {
		c.Reporter.Marker(MarkerNoQuestions)
		return
	}

	// Snapshot the corpus once; a store failure downgrades to an empty
	// corpus rather than aborting the run.
	pages, err := c.Corpus.All()
	if err != nil {
		c.Logger.Warn("failed to read corpus, running without study material", "error", err)
		pages = nil
	}

	limit := min(MaxQuestions, len(questions))
	for i := 0; i < limit; i++ {
		if i > 0 {
			c.sleep(ctx, c.Delay)
		}

		q := questions[i]
		prompt := composer.Compose(pages, q, mode)

		answer, err := c.Client.Infer(ctx, prompt)
		if err != nil {
			c.Reporter.Failure(i, models.Truncate(q.Text, previewLen), err)
			continue
		}

		c.Reporter.Result(i, models.Truncate(q.Text, previewLen), answer)
		if mode == models.ModeAuto {
			// NoMatch and OutOfRange are deliberately silent; the answer
			// text was already reported above.
			resolver.Resolve(answer, q)
		}
	}

	c.Reporter.Marker(MarkerCompleted)
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
