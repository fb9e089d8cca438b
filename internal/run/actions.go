// Package run implements the pipeline command: extract the questions on
// a page, ask the model about each one, and in auto mode write the
// chosen answers back into the page.
package run

import (
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/urfave/cli/v2"

	"trainingcopilot/internal/common"
	"trainingcopilot/internal/pipeline"
	"trainingcopilot/models"
	"trainingcopilot/pkg/fetcher"
	"trainingcopilot/pkg/inference"
)

func RunAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	opts, err := common.LoadOptions(c)
	if err != nil {
		return err
	}

	mode := models.Mode(c.String("mode"))
	if mode != models.ModeHint && mode != models.ModeAuto {
		return fmt.Errorf("invalid mode %q: use %q or %q", c.String("mode"), models.ModeHint, models.ModeAuto)
	}

	doc, err := loadDocument(c)
	if err != nil {
		return err
	}

	store, err := common.OpenStore(opts)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer store.Close()

	client := inference.NewClient(opts.Endpoint, opts.Model)
	if c.Bool("cache") {
		if err := client.EnableCache(128); err != nil {
			return err
		}
	}

	logger.Info("starting pipeline run", "mode", mode, "model", opts.Model, "endpoint", opts.Endpoint)

	controller := pipeline.NewController(store, client, &consoleReporter{out: os.Stdout}, logger)
	controller.Run(c.Context, doc, mode)

	if mode == models.ModeAuto && c.IsSet("out") {
		if err := writeDocument(doc, c.String("out")); err != nil {
			return err
		}
		logger.Info("wrote answered document", "path", c.String("out"))
	}
	return nil
}

// loadDocument reads the target page from --url or --file.
func loadDocument(c *cli.Context) (*goquery.Document, error) {
	url := c.String("url")
	file := c.String("file")
	switch {
	case url != "" && file != "":
		return nil, fmt.Errorf("use either --url or --file, not both")
	case url != "":
		return fetcher.NewFetcher().Document(c.Context, url)
	case file != "":
		return fetcher.DocumentFromFile(file)
	default:
		return nil, fmt.Errorf("no page given: use --url or --file")
	}
}

func writeDocument(doc *goquery.Document, path string) error {
	html, err := doc.Html()
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
