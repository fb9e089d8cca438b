// Package capture implements the capture command: fetch a page, distill
// its readable content, and append it to the training corpus.
package capture

import (
	"bytes"
	"fmt"
	"net/url"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/urfave/cli/v2"

	"trainingcopilot/internal/common"
	"trainingcopilot/models"
	"trainingcopilot/pkg/detector"
	"trainingcopilot/pkg/fetcher"
)

func CaptureAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	opts, err := common.LoadOptions(c)
	if err != nil {
		return err
	}

	rawURL := c.String("url")
	if rawURL == "" {
		return fmt.Errorf("no page given: use --url")
	}
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	store, err := common.OpenStore(opts)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer store.Close()

	logger.Info("capturing page", "url", rawURL)
	body, err := fetcher.NewFetcher().Bytes(c.Context, rawURL)
	if err != nil {
		return err
	}

	// Distill the readable content; fall back to the raw body text when
	// readability can't find an article.
	page := models.TrainingPage{
		URL:        rawURL,
		CapturedAt: time.Now().UTC(),
	}
	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(body), parsedURL)
	if err != nil {
		logger.Warn("readability failed, storing raw content", "url", rawURL, "error", err)
		page.Title = rawURL
		page.Content = string(body)
	} else {
		page.Title = article.Title
		page.Content = article.TextContent
	}
	page.Content = models.ClampContent(page.Content)
	page.Lang = detector.New().Language(page.Content)

	if err := store.Append(page); err != nil {
		return err
	}

	count, err := store.Count()
	if err != nil {
		return err
	}
	fmt.Printf("Captured %q (%s). Corpus now holds %d page(s).\n", page.Title, page.Lang, count)
	return nil
}
