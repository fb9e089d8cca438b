// Package corpus implements the corpus inspection commands.
package corpus

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"trainingcopilot/internal/common"
	"trainingcopilot/models"
	"trainingcopilot/pkg/analytics"
)

// listedPage is the YAML view of one corpus entry; content is previewed,
// not dumped wholesale.
type listedPage struct {
	URL        string `yaml:"url"`
	Title      string `yaml:"title"`
	Lang       string `yaml:"lang,omitempty"`
	CapturedAt string `yaml:"captured_at"`
	Preview    string `yaml:"preview"`
}

func ListAction(c *cli.Context) error {
	opts, err := common.LoadOptions(c)
	if err != nil {
		return err
	}

	store, err := common.OpenStore(opts)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer store.Close()

	pages, err := store.All()
	if err != nil {
		return err
	}

	listed := make([]listedPage, len(pages))
	for i, p := range pages {
		listed[i] = listedPage{
			URL:        p.URL,
			Title:      p.Title,
			Lang:       p.Lang,
			CapturedAt: p.CapturedAt.Format(time.RFC3339),
			Preview:    models.Truncate(p.Content, 120),
		}
	}

	yamlBytes, err := yaml.Marshal(listed)
	if err != nil {
		return fmt.Errorf("failed to marshal pages: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}

func StatsAction(c *cli.Context) error {
	opts, err := common.LoadOptions(c)
	if err != nil {
		return err
	}

	store, err := common.OpenStore(opts)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer store.Close()

	pages, err := store.All()
	if err != nil {
		return err
	}

	top := analytics.TopKeywords(analytics.WordFrequency(pages), c.Int("top"))
	for i, kw := range top {
		fmt.Printf("%d. %s: %d\n", i+1, kw.Word, kw.Count)
	}
	return nil
}

func CountAction(c *cli.Context) error {
	opts, err := common.LoadOptions(c)
	if err != nil {
		return err
	}

	store, err := common.OpenStore(opts)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer store.Close()

	count, err := store.Count()
	if err != nil {
		return err
	}
	fmt.Println(count)
	return nil
}
