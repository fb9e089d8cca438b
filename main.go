package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"trainingcopilot/internal/capture"
	"trainingcopilot/internal/corpus"
	"trainingcopilot/internal/run"
	"trainingcopilot/internal/serve"
)

func main() {
	app := &cli.App{
		Name:  "training-copilot",
		Usage: "extract questions from assessment pages and ask a local model about them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "optional YAML config file",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the pipeline over a page: hints or applied answers",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "page URL to run against"},
					&cli.StringFlag{Name: "file", Usage: "local HTML file to run against"},
					&cli.StringFlag{Name: "mode", Value: "hint", Usage: "hint or auto"},
					&cli.StringFlag{Name: "out", Usage: "in auto mode, write the answered document here"},
					&cli.StringFlag{Name: "endpoint", Usage: "inference endpoint base URL"},
					&cli.StringFlag{Name: "model", Usage: "model identifier"},
					&cli.StringFlag{Name: "db", Usage: "corpus database path"},
					&cli.BoolFlag{Name: "cache", Usage: "cache model responses per prompt"},
				},
				Action: run.RunAction,
			},
			{
				Name:  "capture",
				Usage: "fetch a page and append its content to the training corpus",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "page URL to capture"},
					&cli.StringFlag{Name: "db", Usage: "corpus database path"},
				},
				Action: capture.CaptureAction,
			},
			{
				Name:  "corpus",
				Usage: "inspect the training corpus",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "list captured pages as YAML",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "corpus database path"},
						},
						Action: corpus.ListAction,
					},
					{
						Name:  "count",
						Usage: "print the number of captured pages",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "corpus database path"},
						},
						Action: corpus.CountAction,
					},
					{
						Name:  "stats",
						Usage: "top keywords across the captured material",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "db", Usage: "corpus database path"},
							&cli.IntFlag{Name: "top", Value: 25, Usage: "how many keywords to show"},
						},
						Action: corpus.StatsAction,
					},
				},
			},
			{
				Name:  "serve",
				Usage: "serve the widget and proxy generation calls to the endpoint",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "port", Usage: "listen port"},
					&cli.StringFlag{Name: "endpoint", Usage: "inference endpoint base URL"},
					&cli.StringFlag{Name: "model", Usage: "model identifier"},
					&cli.StringFlag{Name: "theme", Usage: "widget theme: light or dark"},
					&cli.StringFlag{Name: "db", Usage: "corpus database path"},
				},
				Action: serve.ServeAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
