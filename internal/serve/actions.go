package serve

import (
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"

	"trainingcopilot/internal/common"
	"trainingcopilot/pkg/detector"
	"trainingcopilot/pkg/inference"
)

func ServeAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	opts, err := common.LoadOptions(c)
	if err != nil {
		return err
	}

	store, err := common.OpenStore(opts)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer store.Close()

	client := inference.NewClient(opts.Endpoint, opts.Model)
	server := New(opts, store, client, detector.New(), logger)

	addr := fmt.Sprintf(":%d", opts.Port)
	logger.Info("serving", "addr", addr, "endpoint", opts.Endpoint, "theme", opts.Theme)
	fmt.Printf("Training Copilot running at http://localhost%s\n", addr)
	fmt.Printf("Bookmarklet: http://localhost%s/bookmarklet\n", addr)

	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
