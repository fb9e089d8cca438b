package run

import (
	"fmt"
	"io"

	"trainingcopilot/internal/pipeline"
)

// consoleReporter renders pipeline progress as plain result lines. All
// user-facing failure text lives here, not in the pipeline.
type consoleReporter struct {
	out io.Writer
}

func (r *consoleReporter) Result(index int, question, answer string) {
	fmt.Fprintf(r.out, "[%d] %s\n    → %s\n", index+1, question, answer)
}

func (r *consoleReporter) Failure(index int, question string, err error) {
	fmt.Fprintf(r.out, "[%d] %s\n    ✗ %s\n", index+1, question, err)
}

func (r *consoleReporter) Marker(m pipeline.Marker) {
	switch m {
	case pipeline.MarkerNoControls:
		fmt.Fprintln(r.out, "No selectable controls found on this page.")
	case pipeline.MarkerNoQuestions:
		fmt.Fprintln(r.out, "Could not find any questions on this page.")
	case pipeline.MarkerCompleted:
		fmt.Fprintln(r.out, "Done.")
	}
}
