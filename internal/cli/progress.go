package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/example/pydocstub/internal/generator"
)

// CLIProgressReporter implements progress reporting with progress bars.
type CLIProgressReporter struct {
	quiet     bool
	moduleBar *progressbar.ProgressBar
	startTime time.Time
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (c *CLIProgressReporter) OnDiscoveryComplete(moduleCount int) {
	if c.quiet {
		return
	}
	log.Printf("Generating stubs for %d module(s)\n", moduleCount)

	c.moduleBar = progressbar.NewOptions(moduleCount,
		progressbar.OptionSetDescription("Generating stubs"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("modules/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (c *CLIProgressReporter) OnModuleComplete(file string) {
	if c.quiet {
		return
	}
	if c.moduleBar != nil {
		c.moduleBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnFinish(summary generator.Summary) {
	if c.quiet {
		return
	}
	log.Printf("Done in %v: %d written, %d skipped, %d failed\n",
		time.Since(c.startTime).Round(time.Millisecond),
		summary.Written, summary.Skipped, summary.Failed)
	if summary.Missing > 0 {
		log.Printf("%d module(s) have no conventional test file\n", summary.Missing)
	}
}
