package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/pydocstub/internal/config"
	"github.com/example/pydocstub/internal/generator"
)

var (
	outputFlag    string
	rootFlag      string
	forceFlag     bool
	quietFlag     bool
	watchFlag     bool
	withTestsFlag bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate documentation stubs for a module or library",
	Long: `Generate parses Python source and writes .rst documentation stubs.

Given a single .py file, one stub is written for that module. Given a
directory (the default is the configured library root), every discovered
module gets a stub and every package initializer gets a toctree index of
its sibling modules.

Examples:
  # Generate stubs for the configured library root
  pydocstub generate

  # Generate the stub for one module
  pydocstub generate mylib/parser.py

  # Regenerate everything, overwriting existing stubs
  pydocstub generate --force

  # Keep regenerating as source files change
  pydocstub generate --watch
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output directory for stubs (overrides config)")
	generateCmd.Flags().StringVarP(&rootFlag, "root", "r", "", "Library root for dotted module paths (overrides config)")
	generateCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite stubs that already exist")
	generateCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	generateCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch for file changes and regenerate")
	generateCmd.Flags().BoolVar(&withTestsFlag, "with-tests", false, "Report modules without a conventional test file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted! Cancelling generation...")
		cancel()
	}()

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if rootFlag != "" {
		cfg.Paths.LibraryRoot = rootFlag
	}
	if outputFlag != "" {
		cfg.Output.Dir = outputFlag
	}
	if forceFlag {
		cfg.Output.Force = true
	}

	progress := NewCLIProgressReporter(quietFlag)
	gen := generator.New(cfg, withTestsFlag, progress)

	// A single .py argument generates exactly one stub with failures
	// surfaced directly.
	if len(args) == 1 {
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() {
			outPath, err := gen.GenerateModule(args[0])
			if err != nil {
				return err
			}
			if outPath == "" {
				fmt.Printf("Stub already exists; use --force to overwrite\n")
				return nil
			}
			fmt.Printf("Wrote %s\n", outPath)
			return nil
		}
		cfg.Paths.LibraryRoot = args[0]
	}

	summary, err := gen.Run(ctx)
	if err != nil {
		return err
	}

	if watchFlag {
		watcher, err := generator.NewWatcher(gen)
		if err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		defer watcher.Stop()
		watcher.Start(ctx)

		if !quietFlag {
			log.Println("Watching for changes. Press Ctrl+C to stop.")
		}
		<-ctx.Done()
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d module(s) failed to generate", summary.Failed)
	}
	return nil
}
