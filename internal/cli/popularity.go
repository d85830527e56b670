package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/pydocstub/internal/pypistats"
)

var topFlag int

// popularityCmd represents the popularity command
var popularityCmd = &cobra.Command{
	Use:   "popularity [package]",
	Short: "Look up a package in the bundled PyPI download-count table",
	Long: `Popularity checks the bundled download-count table for a package,
reporting its rank and download count. Lookups are case and separator
insensitive (requests, Requests, and REQUESTS all match).

Examples:
  # Look up one package
  pydocstub popularity requests

  # List the 10 most-downloaded packages
  pydocstub popularity --top 10
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPopularity,
}

func init() {
	rootCmd.AddCommand(popularityCmd)
	popularityCmd.Flags().IntVar(&topFlag, "top", 0, "List the N most-downloaded packages")
}

func runPopularity(cmd *cobra.Command, args []string) error {
	if topFlag > 0 {
		entries, err := pypistats.Top(topFlag)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			fmt.Printf("%4d  %-24s %d\n", entry.Rank, entry.Name, entry.Downloads)
		}
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("expected a package name or --top N")
	}

	entry, ok, err := pypistats.Lookup(args[0])
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("%s is not in the download-count table\n", args[0])
		return nil
	}

	fmt.Printf("%s: rank %d, %d downloads\n", entry.Name, entry.Rank, entry.Downloads)
	return nil
}
