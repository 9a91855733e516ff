package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-xrm"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a resource file and print its entries",
	Long: `Parse loads a resource database file (or standard input, if no
file is given), and prints the canonical rendering of every entry it
contains, one per line, in insertion order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var db *xrm.Database

	if len(args) == 1 {
		d, err := xrm.DatabaseFromFile(args[0])
		if err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}
		db = d
	} else {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		db = xrm.DatabaseFromString(string(src))
	}

	fmt.Print(db.ToString())
	if verbose {
		fmt.Fprintf(os.Stderr, "%d entries\n", db.Len())
	}
	return nil
}
