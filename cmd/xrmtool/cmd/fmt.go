package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-xrm"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Canonicalise a resource file",
	Long: `Fmt parses a resource database file (or standard input) and
re-renders it to canonical form: one "specifier: value" line per entry,
with values re-escaped per the canonical rendering rules. Running fmt
twice in a row is idempotent.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	var db *xrm.Database

	if len(args) == 1 {
		d, err := xrm.DatabaseFromFile(args[0])
		if err != nil {
			return fmt.Errorf("formatting %s: %w", args[0], err)
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
	return nil
}
