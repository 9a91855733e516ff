package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-xrm"
)

var queryClass string

var queryCmd = &cobra.Command{
	Use:   "query <name> [file...]",
	Short: "Query a resource value by name and optional class",
	Long: `Query loads one or more resource files, combining them in the
order given (later files override earlier ones), and looks up name
against the resulting database using the three-rule precedence matcher.
The matching value is printed; if nothing matches, "not found" is
printed and xrmtool exits with a non-zero status.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVar(&queryClass, "class", "", "resource class path, same component count as name")
}

func runQuery(cmd *cobra.Command, args []string) error {
	name := args[0]
	files := args[1:]

	db := xrm.NewDatabase()
	for _, path := range files {
		loaded, err := xrm.DatabaseFromFile(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		xrm.Combine(loaded, db, true)
	}

	value, err := xrm.GetString(db, name, queryClass)
	if err != nil {
		if errors.Is(err, xrm.ErrNotFound) {
			fmt.Println("not found")
			os.Exit(1)
		}
		return err
	}

	fmt.Println(value)
	return nil
}
