package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/teachmate/internal/parser"
	"github.com/aidanlsb/teachmate/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete the record at a position in the displayed list",
	Long: `Delete the record at the given position in the currently displayed list.

Examples:
  tm delete 1
  tm find alice && tm delete 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parser.ParseDeleteArgs(args[0])
		if err != nil {
			return commandError(err)
		}

		sess, err := openSession()
		if err != nil {
			return commandError(err)
		}
		defer sess.close()

		removed, err := sess.roster.RemoveAt(index)
		if err != nil {
			return commandError(err)
		}
		if err := sess.commit(); err != nil {
			return commandError(err)
		}

		if jsonOutput {
			outputSuccess(map[string]interface{}{
				"name":  removed.Name().String(),
				"label": removed.DisplayLabel(),
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Deleted record: %s", ui.Accent.Render(removed.DisplayLabel())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
