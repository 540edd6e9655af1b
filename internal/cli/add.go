package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/teachmate/internal/parser"
	"github.com/aidanlsb/teachmate/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <fields>...",
	Short: "Add a student or contact record to the roster",
	Long: `Add a record to the roster.

The id/ marker selects the student variant; otherwise p/PHONE and a/ADDRESS
are required and a contact record is created. A record cannot mix a student
ID with phone or address fields.

Examples:
  tm add n/Amy Tan id/A1234567X e/amy@example.com m/CS2103T t/year2
  tm add n/John Doe p/98765432 e/johnd@example.com a/311 Clementi Ave 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		person, err := parser.ParseAddArgs(strings.Join(args, " "))
		if err != nil {
			return commandError(err)
		}

		sess, err := openSession()
		if err != nil {
			return commandError(err)
		}
		defer sess.close()

		if err := sess.roster.Add(person); err != nil {
			return commandError(err)
		}
		if err := sess.commit(); err != nil {
			return commandError(err)
		}

		if jsonOutput {
			outputSuccess(personView(person), nil)
			return nil
		}

		fmt.Println(ui.Successf("Added record: %s", ui.Accent.Render(person.DisplayLabel())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
