package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/teachmate/internal/parser"
	"github.com/aidanlsb/teachmate/internal/records"
	"github.com/aidanlsb/teachmate/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit <index> [fields]...",
	Short: "Edit the record at a position in the displayed list",
	Long: `Edit the record at the given position in the currently displayed list.
Only the fields you pass change; everything else is kept.

Fields use marker syntax: n/NAME p/PHONE e/EMAIL a/ADDRESS id/STUDENT_ID
m/MODULE_CODE... t/TAG... c/CONSULTATION... g/ASSIGNMENT:SCORE w/WEEK:STATUS r/REMARK

A grade update (g/) requires an existing grade for that assignment.
w/WEEK:unmark removes the week's attendance entry. Passing a collection
marker once with no value (e.g. 't/') clears that collection.
A successful edit clears any active find filter.

Examples:
  tm edit 1 p/91234567 e/johndoe@example.com
  tm edit 2 g/Quiz 1:88 w/4:present
  tm edit 3 t/`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, descriptor, err := parser.ParseEditArgs(strings.Join(args, " "))
		if err != nil {
			return commandError(err)
		}

		sess, err := openSession()
		if err != nil {
			return commandError(err)
		}
		defer sess.close()

		result, err := records.ApplyEdit(sess.roster, index, descriptor)
		if err != nil {
			return commandError(err)
		}

		sess.keywords = nil
		if err := sess.commit(); err != nil {
			return commandError(err)
		}

		if jsonOutput {
			outputSuccess(map[string]interface{}{
				"name":    result.Edited.Name().String(),
				"label":   result.Edited.DisplayLabel(),
				"changes": result.Changes,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Updated record: %s", ui.Accent.Render(result.Edited.DisplayLabel())))
		fmt.Println("Edited fields:")
		changes := ui.NewList()
		for _, line := range result.Changes {
			changes.Add(line)
		}
		fmt.Print(changes.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
