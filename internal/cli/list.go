package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/teachmate/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every record in the roster",
	Long: `List every record in the roster and clear any active find filter,
so positions shown here are valid for edit, view and delete.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return commandError(err)
		}
		defer sess.close()

		sess.roster.ShowAll()
		sess.keywords = nil
		if err := sess.commit(); err != nil {
			return commandError(err)
		}

		people := sess.roster.All()

		if jsonOutput {
			views := make([]map[string]interface{}, 0, len(people))
			for _, p := range people {
				views = append(views, personView(p))
			}
			outputSuccess(views, &Meta{Count: len(people)})
			return nil
		}

		if len(people) == 0 {
			fmt.Println(ui.Hint("The roster is empty. Add a record with 'tm add'."))
			return nil
		}

		fmt.Printf("%s %s\n", ui.Header("Roster"), ui.Count(len(people), "record", "records"))
		for i, p := range people {
			fmt.Println(ui.Summary(i+1, p))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
