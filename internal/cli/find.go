package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/teachmate/internal/parser"
	"github.com/aidanlsb/teachmate/internal/ui"
)

var findCmd = &cobra.Command{
	Use:   "find <keyword>...",
	Short: "Filter the displayed list by name keywords",
	Long: `Filter the displayed list to records whose names contain any of the
given keywords. Matching is case-insensitive on whole words.

The filter stays active for later commands, so positions shown here are
valid for edit, view and delete. Run 'tm list' to clear it.

Examples:
  tm find alice
  tm find alice bob charlie`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, keywords, err := parser.ParseFindArgs(strings.Join(args, " "))
		if err != nil {
			return commandError(err)
		}

		sess, err := openSession()
		if err != nil {
			return commandError(err)
		}
		defer sess.close()

		sess.roster.SetFilter(filter)
		sess.keywords = keywords
		if err := sess.commit(); err != nil {
			return commandError(err)
		}

		shown := sess.roster.Filtered()

		if jsonOutput {
			views := make([]map[string]interface{}, 0, len(shown))
			for _, p := range shown {
				views = append(views, personView(p))
			}
			outputSuccess(views, &Meta{Count: len(shown)})
			return nil
		}

		if len(shown) == 0 {
			fmt.Println(ui.Hint("No records match. Run 'tm list' to show everyone."))
			return nil
		}

		fmt.Printf("%s %s\n", ui.Header("Matches"), ui.Count(len(shown), "record", "records"))
		for i, p := range shown {
			fmt.Println(ui.Summary(i+1, p))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
