package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/teachmate/internal/atomicfile"
	"github.com/aidanlsb/teachmate/internal/ui"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the roster to a JSON file",
	Long: `Export every record to a JSON snapshot file.

Without --output, the file is named after the roster and the current date,
e.g. cs2103t-tutorial-2026-08-24.json in the working directory.

Examples:
  tm export
  tm export --output backup.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return commandError(err)
		}
		defer sess.close()

		people := sess.roster.All()
		views := make([]map[string]interface{}, 0, len(people))
		for _, p := range people {
			views = append(views, personView(p))
		}

		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return commandError(fmt.Errorf("failed to encode roster: %w", err))
		}
		data = append(data, '\n')

		path := exportOutput
		if path == "" {
			path = defaultExportName()
		}
		if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
			return commandError(fmt.Errorf("failed to write export: %w", err))
		}

		if jsonOutput {
			outputSuccess(map[string]interface{}{"path": path}, &Meta{Count: len(people)})
			return nil
		}

		fmt.Println(ui.Successf("Exported %d records to %s", len(people), path))
		return nil
	},
}

// defaultExportName builds a filesystem-safe name from the roster and date.
func defaultExportName() string {
	name := rosterName
	if name == "" {
		name = filepath.Base(getRosterPath())
	}
	return fmt.Sprintf("%s-%s.json", slug.Make(name), time.Now().Format("2006-01-02"))
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	rootCmd.AddCommand(exportCmd)
}
