package cli

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/aidanlsb/teachmate/docs"
	"github.com/aidanlsb/teachmate/internal/ui"
)

const docsDir = "guide"

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse the bundled user guide",
	Long: `Browse long-form documentation bundled into the tm binary.

Without arguments, lists the available topics. For command-level usage,
use 'tm help <command>'.

Examples:
  tm docs
  tm docs quickstart`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listDocTopics()
		if err != nil {
			return handleErrorMsg(codeStorageError, err.Error(), "Rebuild tm so bundled docs are available")
		}

		if len(args) == 0 {
			if jsonOutput {
				outputSuccess(topics, &Meta{Count: len(topics)})
				return nil
			}
			fmt.Println(ui.Header("Topics"))
			for _, topic := range topics {
				fmt.Printf("  %s\n", topic)
			}
			fmt.Println(ui.Hint("Run 'tm docs <topic>' to read one."))
			return nil
		}

		topic := strings.TrimSuffix(args[0], ".md")
		content, err := fs.ReadFile(builtindocs.Guide, path.Join(docsDir, topic+".md"))
		if err != nil {
			return handleErrorMsg(codeInvalidInput,
				fmt.Sprintf("unknown topic '%s'", topic),
				"Run 'tm docs' to list topics")
		}

		if jsonOutput {
			outputSuccess(map[string]interface{}{
				"topic":   topic,
				"content": string(content),
			}, nil)
			return nil
		}

		display := ui.NewDisplayContext()
		rendered, err := ui.RenderMarkdown(string(content), display.TermWidth)
		if err != nil {
			fmt.Print(string(content))
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func listDocTopics() ([]string, error) {
	entries, err := fs.ReadDir(builtindocs.Guide, docsDir)
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		topics = append(topics, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics, nil
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
