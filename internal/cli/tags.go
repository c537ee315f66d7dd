package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quill/internal/ui"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags with post counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return handleError(ErrContentNotFound, err, "Check the site path and run 'quill build'")
		}

		tags := c.Tags()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"tags": tags,
			}, &Meta{Count: len(tags)})
			return nil
		}

		if len(tags) == 0 {
			fmt.Println("No tags found.")
			return nil
		}

		fmt.Printf("Tags (%d total):\n\n", len(tags))
		for _, t := range tags {
			fmt.Printf("  %s %s\n", ui.Accent.Render(t.Name), ui.Muted.Render(fmt.Sprintf("(%d)", t.Count)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
