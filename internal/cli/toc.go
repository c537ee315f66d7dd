package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quill/internal/ui"
)

var tocCmd = &cobra.Command{
	Use:   "toc <slug>",
	Short: "Show a post's table of contents",
	Long: `Shows a post's headings with their anchor IDs, which match the anchors
emitted by 'quill render'. Headings inside fenced code blocks are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]

		c, err := loadCatalog()
		if err != nil {
			return handleError(ErrContentNotFound, err, "Check the site path and run 'quill build'")
		}

		doc := c.GetBySlug(slug)
		if doc == nil {
			return handleErrorMsg(ErrPostNotFound, fmt.Sprintf("post not found: %s", slug), "Run 'quill list' to see available posts")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"slug":     doc.Slug,
				"headings": doc.Headings,
			}, &Meta{Count: len(doc.Headings)})
			return nil
		}

		if len(doc.Headings) == 0 {
			fmt.Printf("No headings in: %s\n", slug)
			return nil
		}

		fmt.Printf("%s\n\n", ui.Bold.Render(doc.Title))
		for _, h := range doc.Headings {
			indent := strings.Repeat("  ", h.Level-1)
			fmt.Printf("%s%s %s\n", indent, h.Text, ui.Muted.Render("#"+h.ID))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tocCmd)
}
