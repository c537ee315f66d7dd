package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quill/internal/ui"
)

var readRawFlag bool

var readCmd = &cobra.Command{
	Use:   "read <slug>",
	Short: "Read a post in the terminal",
	Long: `Reads a post by slug and renders it for the terminal.

Use --raw to output the markdown as authored (useful for agents and
scripting).

Examples:
  quill read intro-to-go
  quill read intro-to-go --raw
  quill read intro-to-go --json`,
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
				"post":    doc,
				"content": doc.RawContent,
			}, nil)
			return nil
		}

		if readRawFlag {
			fmt.Print(doc.RawContent)
			return nil
		}

		display := ui.NewDisplayContext()
		header := fmt.Sprintf("# %s\n\n", doc.Title)
		meta := doc.DateString()
		if doc.Author != "" {
			meta += " · " + doc.Author
		}
		meta += " · " + doc.ReadingTime

		rendered, err := ui.RenderMarkdown(header+doc.RawContent, display.TermWidth)
		if err != nil {
			return handleError(ErrRenderError, err, "")
		}

		fmt.Println(ui.Muted.Render(meta))
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	readCmd.Flags().BoolVar(&readRawFlag, "raw", false, "Output raw markdown without terminal rendering")
	rootCmd.AddCommand(readCmd)
}
