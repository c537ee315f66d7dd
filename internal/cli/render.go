package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quill/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <slug>",
	Short: "Compile a post to HTML",
	Long: `Compiles a post's markdown body to HTML and writes it to stdout.

Heading anchors match the IDs reported by 'quill toc', so in-page links work
out of the box.

Examples:
  quill render intro-to-go > intro-to-go.html
  quill render intro-to-go --json`,
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

		html := doc.HTML
		if html == "" {
			html, err = render.New().Render(doc.RawContent)
			if err != nil {
				return handleError(ErrRenderError, err, "")
			}
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"slug": doc.Slug,
				"html": html,
			}, nil)
			return nil
		}

		fmt.Print(html)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
