package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quill/internal/related"
	"github.com/aidanlsb/quill/internal/ui"
)

var relatedLimit int

var relatedCmd = &cobra.Command{
	Use:   "related <slug>",
	Short: "Suggest related posts",
	Long: `Scores every other post against the given one (shared series counts
most, then category, then tags) and lists the best matches.

Examples:
  quill related intro-to-kafka
  quill related intro-to-kafka -n 5 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]

		c, err := loadCatalog()
		if err != nil {
			return handleError(ErrContentNotFound, err, "Check the site path and run 'quill build'")
		}

		target := c.GetBySlug(slug)
		if target == nil {
			return handleErrorMsg(ErrPostNotFound, fmt.Sprintf("post not found: %s", slug), "Run 'quill list' to see available posts")
		}

		posts := related.Posts(c, slug, relatedLimit)

		if isJSONOutput() {
			type scored struct {
				Slug  string `json:"slug"`
				Title string `json:"title"`
				Score int    `json:"score"`
			}
			items := make([]scored, len(posts))
			for i, p := range posts {
				items[i] = scored{Slug: p.Slug, Title: p.Title, Score: related.Score(target, p)}
			}
			outputSuccess(map[string]interface{}{
				"slug":    slug,
				"related": items,
			}, &Meta{Count: len(items)})
			return nil
		}

		if len(posts) == 0 {
			fmt.Printf("No related posts for: %s\n", slug)
			return nil
		}

		fmt.Printf("Related to %s:\n\n", ui.Bold.Render(target.Title))
		for _, p := range posts {
			score := related.Score(target, p)
			fmt.Printf("  %s %s\n", ui.Accent.Render(p.Slug), ui.Muted.Render(fmt.Sprintf("(score %d)", score)))
			fmt.Printf("    %s\n", p.Title)
		}
		return nil
	},
}

func init() {
	relatedCmd.Flags().IntVarP(&relatedLimit, "limit", "n", 3, "Maximum number of suggestions")
	rootCmd.AddCommand(relatedCmd)
}
