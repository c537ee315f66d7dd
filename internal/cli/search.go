package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quill/internal/search"
	"github.com/aidanlsb/quill/internal/ui"
)

var (
	searchTags  []string
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Fuzzy-search post titles",
	Long: `Searches post titles with subsequence matching: "gtr" matches
"Go Test Refactoring". Results are ordered by match quality.

Tag filters are conjunctive; a post must carry every requested tag. With no
query, posts are filtered by tag only and keep their date order.

Examples:
  quill search kafka
  quill search gtr --tag go
  quill search --tag go --tag testing
  quill search kafka --json`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		if query == "" && len(searchTags) == 0 {
			return handleErrorMsg(ErrInvalidInput, "specify a query or at least one --tag", "Run 'quill list' to browse all posts")
		}

		c, err := loadCatalog()
		if err != nil {
			return handleError(ErrContentNotFound, err, "Check the site path and run 'quill build'")
		}

		results := search.Filter(c, query, searchTags)
		if searchLimit > 0 && len(results) > searchLimit {
			results = results[:searchLimit]
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"query": query,
				"tags":  searchTags,
				"posts": results,
			}, &Meta{Count: len(results)})
			return nil
		}

		if len(results) == 0 {
			fmt.Println("No matching posts.")
			return nil
		}

		for _, p := range results {
			fmt.Printf("%s  %s\n", ui.Muted.Render(p.DateString()), highlightTitle(p.Title, query))
			fmt.Printf("            %s\n", ui.Accent.Render(p.Slug))
		}
		fmt.Printf("\n%d post(s)\n", len(results))
		return nil
	},
}

// highlightTitle marks the runes consumed by the fuzzy match.
func highlightTitle(title, query string) string {
	var b strings.Builder
	for _, seg := range search.Highlight(title, query) {
		if seg.Highlight {
			b.WriteString(ui.AccentBold.Render(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

func init() {
	searchCmd.Flags().StringArrayVarP(&searchTags, "tag", "t", nil, "Require this tag (repeatable)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum number of results (0 = all)")
	rootCmd.AddCommand(searchCmd)
}
