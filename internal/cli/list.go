package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quill/internal/post"
	"github.com/aidanlsb/quill/internal/ui"
)

var (
	listTag      string
	listCategory string
	listLimit    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, newest first",
	Long: `Lists the site's posts in reverse chronological order.

Examples:
  quill list
  quill list --tag go
  quill list --category engineering
  quill list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return handleError(ErrContentNotFound, err, "Check the site path and run 'quill build'")
		}

		var posts []*post.Document
		switch {
		case listTag != "":
			posts = c.ListByTag(listTag)
		case listCategory != "":
			posts = c.ListByCategory(listCategory)
		default:
			posts = c.Posts()
		}

		if listLimit > 0 && len(posts) > listLimit {
			posts = posts[:listLimit]
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"posts": posts,
			}, &Meta{Count: len(posts)})
			return nil
		}

		if len(posts) == 0 {
			fmt.Println("No posts found.")
			return nil
		}

		for _, p := range posts {
			fmt.Printf("%s  %s\n", ui.Muted.Render(p.DateString()), ui.Bold.Render(p.Title))
			line := "            " + ui.Accent.Render(p.Slug)
			if p.Category != "" {
				line += ui.Muted.Render("  ·  "+p.Category)
			}
			line += ui.Muted.Render("  ·  " + p.ReadingTime)
			fmt.Println(line)
		}
		fmt.Printf("\n%d post(s)\n", len(posts))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "Only posts with this tag")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only posts in this category")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Maximum number of posts (0 = all)")
	rootCmd.AddCommand(listCmd)
}
