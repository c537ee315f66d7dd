package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quill/internal/ui"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with post counts",
	Long: `Lists categories with post counts. A post in a nested category counts
toward every level, so "go/concurrency" also counts toward "go".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return handleError(ErrContentNotFound, err, "Check the site path and run 'quill build'")
		}

		categories := c.Categories()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"categories": categories,
			}, &Meta{Count: len(categories)})
			return nil
		}

		if len(categories) == 0 {
			fmt.Println("No categories found.")
			return nil
		}

		fmt.Printf("Categories (%d total):\n\n", len(categories))
		for _, cat := range categories {
			fmt.Printf("  %s %s\n", ui.Accent.Render(cat.Name), ui.Muted.Render(fmt.Sprintf("(%d)", cat.Count)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
