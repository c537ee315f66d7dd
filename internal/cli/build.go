package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quill/internal/catalog"
	"github.com/aidanlsb/quill/internal/index"
	"github.com/aidanlsb/quill/internal/render"
	"github.com/aidanlsb/quill/internal/ui"
)

var buildRenderHTML bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Scan the content directory and rebuild the index",
	Long: `Scans the site's posts directory, validates frontmatter, derives slugs,
reading times, and headings, and writes the result to the SQLite index.

Posts with invalid frontmatter are excluded with a warning. A duplicate slug
fails the build.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sitePath := getSitePath()

		lock, err := index.AcquireRebuildLock(sitePath)
		if err != nil {
			if errors.Is(err, index.ErrIndexLocked) {
				return handleError(ErrIndexLocked, err, "Another quill process is rebuilding; retry in a moment")
			}
			return handleError(ErrIndexError, err, "")
		}
		defer lock.Release()

		opts := catalog.Options{}
		if buildRenderHTML {
			opts.Renderer = render.New()
		}

		result, err := catalog.BuildWithOptions(contentRoot(), &opts)
		if err != nil {
			return handleError(buildErrorCode(err), err, "")
		}

		db, err := index.Open(sitePath)
		if err != nil {
			return handleError(ErrIndexError, err, "")
		}
		defer db.Close()

		if err := db.Rebuild(result.Catalog); err != nil {
			return handleError(ErrIndexError, err, "")
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{
				"posts":    result.Catalog.Len(),
				"warnings": len(result.Warnings),
				"index":    index.Path(sitePath),
			}, cliWarnings(result.Warnings), &Meta{Count: result.Catalog.Len()})
			return nil
		}

		printWarnings(result.Warnings)
		ui.Successf("Indexed %d posts", result.Catalog.Len())
		if n := len(result.Warnings); n > 0 {
			fmt.Println(ui.Muted.Render(fmt.Sprintf("  %d warning(s), see above", n)))
		}
		return nil
	},
}

// buildErrorCode maps a build failure to a stable error code.
func buildErrorCode(err error) string {
	switch {
	case errors.Is(err, catalog.ErrDuplicateSlug):
		return ErrSlugCollision
	case errors.Is(err, catalog.ErrRootUnreadable):
		return ErrContentNotFound
	default:
		return ErrInternal
	}
}

func init() {
	buildCmd.Flags().BoolVar(&buildRenderHTML, "html", false, "Also compile post bodies to HTML during the build")
	rootCmd.AddCommand(buildCmd)
}
