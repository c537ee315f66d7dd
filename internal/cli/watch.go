package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quill/internal/catalog"
	"github.com/aidanlsb/quill/internal/index"
	"github.com/aidanlsb/quill/internal/render"
	"github.com/aidanlsb/quill/internal/ui"
	"github.com/aidanlsb/quill/internal/watcher"
)

var (
	watchDebounceMs int
	watchDebug      bool
	watchHTML       bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the content directory and rebuild on changes",
	Long: `Watches the site's posts directory and rebuilds the index when
markdown files change. Runs until interrupted.

Examples:
  quill watch
  quill watch --debounce 500`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sitePath := getSitePath()

		lock, err := index.AcquireRebuildLock(sitePath)
		if err != nil {
			if errors.Is(err, index.ErrIndexLocked) {
				return handleError(ErrIndexLocked, err, "Another quill process is rebuilding; stop it first")
			}
			return handleError(ErrIndexError, err, "")
		}
		defer lock.Release()

		db, err := index.Open(sitePath)
		if err != nil {
			return handleError(ErrIndexError, err, "")
		}
		defer db.Close()

		opts := catalog.Options{}
		if watchHTML {
			opts.Renderer = render.New()
		}

		w, err := watcher.New(watcher.Config{
			ContentRoot:   contentRoot(),
			Database:      db,
			DebounceDelay: time.Duration(watchDebounceMs) * time.Millisecond,
			Debug:         watchDebug,
			BuildOptions:  opts,
			OnRebuild: func(result *catalog.Result, err error) {
				if err != nil {
					ui.Errorf("rebuild failed: %v", err)
					return
				}
				printWarnings(result.Warnings)
				ui.Successf("Rebuilt: %d posts", result.Catalog.Len())
			},
		})
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		// Initial build before watching
		result, err := w.Rebuild()
		if err != nil {
			return handleError(buildErrorCode(err), err, "")
		}
		printWarnings(result.Warnings)
		ui.Successf("Indexed %d posts", result.Catalog.Len())
		fmt.Printf("Watching %s (Ctrl-C to stop)\n", contentRoot())

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return handleError(ErrInternal, err, "")
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounceMs, "debounce", 250, "Debounce delay in milliseconds")
	watchCmd.Flags().BoolVar(&watchDebug, "debug", false, "Log watcher events to stderr")
	watchCmd.Flags().BoolVar(&watchHTML, "html", false, "Also compile post bodies to HTML on rebuild")
	rootCmd.AddCommand(watchCmd)
}
