package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/quill/internal/catalog"
	"github.com/aidanlsb/quill/internal/index"
	"github.com/aidanlsb/quill/internal/ui"
)

// contentRoot returns the posts directory for the resolved site.
func contentRoot() string {
	return filepath.Join(getSitePath(), getConfig().GetContentDir())
}

// loadCatalog returns the site's catalog, preferring the SQLite index when one
// exists and falling back to a fresh directory scan otherwise. Read commands
// stay usable on sites that have never been built.
func loadCatalog() (*catalog.Catalog, error) {
	sitePath := getSitePath()

	if index.Exists(sitePath) {
		db, err := index.Open(sitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open index: %w", err)
		}
		defer db.Close()

		c, err := db.LoadCatalog()
		if err != nil {
			return nil, fmt.Errorf("failed to load index: %w", err)
		}
		return c, nil
	}

	result, err := catalog.Build(contentRoot())
	if err != nil {
		return nil, err
	}
	printWarnings(result.Warnings)
	return result.Catalog, nil
}

// cliWarnings converts catalog warnings into the JSON envelope shape.
func cliWarnings(warnings []catalog.Warning) []Warning {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]Warning, len(warnings))
	for i, w := range warnings {
		code := WarnSkippedPath
		if len(w.Fields) > 0 {
			code = WarnInvalidFrontmatter
		}
		out[i] = Warning{
			Code:    code,
			Message: w.Message,
			Path:    w.Path,
			Fields:  w.Fields,
		}
	}
	return out
}

// printWarnings writes build warnings to stderr in text mode.
func printWarnings(warnings []catalog.Warning) {
	if jsonOutput {
		return
	}
	for _, w := range warnings {
		if len(w.Fields) > 0 {
			ui.Warningf("%s: %s (%s)", w.Path, w.Message, strings.Join(w.Fields, ", "))
		} else {
			ui.Warningf("%s: %s", w.Path, w.Message)
		}
	}
}
