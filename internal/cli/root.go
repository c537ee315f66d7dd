// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quill/internal/config"
	"github.com/aidanlsb/quill/internal/ui"
)

var (
	// Global flags
	siteName     string // Named site from config
	sitePathFlag string // Explicit path (rare)
	configPath   string

	// Resolved values
	resolvedSitePath string
	cfg              *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Quill - content tooling for markdown blogs",
	Long: `Quill indexes a directory of markdown posts and serves what a blog needs
from it: a date-sorted catalog, fuzzy title search, tag and category listings,
related-post suggestions, and rendered HTML. Plain markdown files stay the
source of truth.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip site resolution for commands that don't need it
		switch cmd.Name() {
		case "init", "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		// Load config
		var err error
		cfg, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg == nil {
			cfg = &config.Config{}
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownStyle(cfg.UI.MarkdownStyle)

		// Resolve site path: explicit path > named site > default
		if sitePathFlag != "" {
			resolvedSitePath = sitePathFlag
		} else {
			resolvedSitePath, err = cfg.GetSitePath(siteName)
			if err != nil {
				if siteName != "" {
					return fmt.Errorf("site '%s' not found\n\nAdd it to the [sites] table in %s", siteName, config.DefaultPath())
				}
				return fmt.Errorf(`no site specified

Either:
  1. Use --site <name> (from config)
  2. Use --site-path /path/to/site
  3. Set default_site in %s
  4. Run 'quill init /path/to/site' to create one`, config.DefaultPath())
			}
		}

		// Verify site exists
		if _, err := os.Stat(resolvedSitePath); os.IsNotExist(err) {
			return fmt.Errorf("site not found: %s\n\nRun 'quill init %s' to create it", resolvedSitePath, resolvedSitePath)
		}

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&siteName, "site", "s", "", "Named site from config")
	rootCmd.PersistentFlags().StringVar(&sitePathFlag, "site-path", "", "Explicit path to site directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getSitePath returns the resolved site path.
func getSitePath() string {
	return resolvedSitePath
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

func loadGlobalConfig() (*config.Config, error) {
	if strings.TrimSpace(configPath) != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}
