package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/quill/internal/config"
	"github.com/aidanlsb/quill/internal/frontmatter"
	"github.com/aidanlsb/quill/internal/index"
)

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Initialize a new site",
	Long: `Creates a new site at the specified path with the default layout.

Creates:
  - content/posts/  (where markdown posts live)
  - .quill/         (index directory)
  - .gitignore      (ignores derived files)
  - a sample post to get started

Also creates the global config file if it doesn't exist yet.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		fmt.Printf("Initializing site at: %s\n", path)

		postsDir := filepath.Join(path, config.DefaultContentDir)
		if err := os.MkdirAll(postsDir, 0755); err != nil {
			return fmt.Errorf("failed to create posts directory: %w", err)
		}

		quillDir := filepath.Join(path, index.Dir)
		if err := os.MkdirAll(quillDir, 0755); err != nil {
			return fmt.Errorf("failed to create %s directory: %w", index.Dir, err)
		}

		// Ensure .gitignore ignores the derived index
		gitignorePath := filepath.Join(path, ".gitignore")
		gitignoreStatus := "created"
		existingContent := ""
		if data, err := os.ReadFile(gitignorePath); err == nil {
			existingContent = string(data)
		}
		entry := index.Dir + "/"
		if !strings.Contains(existingContent, entry) {
			var newContent string
			if existingContent == "" {
				newContent = `# Quill index (rebuilt with 'quill build')
` + entry + `
`
			} else {
				gitignoreStatus = "updated"
				newContent = strings.TrimRight(existingContent, "\n") + "\n\n# Quill index\n" + entry + "\n"
			}
			if err := os.WriteFile(gitignorePath, []byte(newContent), 0644); err != nil {
				return fmt.Errorf("failed to write .gitignore: %w", err)
			}
		} else {
			gitignoreStatus = "already has Quill entries"
		}

		// Sample post, only on a fresh site
		samplePath := filepath.Join(postsDir, "hello-world.md")
		createdSample := false
		if _, err := os.Stat(samplePath); os.IsNotExist(err) {
			sample := fmt.Sprintf(`---
title: Hello, World
date: %s
description: Your first post. Edit or delete it.
tags:
  - meta
---

## Welcome

This post lives at content/posts/hello-world.md. The filename becomes the
slug, so this one is reachable as "hello-world".

Run 'quill build' to index the site, then try:

`+"```"+`
quill list
quill search hello
quill read hello-world
`+"```"+`
`, time.Now().Format(frontmatter.DateLayout))
			if err := os.WriteFile(samplePath, []byte(sample), 0644); err != nil {
				return fmt.Errorf("failed to write sample post: %w", err)
			}
			createdSample = true
		}

		// Global config
		createdConfigPath, err := config.CreateDefault()
		if err != nil {
			return fmt.Errorf("failed to create global config: %w", err)
		}

		fmt.Printf("✓ Created %s\n", config.DefaultContentDir)
		fmt.Printf("✓ Ensured %s/ directory exists\n", index.Dir)
		switch gitignoreStatus {
		case "created":
			fmt.Println("✓ Created .gitignore")
		case "updated":
			fmt.Println("✓ Updated .gitignore (added Quill entries)")
		default:
			fmt.Println("• .gitignore already has Quill entries")
		}
		if createdSample {
			fmt.Println("✓ Created content/posts/hello-world.md")
		} else {
			fmt.Println("• content/posts/hello-world.md already exists (kept)")
		}
		fmt.Printf("• Global config: %s\n", createdConfigPath)

		fmt.Println("\nSite initialized! Run 'quill build --site-path " + path + "' to index it.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
