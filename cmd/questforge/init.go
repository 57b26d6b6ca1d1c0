package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var projectName string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new questforge project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			return runInit(projectName)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	return cmd
}

func runInit(projectName string) error {
	catalogsPath := "catalogs.yaml"
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}
	if _, err := os.Stat(catalogsPath); err == nil {
		return fmt.Errorf("%s already exists", catalogsPath)
	}

	configContents := fmt.Sprintf("project: %s\nversion: 1\n\ndatabase:\n  dsn: sqlite://questforge.db\n\n# Optional authoring references. Leave blank to skip the lint checks\n# and dialogue lookups that use them.\ndialogue: \"\"\ncatalogs: catalogs.yaml\n", projectName)
	if err := os.WriteFile(configPath, []byte(configContents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	catalogsContents := "version: 1\n\nskills: []\nitems: []\nlocations: []\n"
	if err := os.WriteFile(catalogsPath, []byte(catalogsContents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", catalogsPath, err)
	}

	return nil
}
