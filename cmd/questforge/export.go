package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"questforge/internal/config"
	"questforge/internal/export"
)

func exportCmd() *cobra.Command {
	var format string
	var outPath string
	cmd := &cobra.Command{
		Use:   "export <quest-id>",
		Short: "Export a quest as line-oriented text or the structured tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0], format, outPath)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or tree")
	cmd.Flags().StringVar(&outPath, "out", "", "Write to a file instead of stdout")
	return cmd
}

func runExport(id, format, outPath string) error {
	ctx := context.Background()

	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	q, err := db.Get(ctx, id)
	if err != nil {
		return err
	}
	if q == nil {
		return fmt.Errorf("quest %q not found", id)
	}

	var content []byte
	switch format {
	case "text":
		content = []byte(export.Text(q))
	case "tree":
		content, err = export.TreeJSON(q)
		if err != nil {
			return err
		}
		content = append(content, '\n')
	default:
		return fmt.Errorf("format must be text or tree, got %q", format)
	}

	if outPath == "" {
		_, err = os.Stdout.Write(content)
		return err
	}
	return os.WriteFile(outPath, content, 0o600)
}
