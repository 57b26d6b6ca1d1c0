package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"questforge/internal/config"
	"questforge/internal/export"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <quest-id>",
		Short: "Print a quest in the text form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args[0])
		},
	}
	return cmd
}

func runShow(id string) error {
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

	fmt.Fprint(os.Stdout, export.Text(q))
	return nil
}
