package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"questforge/internal/config"
	"questforge/internal/quest"
)

func newCmd() *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a quest with a single start stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(title)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Quest title")
	return cmd
}

func runNew(title string) error {
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

	col, err := db.LoadAll(ctx)
	if err != nil {
		return err
	}

	editor := quest.NewEditor()
	q := editor.CreateQuest(col)
	if title != "" {
		q.Title = title
	}
	if err := db.Put(ctx, q); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, q.ID)
	return nil
}
