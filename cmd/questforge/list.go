package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"questforge/internal/config"
)

func listCmd() *cobra.Command {
	var importance string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests in the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(importance)
		},
	}
	cmd.Flags().StringVar(&importance, "importance", "", "Filter by importance (Main, Side, Misc)")
	return cmd
}

func runList(importance string) error {
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

	ids := make([]string, 0, len(col))
	for id := range col {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	shown := 0
	for _, id := range ids {
		q := col[id]
		if importance != "" && string(q.Importance) != importance {
			continue
		}
		fmt.Fprintf(os.Stdout, "%s  %s (%s, %d stages)\n", q.ID, q.Title, q.Importance, len(q.Stages))
		shown++
	}
	if shown == 0 {
		fmt.Fprintln(os.Stdout, "No quests found.")
	}
	return nil
}
