package main

import (
	"context"

	"github.com/spf13/cobra"

	"questforge/internal/config"
	"questforge/internal/quest"
)

func renameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <quest-id> <new-id>",
		Short: "Change a quest's identifier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(args[0], args[1])
		},
	}
	return cmd
}

func runRename(oldID, newID string) error {
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
	if err := editor.RenameQuest(col, oldID, newID); err != nil {
		return err
	}
	return db.Rename(ctx, oldID, newID)
}
