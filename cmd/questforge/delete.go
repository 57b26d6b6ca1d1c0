package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"questforge/internal/config"
	"questforge/internal/quest"
)

func deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <quest-id>",
		Short: "Delete a quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args[0], yes)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func runDelete(id string, yes bool) error {
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
	if !yes {
		editor.Confirm = promptConfirm
	}
	if !editor.DeleteQuest(col, id) {
		fmt.Fprintln(os.Stdout, "Nothing deleted.")
		return nil
	}
	return db.Delete(ctx, id)
}

func promptConfirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
