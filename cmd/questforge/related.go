package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"questforge/internal/config"
	"questforge/internal/dialogue"
)

func relatedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "related <quest-id>",
		Short: "Find dialogue options whose consequences touch a quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelated(args[0])
		},
	}
	return cmd
}

func runRelated(questID string) error {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return err
	}

	corpus, err := loadCorpus(cfg)
	if err != nil {
		return err
	}
	if corpus == nil {
		return fmt.Errorf("no dialogue corpus configured in %s", configPath)
	}

	related := dialogue.FindRelated(corpus, questID)
	if len(related) == 0 {
		fmt.Fprintln(os.Stdout, "No related dialogue found.")
		return nil
	}
	for _, entry := range related {
		fmt.Fprintf(os.Stdout, "%s (%s): %q -> %q\n", entry.NodeID, entry.Speaker, entry.NodeText, entry.OptionText)
	}
	return nil
}
