package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"questforge/internal/config"
	"questforge/internal/dialogue"
)

func speakersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speakers",
		Short: "List distinct NPC speakers from the dialogue corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpeakers()
		},
	}
	return cmd
}

func runSpeakers() error {
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

	speakers := dialogue.Speakers(corpus)
	if len(speakers) == 0 {
		fmt.Fprintln(os.Stdout, "No speakers found.")
		return nil
	}
	for _, speaker := range speakers {
		fmt.Fprintln(os.Stdout, speaker)
	}
	return nil
}
