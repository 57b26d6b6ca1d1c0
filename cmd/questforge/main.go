package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "questforge",
		Short: "Quest authoring toolkit for narrative games",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.AddCommand(initCmd())
	root.AddCommand(listCmd())
	root.AddCommand(newCmd())
	root.AddCommand(showCmd())
	root.AddCommand(renameCmd())
	root.AddCommand(deleteCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(speakersCmd())
	root.AddCommand(relatedCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
