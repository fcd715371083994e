package main

import (
	"os"

	"github.com/simonhull/solidified/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.NewCmd())
	rootCmd.AddCommand(commands.OptionsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
