package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Optionally load environment variables from a .env file.
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use:          "kvctl",
		Short:        "Interact with remote key-value storage namespaces",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmdKv())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
