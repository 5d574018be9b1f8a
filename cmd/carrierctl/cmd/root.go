package cmd

import (
	"fmt"
	"os"

	"github.com/carrierops/interpreter/internal/config"
	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "carrierctl",
	Short: "Carrier operations command interpreter",
	Long: `carrierctl reads the carrier operations command language, validates
each statement and routes the resulting commands to their handlers.

Accepted commands and rejected statements are journaled to the configured
storage backend (memory, sqlite or postgres).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load(configDir)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "directory containing "+config.ConfigFileName)
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
