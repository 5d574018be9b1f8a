package cmd

import (
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interpret commands from standard input",
	Long: `Reads one line at a time from standard input and interprets it.

Rejected statements are reported and journaled; processing continues with
the next line. Stops at @EXIT or end of input.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.OutOrStdout(), "repl")
	if err != nil {
		printError("starting session", err)
		return err
	}

	runErr := s.app.RunReader(cmd.InOrStdin(), true)
	if err := s.Close(); err != nil {
		printError("closing session", err)
	}
	return runErr
}
