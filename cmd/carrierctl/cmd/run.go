package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>...",
	Short: "Interpret command scripts",
	Long: `Interprets each script in order, line by line, as if it were typed
at the REPL. @EXIT in any script ends the whole run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScripts,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScripts(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.OutOrStdout(), args[0])
	if err != nil {
		printError("starting session", err)
		return err
	}

	var runErr error
	for _, path := range args {
		if s.app.Exited() {
			break
		}
		if err := s.app.RunFile(path); err != nil {
			printError(path, err)
			runErr = errors.Join(runErr, err)
		}
	}

	if err := s.Close(); err != nil {
		printError("closing session", err)
	}
	return runErr
}
