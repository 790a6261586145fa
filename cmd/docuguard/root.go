package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

type globalOptions struct {
	configPath string
	input      string
	debug      bool
}

// rootCommand creates the docuguard command tree.
func rootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "docuguard",
		Short:         "Turn PII mentions into character spans and BIO token labels",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "docuguard.yaml", "Path to DocuGuard config file")
	rootCmd.PersistentFlags().StringVarP(&opts.input, "input", "i", "", "Input file (default stdin)")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if opts.debug {
			return os.Setenv("DOCUGUARD_DEBUG", "1")
		}
		return nil
	}

	rootCmd.AddCommand(
		alignCommand(opts),
		tokenizeCommand(opts),
	)
	return rootCmd
}

// readInput returns the --input file contents, or stdin when unset.
func readInput(cmd *cobra.Command, opts *globalOptions) ([]byte, error) {
	if opts.input == "" || opts.input == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(opts.input)
}
