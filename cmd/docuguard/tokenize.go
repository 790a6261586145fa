package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/straja-ai/docuguard/internal/tokenize"
)

func tokenizeCommand(opts *globalOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Print tokens with their character spans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := tokenize.New(kind)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, opts)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			tokens, err := tok.Tokenize(strings.TrimRight(string(data), "\r\n"))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, t := range tokens {
				fmt.Fprintf(w, "%d\t%d\t%s\n", t.Start, t.End, t.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "tokenizer", "t", tokenize.KindBasic, "Tokenizer: basic, prose")
	return cmd
}
