package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/text-toolkit/quoted"
)

func newQuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote [token...]",
		Short: "Render tokens as a quoted string",
		Long:  "Join arguments, or stdin lines when no arguments are given, quoting and escaping tokens that need it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := args
			if len(tokens) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					tokens = append(tokens, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), quoted.Join(tokens))
			return nil
		},
	}
}

func newUnquoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unquote [text...]",
		Short: "Split a quoted string into tokens",
		Long:  "Tokenize input honoring double quotes and backslash escapes, one token per output line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			tokens, err := quoted.Split(string(data))
			if err != nil {
				return err
			}
			for _, tok := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}
			return nil
		},
	}
}
