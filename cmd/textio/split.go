package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/text-toolkit/split"
)

func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [text...]",
		Short: "Split text on a delimiter",
		Long:  "Split input on a literal delimiter (or whitespace runs with --words), one token per output line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, _ := cmd.Flags().GetString("sep")
			max, _ := cmd.Flags().GetInt("max")
			min, _ := cmd.Flags().GetInt("min")
			words, _ := cmd.Flags().GetBool("words")

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var tokens []string
			if words {
				tokens = split.WordsN(string(data), max)
			} else {
				tokens = split.MinMax(sep, string(data), min, max)
			}

			for _, tok := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), tok)
			}
			return nil
		},
	}

	cmd.Flags().StringP("sep", "s", ",", "delimiter (empty string splits into characters)")
	cmd.Flags().Int("max", -1, "maximum number of tokens (-1 = unbounded)")
	cmd.Flags().Int("min", 0, "pad with empty tokens up to this count")
	cmd.Flags().Bool("words", false, "split on whitespace runs instead of a delimiter")
	return cmd
}

func newJoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join [token...]",
		Short: "Join tokens with a separator",
		Long:  "Join arguments, or stdin lines when no arguments are given, with the separator.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sep, _ := cmd.Flags().GetString("sep")

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

			fmt.Fprintln(cmd.OutOrStdout(), split.Join(sep, tokens))
			return nil
		},
	}

	cmd.Flags().StringP("sep", "s", ",", "separator inserted between tokens")
	return cmd
}
