// Command textio exposes the text-toolkit transforms on the command line:
// Base64 and hex transcoding, quoted tokenization, delimiter splitting, and
// word wrapping, plus an interactive playground.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cfg holds the effective configuration after the TOML file and flags are
// merged. Populated by the root command's PersistentPreRunE.
var cfg = defaultConfig()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "textio",
		Short:        "Text transcoding and tokenization toolkit",
		Long:         "Encode, decode, tokenize, and reflow text using the text-toolkit primitives.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			loaded, err := loadConfig(configPath(path))
			if err != nil {
				return err
			}
			cfg = loaded

			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose || cfg.Verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
				SetLogger(l)
			}
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/textio/config.toml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newBase64Cmd(),
		newHexCmd(),
		newWrapCmd(),
		newSplitCmd(),
		newJoinCmd(),
		newQuoteCmd(),
		newUnquoteCmd(),
		newInteractiveCmd(),
	)

	return root
}

// readInput returns the command's payload: the arguments joined with single
// spaces when present, otherwise all of stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
