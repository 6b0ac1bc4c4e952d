package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/text-toolkit/wordwrap"
)

func newWrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrap [text...]",
		Short: "Reflow text to a fixed width",
		Long:  "Greedily pack words into lines of at most the given width, keeping existing line breaks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")
			if !cmd.Flags().Changed("width") {
				width = defaultWrapWidth()
			}
			if width <= 0 {
				return fmt.Errorf("width must be positive, got %d", width)
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			cmd.OutOrStdout().Write(wordwrap.InPlace(data, width))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntP("width", "w", 0, "maximum line width (default: terminal width)")
	return cmd
}

// defaultWrapWidth picks the wrap width when no flag is given: the terminal
// width when stdout is a terminal, then the configured wrap_width, then 80.
func defaultWrapWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if cfg.WrapWidth > 0 {
		return cfg.WrapWidth
	}
	return 80
}
