package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/text-toolkit/hexdump"
)

func newHexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex [text...]",
		Short: "Dump bytes as hex or parse hex back to bytes",
		Long:  "Render arguments or stdin as uppercase hex, decode with -d, or emit a C array literal with --source.",
		RunE: func(cmd *cobra.Command, args []string) error {
			decode, _ := cmd.Flags().GetBool("decode")
			source, _ := cmd.Flags().GetString("source")

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			switch {
			case decode:
				out, err := hexdump.Parse(strings.TrimSpace(string(data)))
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			case source != "":
				fmt.Fprint(cmd.OutOrStdout(), hexdump.SourceCode(data, source))
				return nil
			default:
				fmt.Fprintln(cmd.OutOrStdout(), hexdump.Dump(data))
				return nil
			}
		},
	}

	cmd.Flags().BoolP("decode", "d", false, "parse hex input instead of dumping")
	cmd.Flags().String("source", "", "emit a C array literal with the given identifier")
	return cmd
}
