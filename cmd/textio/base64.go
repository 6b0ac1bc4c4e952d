package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/text-toolkit/base64"
)

func newBase64Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "base64 [text...]",
		Short: "Encode or decode Base64",
		Long:  "Encode arguments or stdin to Base64, or decode Base64 text back to bytes with -d.",
		RunE: func(cmd *cobra.Command, args []string) error {
			decode, _ := cmd.Flags().GetBool("decode")
			width, _ := cmd.Flags().GetInt("wrap")
			if !cmd.Flags().Changed("wrap") {
				width = cfg.LineLength
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if decode {
				out, err := base64.Decode(string(data))
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}

			Logger().Debug("encoding", zap.Int("bytes", len(data)), zap.Int("wrap", width))
			fmt.Fprintln(cmd.OutOrStdout(), base64.EncodeWrapped(data, width))
			return nil
		},
	}

	cmd.Flags().BoolP("decode", "d", false, "decode instead of encode")
	cmd.Flags().IntP("wrap", "w", 0, "line break after every N output symbols (0 = none)")
	return cmd
}
