package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newNormalizeCmd(env *rootEnv) *cobra.Command {
	var flags formatFlags

	cmd := &cobra.Command{
		Use:   "normalize [input...]",
		Short: "Rewrite inputs in canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := env.cfg.FormatOptions()
			if err != nil {
				return err
			}
			opts, err := flags.apply(cmd.Flags(), base)
			if err != nil {
				return err
			}
			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, input := range inputs {
				s, err := flags.normalize(input, opts)
				if err != nil {
					return withHint(err)
				}
				slog.Debug("normalized", "input", input, "output", s)
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
