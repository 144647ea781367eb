package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newParseCmd(env *rootEnv) *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "parse [input...]",
		Short: "Parse inputs and print their components, precision and timezone",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := env.cfg.ParseOptions()
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
				dt, err := flags.parse(input, opts)
				if err != nil {
					return withHint(err)
				}
				slog.Debug("parsed", "input", input, "precision", dt.Precision, "timezone", dt.TZ.Label())
				tz := "-"
				if dt.HasTimezone() {
					tz = fmt.Sprintf("%s(%s)", dt.TZ.Label(), dt.TZ.OffsetString(false, ":"))
				}
				fmt.Fprintf(out, "%04d-%02d-%02d %02d:%02d:%02d\t%s\t%s\n",
					dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Precision, tz)
			}
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
