package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fuzzydatetime"
	"github.com/spf13/cobra"
)

func newValidateCmd(env *rootEnv) *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "validate [input...]",
		Short: "Check every input and report the ones that do not parse",
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
			var first error
			failed := 0
			for _, input := range inputs {
				_, err := flags.parse(input, opts)
				if err == nil {
					fmt.Fprintf(out, "ok\t%s\n", input)
					continue
				}
				failed++
				if first == nil {
					first = err
				}
				var e *fuzzydatetime.Error
				if errors.As(err, &e) {
					fmt.Fprintf(out, "FAIL\t%s\t%s: %s\n", input, e.Kind, e.Description())
				} else {
					fmt.Fprintf(out, "FAIL\t%s\t%v\n", input, err)
				}
			}
			if failed > 0 {
				return withHint(errors.Wrapf(first, "%d of %d inputs are invalid", failed, len(inputs)))
			}
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
