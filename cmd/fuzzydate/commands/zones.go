package commands

import (
	"fmt"

	"github.com/cockroachdb/fuzzydatetime"
	"github.com/spf13/cobra"
)

func newZonesCmd() *cobra.Command {
	var formats []string

	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List the supported timezone abbreviations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Keep the order given; Timezone.Format picks the first that applies.
			var fs []fuzzydatetime.TZFormat
			for _, name := range formats {
				f, err := fuzzydatetime.ParseTZFormats(name)
				if err != nil {
					return err
				}
				fs = append(fs, f)
			}

			out := cmd.OutOrStdout()
			for _, tz := range fuzzydatetime.Timezones() {
				if len(fs) > 0 {
					fmt.Fprintf(out, "%-5s %s\n", tz.Label(), tz.Format(fs...))
					continue
				}
				fmt.Fprintf(out, "%-5s %s  %s\n", tz.Label(), tz.OffsetString(false, ":"), tz.Region())
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&formats, "format", nil, "Render each zone in the first applicable format, e.g. z,abbr")
	return cmd
}
