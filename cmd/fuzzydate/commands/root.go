package commands

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fuzzydatetime"
	"github.com/cockroachdb/fuzzydatetime/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootEnv carries the persistent flags and the loaded config to the
// subcommands.
type rootEnv struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

func NewRootCmd() *cobra.Command {
	env := &rootEnv{}
	rootCmd := &cobra.Command{
		Use:   "fuzzydate",
		Short: "Parse and normalize partially specified dates and times",
		Long: `Parse and normalize partially specified dates and times such as
"2024", "2024/5/1" or "2024-05-01T09:30 JST".

Inputs are taken from the arguments, or one per line from stdin.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&env.configPath, "config", "", "Config file path (default $XDG_CONFIG_HOME/fuzzydate/config.toml)")
	rootCmd.PersistentFlags().StringVar(&env.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&env.logFormat, "log-format", "", "Log format: text or json")

	rootCmd.AddCommand(newParseCmd(env))
	rootCmd.AddCommand(newNormalizeCmd(env))
	rootCmd.AddCommand(newValidateCmd(env))
	rootCmd.AddCommand(newZonesCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func (env *rootEnv) load(cmd *cobra.Command) error {
	path := env.configPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	if env.logLevel != "" {
		cfg.LogLevel = env.logLevel
	}
	if env.logFormat != "" {
		cfg.LogFormat = env.logFormat
	}

	handler, err := newLogHandler(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("loaded config", "path", path)

	env.cfg = cfg
	return nil
}

func newLogHandler(w io.Writer, level, format string) (slog.Handler, error) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn", "":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return nil, errors.Newf("invalid log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: l}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	}
	return nil, errors.Newf("invalid log format %q", format)
}

// readInputs returns args, or the non-blank lines of stdin if there are no
// args. An interactive stdin is never read.
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errors.New("no inputs: pass them as arguments or pipe them on stdin")
	}
	var inputs []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	return inputs, errors.Wrap(scanner.Err(), "reading stdin")
}

var kindHints = map[fuzzydatetime.ErrorKind]string{
	fuzzydatetime.KindFormat:    "dates are written YYYY/MM/DD hh:mm:ss, with '/', '-' or '.' between date fields and ':', '-' or '.' between time fields",
	fuzzydatetime.KindValue:     "check that every field is in range for its month and year",
	fuzzydatetime.KindPrecision: "give more fields, or lower --required",
	fuzzydatetime.KindTimezone:  "run 'fuzzydate zones' to list the supported abbreviations",
}

func withHint(err error) error {
	kind, ok := fuzzydatetime.KindOf(err)
	if !ok {
		return err
	}
	return errors.WithHint(err, kindHints[kind])
}

// ExitCode maps an error returned by the root command to a process exit
// code: 2 through 5 for format, value, precision and timezone failures, 1
// for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	kind, ok := fuzzydatetime.KindOf(err)
	if !ok {
		return 1
	}
	return 2 + int(kind)
}
