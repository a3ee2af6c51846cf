package main

import (
	"math"
	"strings"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"

	defaultMax = 255
)

// app carries the state shared by all subcommands.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{
		v:   viper.New(),
		log: logrus.New(),
	}

	cmd := &cobra.Command{
		Use:          "errno",
		Short:        "Look up operating system error codes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("output", "o", outputText, "output format (text|json|yaml)")
	flags.String("log-level", "warn", "log level (trace|debug|info|warn|error)")

	a.v.SetEnvPrefix("ERRNO")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd.AddCommand(
		a.newDescribeCommand(),
		a.newListCommand(),
		a.newSearchCommand(),
	)
	return cmd
}

// configure applies logging and validates shared flags once cobra has parsed them.
func (a *app) configure(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return platformerrors.Wrap(err, platformerrors.CodeInvalidConfig, "failed to bind flags")
	}

	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if lvl, err := logrus.ParseLevel(a.v.GetString("log-level")); err == nil {
		a.log.SetLevel(lvl)
	} else {
		a.log.SetLevel(logrus.WarnLevel)
		a.log.Warnf("invalid log level %q, fallback to warn", a.v.GetString("log-level"))
	}

	switch a.output() {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return platformerrors.Newf(platformerrors.CodeInvalidConfig, "unsupported output format %q", a.v.GetString("output"))
	}
}

func (a *app) output() string {
	return strings.ToLower(a.v.GetString("output"))
}

// maxCode reads the --max flag of cmd, falling back to ERRNO_MAX.
// The limit must lie in [0, math.MaxInt32] so every candidate is a valid code.
func (a *app) maxCode(cmd *cobra.Command) (int, error) {
	if err := a.v.BindPFlag("max", cmd.Flags().Lookup("max")); err != nil {
		return 0, platformerrors.Wrap(err, platformerrors.CodeInvalidConfig, "failed to bind max flag")
	}
	limit, err := cast.ToInt64E(a.v.Get("max"))
	if err != nil {
		return 0, platformerrors.Wrapf(err, platformerrors.CodeInvalidConfig, "invalid max %v", a.v.Get("max"))
	}
	if limit < 0 || limit > math.MaxInt32 {
		return 0, platformerrors.Newf(platformerrors.CodeInvalidConfig, "max must be between 0 and %d: %d", math.MaxInt32, limit)
	}
	return int(limit), nil
}
