package cli

import (
	"errors"
	"fmt"

	"github.com/scope-labs/mkbpf/internal/branding"
	"github.com/scope-labs/mkbpf/internal/config"
	"github.com/scope-labs/mkbpf/internal/scaffold"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes returned by ExitCode.
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitUsage           = 2
	ExitDirectoryExists = 3
	ExitWriteFailure    = 4
)

type buildInfo struct {
	version string
	commit  string
	date    string
}

type rootOptions struct {
	dir        string
	appVersion string
	bugAddress string
	unchecked  bool
	verbose    bool
}

// usageError marks errors caused by how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd(build buildInfo) *cobra.Command {
	opts := &rootOptions{}
	log := logrus.New()

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <app_name>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a new directory named after the application containing
a shared header (<app_name>.h), a kernel-side probe (<app_name>.bpf.c) and a
user-space loader (<app_name>.c) built around a BPF ring buffer.

Examples:
  mkbpf execsnoop
  mkbpf --dir bpf --bug-address tracing@example.com opensnoop

An application named after a subcommand (config, help, templates, version)
must follow "--", which ends flag and subcommand parsing:
  mkbpf --dir bpf -- version`,
		Args:          requireAppName,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogger(log, cmd, opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, opts, log, args[0])
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	cmd.Flags().StringVar(&opts.dir, "dir", "", "Parent directory for the new application (default: current directory)")
	cmd.Flags().StringVar(&opts.appVersion, "app-version", "", "Program version written into the loader (default: "+scaffold.DefaultVersion+")")
	cmd.Flags().StringVar(&opts.bugAddress, "bug-address", "", "Bug report address written into the loader (default: "+scaffold.DefaultBugAddress+")")
	cmd.Flags().BoolVar(&opts.unchecked, "unchecked", false, "Accept any non-empty name without identifier validation")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log each step to stderr")

	cmd.AddCommand(newVersionCmd(build))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newTemplatesCmd())

	return cmd
}

// requireAppName accepts exactly one positional argument.
func requireAppName(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return &usageError{err: fmt.Errorf("%w (usage: %s)", scaffold.ErrMissingArgument, cmd.UseLine())}
	case len(args) > 1:
		return &usageError{err: fmt.Errorf("accepts 1 arg, received %d (usage: %s)", len(args), cmd.UseLine())}
	}
	return nil
}

// usageArgs makes a subcommand's argument-count errors exit like the root's.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &usageError{err: fmt.Errorf("%w (usage: %s)", err, cmd.UseLine())}
		}
		return nil
	}
}

func runScaffold(cmd *cobra.Command, opts *rootOptions, log logrus.FieldLogger, name string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	req := scaffold.NewRequest(name)
	req.Version = resolve(cmd, "app-version", opts.appVersion, cfg.Get(config.KeyAppVersion), req.Version)
	req.BugAddress = resolve(cmd, "bug-address", opts.bugAddress, cfg.Get(config.KeyBugAddress), req.BugAddress)

	unchecked := cfg.GetBool(config.KeyUnchecked)
	if cmd.Flags().Changed("unchecked") {
		unchecked = opts.unchecked
	}

	result, err := scaffold.Generate(req, scaffold.Options{
		ParentDir: resolve(cmd, "dir", opts.dir, cfg.Get(config.KeyOutputDir), "."),
		Unchecked: unchecked,
		Log:       log,
	})
	if err != nil {
		return err
	}

	scaffold.FormatResult(cmd.OutOrStdout(), result)
	return nil
}

// resolve picks an explicitly set flag over config over the fallback.
func resolve(cmd *cobra.Command, flag, flagValue, configValue, fallback string) string {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return fallback
}

func configureLogger(log *logrus.Logger, cmd *cobra.Command, verbose bool) {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
}

// Execute runs the root command with build info injected via ldflags. The
// error, if any, has already been printed to stderr.
func Execute(version, commit, date string) error {
	cmd := newRootCmd(buildInfo{version: version, commit: commit, date: date})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, scaffold.ErrDirectoryExists):
		return ExitDirectoryExists
	case scaffold.IsWriteError(err):
		return ExitWriteFailure
	case errors.As(err, &ue),
		errors.Is(err, scaffold.ErrMissingArgument),
		errors.Is(err, scaffold.ErrInvalidName),
		errors.Is(err, scaffold.ErrInvalidVersion),
		errors.Is(err, scaffold.ErrInvalidBugAddress):
		return ExitUsage
	default:
		return ExitFailure
	}
}
