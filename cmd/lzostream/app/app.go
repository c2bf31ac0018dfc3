package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arloliu/lzostream"
	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/internal/config"
	"github.com/arloliu/lzostream/internal/log"
)

// Streams are the process resources the commands use.
type Streams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Getenv reads environment variables.
	Getenv func(string) string
	// IsTerminal reports whether In is an interactive terminal.
	IsTerminal func() bool
}

// DefaultStreams returns the streams of the running process.
func DefaultStreams() Streams {
	return Streams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
		Getenv: os.Getenv,
		IsTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// Execute runs the command line and returns the process exit status.
//
// Failures are reported on ErrOut as the tool title followed by one
// diagnostic line. Empty input produces no output and exit status 0.
func Execute(args []string, streams Streams) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	cmd := NewLZOStreamCommand(streams)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil || errors.Is(err, errs.ErrEmptyInput) {
		return 0
	}

	// cobra reports unknown commands and flags without a kind
	if errs.KindOf(err) == errs.KindNone {
		err = errs.Wrap(errs.IllegalData, err)
	}

	fmt.Fprintf(streams.ErrOut, "%s\n\n%s\n", lzostream.Title, err)

	return errs.ExitCode(err)
}

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	streams Streams

	configPath string
	logLevel   string
	debug      bool
}

// NewLZOStreamCommand creates the lzostream root command.
func NewLZOStreamCommand(streams Streams) *cobra.Command {
	opts := &rootOptions{streams: streams}
	cmd := &cobra.Command{
		Use:           "lzostream <command> [<option>...] [> output] [< input]",
		Short:         lzostream.Title,
		Long:          lzostream.Title + "\n\nCompress and decompress byte streams in a CRC-checked container.\n\n" + methodsHelp(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	opts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewCompressCommand(opts))
	cmd.AddCommand(NewDecompressCommand(opts))
	cmd.AddCommand(NewInfoCommand(opts))
	cmd.AddCommand(NewFormatsCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}

func (o *rootOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file (default $"+config.EnvConfig+")")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: error, warning, info, debug")
	fs.BoolVarP(&o.debug, "debug", "d", false, "debug logging")
}

// load builds the effective configuration and the logger of a command.
func (o *rootOptions) load(command string) (*config.Config, *logrus.Entry, error) {
	getenv := o.streams.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	cfg, err := config.Load(o.configPath, getenv)
	if err != nil {
		return nil, nil, err
	}

	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, log.NewLogger(o.streams.ErrOut, cfg.LogLevel, o.debug, command), nil
}

// addHelpFlag registers --help without a shorthand so -h stays free for --headerless.
func addHelpFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("help", false, "help for "+cmd.Name())
}
