package app

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arloliu/lzostream"
	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/format"
	"github.com/arloliu/lzostream/internal/config"
	"github.com/arloliu/lzostream/pipeline"
)

// methodOptions are the flags that select a method and its framing.
type methodOptions struct {
	format     string
	headerless bool
	limitless  bool
	block      string
	lenient    bool
}

func (o *methodOptions) addFormatFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.format, "format", "f", "", "compression method (default "+format.Default.String()+")")
	fs.BoolVarP(&o.headerless, "headerless", "h", false, "no container header")
}

// options turns the flags, with cfg filling those not given, into pipeline options.
func (o *methodOptions) options(fs *pflag.FlagSet, cfg *config.Config, logger *logrus.Entry) ([]pipeline.Option, error) {
	name := cfg.DefaultFormat
	if fs.Changed("format") {
		name = o.format
	}

	id, err := parseFormat(name)
	if err != nil {
		return nil, err
	}

	opts := []pipeline.Option{pipeline.WithFormat(id), pipeline.WithLogger(logger)}

	if flagOr(fs, "headerless", o.headerless, cfg.Headerless) {
		opts = append(opts, pipeline.WithHeaderless())
	}
	if flagOr(fs, "limitless", o.limitless, cfg.Limitless) {
		opts = append(opts, pipeline.WithLimitless())
	}
	if flagOr(fs, "lenient", o.lenient, cfg.LenientHashes) {
		opts = append(opts, pipeline.WithLenientHashes())
	}

	blockSize := cfg.BlockSize
	if fs.Changed("block") {
		if blockSize, err = config.ParseBlockSize(o.block); err != nil {
			return nil, err
		}
	}
	if blockSize > 0 {
		opts = append(opts, pipeline.WithBlockSize(blockSize))
	}

	if cfg.MaxSize > 0 {
		opts = append(opts, pipeline.WithMaxSize(cfg.MaxSize))
	}

	return opts, nil
}

// parseFormat resolves a method name given on the command line. None names
// no method and is rejected like any unknown name.
func parseFormat(name string) (format.ID, error) {
	id, err := lzostream.FormatID(name)
	if err != nil {
		return format.None, err
	}
	if id.IsNone() {
		return format.None, fmt.Errorf("%w: %s", errs.ErrUnknownFormat, name)
	}

	return id, nil
}

// flagOr returns the flag value when the flag was given and fallback otherwise.
func flagOr(fs *pflag.FlagSet, name string, value, fallback bool) bool {
	if f := fs.Lookup(name); f != nil && f.Changed {
		return value
	}

	return fallback
}

// readLimit is the largest input the byte source accepts.
func readLimit(cfg *config.Config) int64 {
	if cfg.MaxSize > 0 {
		return cfg.MaxSize
	}

	return pipeline.DefaultMaxSize
}

// normalizeBlockSize maps the --blocksize spelling onto --block.
func normalizeBlockSize(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "blocksize" {
		name = "block"
	}

	return pflag.NormalizedName(name)
}

// streamOptions carries what every data command needs after Complete.
type streamOptions struct {
	paths  ioOptions
	cfg    *config.Config
	logger *logrus.Entry
	source source
	sink   sink
}

func (o *streamOptions) complete(cmd *cobra.Command, root *rootOptions) error {
	cfg, logger, err := root.load(cmd.Name())
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger
	o.source = source{
		path:       o.paths.input,
		stdin:      root.streams.In,
		isTerminal: root.streams.IsTerminal,
		limit:      readLimit(cfg),
		logger:     logger,
	}
	o.sink = sink{path: o.paths.output, stdout: root.streams.Out}

	return nil
}
