package app

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arloliu/lzostream/internal/pool"
	"github.com/arloliu/lzostream/pipeline"
)

type compressOptions struct {
	streamOptions
	method methodOptions

	opts []pipeline.Option
}

// NewCompressCommand creates the compress command.
func NewCompressCommand(root *rootOptions) *cobra.Command {
	opts := &compressOptions{}
	cmd := &cobra.Command{
		Use:     "compress",
		Aliases: []string{"c"},
		Args:    cobra.NoArgs,
		Short:   "Compress the input into a container",
		Example: "lzostream compress -f Lzo1x_1 -i data.bin -o data.lzo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Complete(cmd, root); err != nil {
				return err
			}

			return opts.run(opts.logger)
		},
	}

	addHelpFlag(cmd)
	opts.AddFlags(cmd)

	return cmd
}

func (o *compressOptions) AddFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	o.paths.AddFlags(fs)
	o.method.addFormatFlags(fs)
	fs.BoolVarP(&o.method.limitless, "limitless", "l", false, "keep compressed output even when it does not shrink")
}

func (o *compressOptions) Complete(cmd *cobra.Command, root *rootOptions) error {
	if err := o.streamOptions.complete(cmd, root); err != nil {
		return err
	}

	opts, err := o.method.options(cmd.Flags(), o.cfg, o.logger)
	if err != nil {
		return err
	}
	o.opts = opts

	return nil
}

func (o *compressOptions) run(logger *logrus.Entry) error {
	buf, err := o.source.Read()
	if err != nil {
		return err
	}
	defer pool.PutReadBuffer(buf)

	res, err := pipeline.Compress(buf.Bytes(), o.opts...)
	if err != nil {
		return err
	}

	stats := res.Stats()
	logger.WithFields(logrus.Fields{
		"format": stats.Algorithm,
		"input":  stats.OriginalSize,
		"output": len(res.Data),
		"stored": stats.Stored,
		"ratio":  stats.CompressionRatio(),
	}).Info("compressed")

	return o.sink.Write(res.Data)
}
