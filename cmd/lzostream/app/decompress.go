package app

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arloliu/lzostream/internal/pool"
	"github.com/arloliu/lzostream/pipeline"
)

type decompressOptions struct {
	streamOptions
	method methodOptions

	opts []pipeline.Option
}

// NewDecompressCommand creates the decompress command.
func NewDecompressCommand(root *rootOptions) *cobra.Command {
	opts := &decompressOptions{}
	cmd := &cobra.Command{
		Use:     "decompress",
		Aliases: []string{"d"},
		Args:    cobra.NoArgs,
		Short:   "Decompress a container, or headerless data with -h -b",
		Example: "lzostream decompress -i data.lzo -o data.bin\n" +
			"lzostream decompress -h -f Lzo1x_1 -b 65536 < raw.lzo > data.bin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Complete(cmd, root); err != nil {
				return err
			}

			return opts.run(opts.logger)
		},
	}

	addHelpFlag(cmd)
	opts.AddFlags(cmd)
	cmd.SetGlobalNormalizationFunc(normalizeBlockSize)

	return cmd
}

func (o *decompressOptions) AddFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	o.paths.AddFlags(fs)
	o.method.addFormatFlags(fs)
	fs.StringVarP(&o.method.block, "block", "b", "", "decompressed size limit for headerless data")
	fs.BoolVar(&o.method.lenient, "lenient", false, "skip hashes stored as zero")
}

func (o *decompressOptions) Complete(cmd *cobra.Command, root *rootOptions) error {
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

func (o *decompressOptions) run(logger *logrus.Entry) error {
	buf, err := o.source.Read()
	if err != nil {
		return err
	}
	defer pool.PutReadBuffer(buf)

	out, err := pipeline.Decompress(buf.Bytes(), o.opts...)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"input":  buf.Len(),
		"output": len(out),
	}).Info("decompressed")

	return o.sink.Write(out)
}
