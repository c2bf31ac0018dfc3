package app

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/lzostream/internal/pool"
	"github.com/arloliu/lzostream/pipeline"
)

type infoOptions struct {
	streamOptions
}

// NewInfoCommand creates the info command.
func NewInfoCommand(root *rootOptions) *cobra.Command {
	opts := &infoOptions{}
	cmd := &cobra.Command{
		Use:     "info",
		Aliases: []string{"i"},
		Args:    cobra.NoArgs,
		Short:   "Print the container header fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.streamOptions.complete(cmd, root); err != nil {
				return err
			}

			return opts.run()
		},
	}

	opts.paths.AddFlags(cmd.Flags())

	return cmd
}

// run writes the report even when the header is not available; the
// returned error then carries the exit status.
func (o *infoOptions) run() error {
	buf, err := o.source.Read()
	if err != nil {
		return err
	}
	defer pool.PutReadBuffer(buf)

	report, err := pipeline.Inspect(buf.Bytes(), pipeline.WithLogger(o.logger))
	if report.InputSize == 0 {
		return err
	}

	text := report.String()
	if !report.Available {
		text += "\n"
	}

	if werr := o.sink.Write([]byte(text)); werr != nil {
		return werr
	}

	return err
}
