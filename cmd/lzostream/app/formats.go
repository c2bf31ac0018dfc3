package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/arloliu/lzostream/registry"
)

// NewFormatsCommand creates the formats command.
func NewFormatsCommand(root *rootOptions) *cobra.Command {
	var supportedOnly bool

	cmd := &cobra.Command{
		Use:   "formats",
		Args:  cobra.NoArgs,
		Short: "List the registered methods",
		RunE: func(cmd *cobra.Command, args []string) error {
			descs := registry.Builtin().Descriptors()
			if supportedOnly {
				descs = registry.Builtin().Supported()
			}

			return writeFormats(root.streams.Out, descs)
		},
	}

	cmd.Flags().BoolVarP(&supportedOnly, "supported", "s", false, "only methods with a codec")

	return cmd
}

func writeFormats(w io.Writer, descs []*registry.Descriptor) error {
	if _, err := fmt.Fprintf(w, "%-14s %-10s %-7s %-10s %10s %10s\n",
		"NAME", "ID", "FAMILY", "SUPPORT", "MEM(C)", "MEM(D)"); err != nil {
		return err
	}

	for _, d := range descs {
		if _, err := fmt.Fprintf(w, "%-14s 0x%08x %-7s %-10s %10d %10d\n",
			d.Name, uint32(d.ID), d.Family, support(d), d.MemCompress, d.MemDecompress); err != nil {
			return err
		}
	}

	return nil
}

func support(d *registry.Descriptor) string {
	switch {
	case d.Supported():
		return "yes"
	case d.CanDecompress():
		return "decompress"
	case d.CanCompress():
		return "compress"
	default:
		return "no"
	}
}

// methodsHelp lists the supported methods grouped by family.
func methodsHelp() string {
	supported := registry.Builtin().Supported()
	byFamily := lo.GroupBy(supported, func(d *registry.Descriptor) string {
		return d.Family
	})

	var sb strings.Builder
	sb.WriteString("Methods:\n")
	for _, family := range registry.Builtin().Families() {
		descs, ok := byFamily[family]
		if !ok {
			continue
		}

		names := lo.Map(descs, func(d *registry.Descriptor, _ int) string {
			return d.Name
		})
		fmt.Fprintf(&sb, "  %s\n", strings.Join(names, ", "))
	}

	return sb.String()
}
