package pipeline

import (
	"fmt"
	"strings"

	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/internal/hash"
	"github.com/arloliu/lzostream/section"
)

// Field is one header slot of an inspection report.
type Field struct {
	Offset int
	Name   string
	Value  uint32
	// Decimal adds the decimal value after the hex value.
	Decimal bool
	// Note is printed after the value, for example the method name.
	Note string
	// OK marks a field whose check passed; false for fields without a check.
	OK bool
}

// Report describes a header without decompressing the payload.
type Report struct {
	Header section.Header
	// InputSize is the length of the inspected input, header included.
	InputSize int
	// Available is false when the input is too short to hold a header.
	Available bool

	MagicValid       bool
	FormatKnown      bool
	FormatName       string
	PayloadAvailable bool
	SourceHashValid  bool
	HeaderValid      bool
}

// Inspect reports every header field and its validity.
//
// The header checksum is not required to match. Input too short to hold a
// header yields a report whose String is "Header (not available)" together
// with errs.ErrInvalidHeaderSize.
func Inspect(input []byte, opts ...Option) (Report, error) {
	s, err := newSettings(opts)
	if err != nil {
		return Report{}, err
	}

	if len(input) == 0 {
		return Report{}, errs.ErrEmptyInput
	}

	r := Report{InputSize: len(input)}

	h, err := section.ParseHeader(input, false)
	if err != nil {
		return r, err
	}

	r.Available = true
	r.Header = h
	r.MagicValid = h.MagicValid()
	r.HeaderValid = h.Valid()
	r.FormatName = "Unknown"
	if desc, ok := s.registry.Describe(h.FormatID); ok {
		r.FormatKnown = true
		r.FormatName = desc.Name
	}

	if payload, err := h.Payload(input); err == nil {
		r.PayloadAvailable = true
		r.SourceHashValid = hash.Adler(payload) == h.SourceHash
	}

	return r, nil
}

// Valid reports whether every check of the report passed.
func (r Report) Valid() bool {
	return r.Available && r.MagicValid && r.FormatKnown && r.PayloadAvailable && r.SourceHashValid && r.HeaderValid
}

// Fields returns the header slots in wire order.
func (r Report) Fields() []Field {
	h := r.Header

	return []Field{
		{Offset: section.HeaderIDOffset, Name: "HeaderId", Value: h.HeaderID, OK: r.MagicValid},
		{Offset: section.FormatIDOffset, Name: "FormatId", Value: uint32(h.FormatID), Note: r.FormatName},
		{Offset: section.SourceSizeOffset, Name: "SourceSize", Value: h.SourceSize, Decimal: true, OK: r.PayloadAvailable},
		{Offset: section.DestinationSizeOffset, Name: "DestinationSize", Value: h.DestinationSize, Decimal: true},
		{Offset: section.SourceHashOffset, Name: "SourceHash", Value: h.SourceHash, OK: r.SourceHashValid},
		{Offset: section.DestinationHashOffset, Name: "DestinationHash", Value: h.DestinationHash},
		{Offset: section.HeaderHashOffset, Name: "HeaderHash", Value: h.HeaderHash, OK: r.HeaderValid},
	}
}

// String renders the report, one line per field, followed by the input size.
//
//	[0x00] HeaderId        : 0x1c4f5a4c (ok)
//	[0x04] FormatId        : 0xf7a9daf2 Lzo1x_999
//	...
//	[0x1c] ...               0x00000040 64
func (r Report) String() string {
	if !r.Available {
		return "Header (not available)"
	}

	var sb strings.Builder
	for _, f := range r.Fields() {
		fmt.Fprintf(&sb, "[0x%02x] %-16s: 0x%08x", f.Offset, f.Name, f.Value)
		if f.Decimal {
			fmt.Fprintf(&sb, " %d", f.Value)
		}
		if f.Note != "" {
			sb.WriteString(" " + f.Note)
		}
		if f.OK {
			sb.WriteString(" (ok)")
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "[0x%02x] %-17s 0x%08x %d\n", section.PayloadOffset, "...", uint32(r.InputSize), r.InputSize)

	return sb.String()
}
