package pipeline

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/internal/hash"
	"github.com/arloliu/lzostream/section"
)

// Decompress restores the original bytes from a container, or from raw
// codec output when WithHeaderless is given.
//
// Headered input is checked in this order: header checksum, compressed
// payload hash, decoding, decompressed payload hash, decoded size. No output
// is returned unless every check passes.
//
// Headerless input needs the method (WithFormat, default format.Default)
// and the maximum decompressed size (WithBlockSize).
//
// Returns error if:
//   - input is empty (errs.ErrEmptyInput)
//   - the header is short or its checksum fails (errs.ErrInvalidHeader)
//   - the method is unknown or cannot decompress (errs.ErrNotSupported)
//   - a hash or the decoded size does not match the header (errs.KindOf(err) == errs.IllegalData)
//   - the codec rejects a headered payload (errs.ErrDecompressFailed)
//   - the codec rejects headerless data (errs.ErrCorruptData)
func Decompress(input []byte, opts ...Option) ([]byte, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}

	if len(input) == 0 {
		return nil, errs.ErrEmptyInput
	}

	if s.headerless {
		return decompressHeaderless(s, input)
	}

	h, err := section.ParseHeader(input, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidHeader, err)
	}

	logger := s.logger.WithFields(logrus.Fields{
		"format":      h.FormatID.String(),
		"source":      h.SourceSize,
		"destination": h.DestinationSize,
	})

	payload, err := h.Payload(input)
	if err != nil {
		return nil, err
	}

	if h.Stored() {
		if err := s.verify(h.SourceHash, payload, errs.ErrSourceHashMismatch); err != nil {
			return nil, err
		}
		logger.Debug("stored payload")

		return payload, nil
	}

	desc, err := s.lookup(h.FormatID, true)
	if err != nil {
		return nil, err
	}

	// untrusted bytes never reach the codec
	if err := s.verify(h.SourceHash, payload, errs.ErrSourceHashMismatch); err != nil {
		return nil, err
	}

	if err := s.checkSize(int64(h.DestinationSize), "destination"); err != nil {
		return nil, err
	}

	out := make([]byte, h.DestinationSize)
	n, err := invoke(logger, desc.Name, func() (int, error) {
		return desc.Decompressor.Decompress(out, payload)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecompressFailed, err)
	}
	out = out[:n]

	if err := s.verify(h.DestinationHash, out, errs.ErrDestinationHashMismatch); err != nil {
		return nil, err
	}

	if n != int(h.DestinationSize) {
		return nil, fmt.Errorf("%w: decoded %d bytes, header records %d", errs.ErrSizeMismatch, n, h.DestinationSize)
	}

	logger.Debug("decompressed")

	return out, nil
}

func decompressHeaderless(s *settings, input []byte) ([]byte, error) {
	desc, err := s.lookup(s.format, true)
	if err != nil {
		return nil, err
	}

	if s.blockSize == 0 {
		return nil, errs.ErrBlockSizeRequired
	}
	if err := s.checkSize(int64(s.blockSize), "block"); err != nil {
		return nil, err
	}

	logger := s.logger.WithFields(logrus.Fields{"format": desc.Name, "input": len(input), "block": s.blockSize})

	out := make([]byte, s.blockSize)
	n, err := invoke(logger, desc.Name, func() (int, error) {
		return desc.Decompressor.Decompress(out, input)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptData, err)
	}

	logger.WithField("output", n).Debug("decompressed without header")

	return out[:n], nil
}

// verify compares the Adler hash of data with a stored hash.
// A stored zero is skipped only with WithLenientHashes.
func (s *settings) verify(stored uint32, data []byte, mismatch error) error {
	if stored == 0 && s.lenient {
		return nil
	}

	if computed := hash.Adler(data); computed != stored {
		return fmt.Errorf("%w: stored 0x%08x, computed 0x%08x", mismatch, stored, computed)
	}

	return nil
}
