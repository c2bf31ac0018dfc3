package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/internal/pool"
)

// ioOptions selects the byte source and the byte sink of a command.
type ioOptions struct {
	input  string
	output string
}

func (o *ioOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.input, "input", "i", "", "input file (default stdin)")
	fs.StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
}

// source reads the whole input of a command.
type source struct {
	path       string
	stdin      io.Reader
	isTerminal func() bool
	limit      int64
	logger     *logrus.Entry
}

// Read returns the input in a pooled buffer. The caller releases it with
// pool.PutReadBuffer once the output is written.
func (s source) Read() (*pool.ByteBuffer, error) {
	r := s.stdin
	name := "input"

	if s.path == "" {
		if r == nil {
			return nil, fmt.Errorf("error reading input: %w", errs.ErrNoDevice)
		}
		if s.isTerminal != nil && s.isTerminal() {
			s.logger.Warn("reading input from terminal")
		}
	} else {
		f, err := os.Open(s.path)
		if err != nil {
			return nil, errs.Wrap(errs.NoSuchFile, fmt.Errorf("error opening %s: %w", s.path, err))
		}
		defer f.Close()

		r = f
		name = s.path
	}

	buf := pool.GetReadBuffer()
	buf.Limit = s.limit

	if _, err := buf.ReadFrom(r); err != nil {
		pool.PutReadBuffer(buf)

		if errors.Is(err, pool.ErrLimitExceeded) {
			return nil, fmt.Errorf("error reading %s: %w", name, errs.ErrTooLarge)
		}

		return nil, errs.Wrap(errs.BadAddress, fmt.Errorf("error reading %s: %w", name, err))
	}

	s.logger.WithField("size", buf.Len()).Debugf("read %s", name)

	return buf, nil
}

// sink writes the output of a command.
type sink struct {
	path   string
	stdout io.Writer
}

func (s sink) Write(data []byte) error {
	if s.path == "" {
		if s.stdout == nil {
			return fmt.Errorf("error writing output: %w", errs.ErrNoDevice)
		}
		if _, err := s.stdout.Write(data); err != nil {
			return fmt.Errorf("error writing output: %w: %w", errs.ErrWriteFailed, err)
		}

		return nil
	}

	f, err := os.Create(s.path)
	if err != nil {
		return errs.Wrap(errs.NoSuchFile, fmt.Errorf("error creating %s: %w", s.path, err))
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("error writing %s: %w: %w", s.path, errs.ErrWriteFailed, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("error writing %s: %w: %w", s.path, errs.ErrWriteFailed, err)
	}

	return nil
}
