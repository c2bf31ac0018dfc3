package pipeline

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/lzostream/errs"
	"github.com/arloliu/lzostream/format"
	"github.com/arloliu/lzostream/registry"
)

// DefaultMaxSize is the largest buffer a pipeline allocates unless
// WithMaxSize says otherwise. It is the largest size a header can record.
const DefaultMaxSize = math.MaxUint32

// Option configures a pipeline call.
type Option interface {
	apply(*settings) error
}

type optionFunc func(*settings) error

func (f optionFunc) apply(s *settings) error {
	return f(s)
}

// noError creates an option from a function that cannot fail.
func noError(fn func(*settings)) Option {
	return optionFunc(func(s *settings) error {
		fn(s)
		return nil
	})
}

type settings struct {
	format     format.ID
	formatSet  bool
	headerless bool
	limitless  bool
	lenient    bool
	blockSize  int
	maxSize    int64
	registry   *registry.Registry
	logger     *logrus.Entry
}

func newSettings(opts []Option) (*settings, error) {
	s := &settings{
		format:  format.Default,
		maxSize: DefaultMaxSize,
	}

	for _, opt := range opts {
		if err := opt.apply(s); err != nil {
			return nil, err
		}
	}

	if s.registry == nil {
		s.registry = registry.Builtin()
	}
	if s.logger == nil {
		s.logger = discardLogger
	}

	return s, nil
}

var discardLogger = func() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return logrus.NewEntry(l)
}()

// WithFormat selects the compression method.
//
// Compression treats format.None as "use the default method". Headerless
// decompression has no header to read the method from, so it uses id as is.
func WithFormat(id format.ID) Option {
	return noError(func(s *settings) {
		s.format = id
		s.formatSet = true
	})
}

// WithHeaderless omits the container header on compression and expects raw
// codec output on decompression.
func WithHeaderless() Option {
	return noError(func(s *settings) {
		s.headerless = true
	})
}

// WithLimitless accepts compressed output that is not smaller than the input
// instead of falling back to storing the input.
func WithLimitless() Option {
	return noError(func(s *settings) {
		s.limitless = true
	})
}

// WithBlockSize sets the decompressed size limit for headerless decompression.
func WithBlockSize(n int) Option {
	return optionFunc(func(s *settings) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidBlockSize, n)
		}
		s.blockSize = n

		return nil
	})
}

// WithLenientHashes treats stored zero hashes as "unchecked".
//
// Headers written by this module always carry computed hashes and a zero is
// compared like any other value. Containers from writers that leave hashes
// out need this option to decompress.
func WithLenientHashes() Option {
	return noError(func(s *settings) {
		s.lenient = true
	})
}

// WithMaxSize limits the size of any buffer the pipeline allocates.
func WithMaxSize(n int64) Option {
	return optionFunc(func(s *settings) error {
		if n <= 0 {
			return fmt.Errorf("%w: max size %d", errs.ErrInvalidBlockSize, n)
		}
		s.maxSize = min(n, DefaultMaxSize)

		return nil
	})
}

// WithRegistry uses r instead of the built-in registry.
func WithRegistry(r *registry.Registry) Option {
	return noError(func(s *settings) {
		s.registry = r
	})
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *logrus.Entry) Option {
	return noError(func(s *settings) {
		s.logger = logger
	})
}

// checkSize reports ErrTooLarge when n exceeds the allocation limit.
func (s *settings) checkSize(n int64, what string) error {
	if n > s.maxSize {
		return fmt.Errorf("%w: %s of %d bytes exceeds %d", errs.ErrTooLarge, what, n, s.maxSize)
	}

	return nil
}

// lookup resolves id to a descriptor that supports the operation.
func (s *settings) lookup(id format.ID, decompress bool) (*registry.Descriptor, error) {
	desc, ok := s.registry.Describe(id)
	switch {
	case !ok:
		return nil, fmt.Errorf("%w: unknown format 0x%08x", errs.ErrNotSupported, uint32(id))
	case decompress && !desc.CanDecompress():
		return nil, fmt.Errorf("%w: %s cannot decompress", errs.ErrNotSupported, desc.Name)
	case !decompress && !desc.CanCompress():
		return nil, fmt.Errorf("%w: %s cannot compress", errs.ErrNotSupported, desc.Name)
	}

	return desc, nil
}
