package pipeline

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
	"github.com/sirupsen/logrus"

	"github.com/arloliu/lzostream/errs"
)

// invoke runs a codec call and converts a panic into ErrCodecPanic.
// This is the only place where codec failures are isolated.
func invoke(logger *logrus.Entry, name string, call func() (int, error)) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := goerrors.Wrap(r, 2)
			logger.WithField("format", name).Debugf("codec panic: %s", stack.ErrorStack())
			n, err = 0, fmt.Errorf("%w: %s: %v", errs.ErrCodecPanic, name, r)
		}
	}()

	return call()
}
