package log

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/lzostream"
)

// NewLogger returns a logger writing text records to out at the given level.
// Stdout may carry payload data, so callers pass stderr.
//
// An unparsable level falls back to warning; debug forces the debug level.
func NewLogger(out io.Writer, level string, debug bool, command string) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(getLogLevel(level, debug))
	log.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	}

	return log.WithFields(logrus.Fields{
		"version": lzostream.Version,
		"command": command,
	})
}

func getLogLevel(strLevel string, debug bool) logrus.Level {
	if debug {
		return logrus.DebugLevel
	}

	level, err := logrus.ParseLevel(strLevel)
	if err != nil {
		return logrus.WarnLevel
	}

	return level
}
