package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger creates a logrus backed Logger writing to the specified output
func NewLogrusLogger(out io.Writer, verbose bool) Logger {
	l := logrus.New()
	l.SetOutput(out)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
