package logger

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// New returns new logger writing diagnostics to stderr.
//
// Standard output is reserved for the sync report so nothing here may write to it.
func New(lvl logrus.Level) *logrus.Logger {
	return NewWithOutput(lvl, os.Stderr)
}

// NewWithOutput returns new logger of <lvl> severity writing to <out>.
//
// Colors follow the same switch as the sync report labels, so NO_COLOR disables both.
func NewWithOutput(lvl logrus.Level, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.Stamp,
		ForceFormatting: true,
		DisableColors:   color.NoColor,
	})
	return log
}
