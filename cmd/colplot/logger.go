package main

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// newLogger returns a text logger writing to out at the named level.
// Unknown level names fall back to info.
func newLogger(out io.Writer, level string) *logrus.Logger {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		TimestampFormat:  "2006-01-02 15:04:05",
		DisableTimestamp: false,
	}
	log.Out = out

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.Level = lvl
	return log
}
