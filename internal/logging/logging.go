// SPDX-License-Identifier: EPL-2.0

// Package logging builds the logrus loggers handed to the synthesizers.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Discard returns a logger that drops everything. It is the default for
// every component that is not given one.
func Discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// New returns a text logger writing to w at the named level
// ("debug", "info", "warn", ...).
func New(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return l, nil
}

// OrDiscard returns l, or Discard() when l is nil.
func OrDiscard(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return Discard()
	}
	return l
}
