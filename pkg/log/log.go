// Package log provides the small logging interface used throughout the
// module, along with a stdout implementation and a no-op implementation
// for tests.
package log

import (
	"fmt"
	"os"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)
}

type logger struct {
	debug bool
}

// New returns a Logger that writes to stdout.
func New() Logger {
	return &logger{}
}

// NewDebug returns a Logger that writes to stdout, including
// debug messages.
func NewDebug() Logger {
	return &logger{debug: true}
}

func (l *logger) Infof(format string, args ...interface{}) {
	fmt.Printf("[INFO]\t"+format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	fmt.Printf("[ERROR]\t"+format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	if l.debug {
		fmt.Printf("[DEBUG]\t"+format+"\n", args...)
	}
}

func (l *logger) Fatal(str string) {
	fmt.Printf("[FATAL]\t%s\n", str)
	os.Exit(1)
}
