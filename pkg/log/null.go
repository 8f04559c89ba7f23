package log

// nullLogger is a logger that discards everything.
type nullLogger struct{}

func (n nullLogger) Infof(format string, args ...interface{}) {
}

func (n nullLogger) Errorf(format string, args ...interface{}) {
}

func (n nullLogger) Debugf(format string, args ...interface{}) {
}

func (n nullLogger) Fatal(str string) {
}

// NewNullLogger returns a logger that discards everything.
func NewNullLogger() Logger {
	return nullLogger{}
}
