package symspell

import "go.uber.org/zap"

// Logger receives diagnostic messages from the loader boundary (skipped
// dictionary lines, malformed bigram entries). The index itself never logs
// during Lookup/LookupCompound/WordSegmentation — those stay pure.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}

// NewNopLogger returns a Logger that discards every message. It is the
// default used by NewIndex when no logger is configured.
func NewNopLogger() Logger { return nopLogger{} }

type zapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger adapts a *zap.Logger to the Logger interface.
func NewZapLogger(l *zap.Logger) Logger {
	return &zapLogger{s: l.Sugar()}
}

func (z *zapLogger) Debugf(format string, args ...interface{}) { z.s.Debugf(format, args...) }
func (z *zapLogger) Warnf(format string, args ...interface{})  { z.s.Warnf(format, args...) }
