package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Field is a structured key/value pair attached to a log line.
type Field struct {
	Key string
	Val interface{}
}

func WithField(key string, val interface{}) Field {
	return Field{Key: key, Val: val}
}

type Logger interface {
	SetLogLevel(level string)

	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)

	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// TextLogger writes human-readable lines via logrus.
type TextLogger struct {
	logger *logrus.Logger
}

var _ Logger = (*TextLogger)(nil)

func NewTextLogger() Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &TextLogger{logger: l}
}

func (l *TextLogger) SetLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		l.logger.SetLevel(logrus.DebugLevel)
	case "info":
		l.logger.SetLevel(logrus.InfoLevel)
	case "warn":
		l.logger.SetLevel(logrus.WarnLevel)
	case "error":
		l.logger.SetLevel(logrus.ErrorLevel)
	default:
		l.logger.SetLevel(logrus.InfoLevel)
	}
}

func (l *TextLogger) Info(msg string, fields ...Field) {
	l.logger.WithFields(l.fmtFields(fields...)).Info(msg)
}

func (l *TextLogger) Warn(msg string, fields ...Field) {
	l.logger.WithFields(l.fmtFields(fields...)).Warn(msg)
}

func (l *TextLogger) Error(msg string, fields ...Field) {
	l.logger.WithFields(l.fmtFields(fields...)).Error(msg)
}

func (l *TextLogger) Debug(msg string, fields ...Field) {
	l.logger.WithFields(l.fmtFields(fields...)).Debug(msg)
}

func (l *TextLogger) Infof(format string, args ...interface{}) {
	l.logger.Infof(format, args...)
}

func (l *TextLogger) Warnf(format string, args ...interface{}) {
	l.logger.Warnf(format, args...)
}

func (l *TextLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf(format, args...)
}

func (l *TextLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

func (l *TextLogger) fmtFields(fields ...Field) logrus.Fields {
	fieldsMap := make(logrus.Fields, len(fields))
	for _, field := range fields {
		fieldsMap[field.Key] = field.Val
	}
	return fieldsMap
}
