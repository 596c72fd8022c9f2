// Package log is a thin wrapper around logrus, so that packages of this
// module share a single logging setup.
package log

import "github.com/sirupsen/logrus"

type (
	Fields        = logrus.Fields
	Level         = logrus.Level
	Entry         = logrus.Entry
	Formatter     = logrus.Formatter
	TextFormatter = logrus.TextFormatter
)

const (
	DebugLevel = logrus.DebugLevel
	InfoLevel  = logrus.InfoLevel
	WarnLevel  = logrus.WarnLevel
	ErrorLevel = logrus.ErrorLevel
	FatalLevel = logrus.FatalLevel
)

func SetFormatter(formatter Formatter) {
	logrus.SetFormatter(formatter)
}

func SetLevel(level Level) {
	logrus.SetLevel(level)
}

func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

func Debug(args ...interface{}) {
	logrus.Debug(args...)
}

func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}

func Info(args ...interface{}) {
	logrus.Info(args...)
}

func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}

func Warn(args ...interface{}) {
	logrus.Warn(args...)
}

func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}

func Error(args ...interface{}) {
	logrus.Error(args...)
}

func Errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}

func Fatal(args ...interface{}) {
	logrus.Fatal(args...)
}
