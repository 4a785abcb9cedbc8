package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	return SetupLoggingWithLevel(logrus.InfoLevel)
}

// SetupLoggingWithLevel is SetupLogging at a configurable level.
func SetupLoggingWithLevel(level logrus.Level) *logrus.Logger {
	return newLogger(os.Stdout, level)
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   out,
		Hooks: make(logrus.LevelHooks),
		Level: level,
	}

	return &logger
}

// ParseLevel maps a config value to a level, defaulting to info.
func ParseLevel(value string) logrus.Level {
	level, err := logrus.ParseLevel(value)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
