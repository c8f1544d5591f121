package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogLevel is LOG_LEVEL when set, otherwise debug in development and info
// everywhere else.
func LogLevel() (logrus.Level, error) {
	levelStr, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		if Development() {
			return logrus.DebugLevel, nil
		}
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return level, nil
}

// LogFile is the path of the rotated log file, empty when file logging is
// off.
func LogFile() string {
	return os.Getenv("LOG_FILE")
}
