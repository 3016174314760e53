// Package logging configures the process-wide logrus logger.
package logging

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Init sets the standard logger's formatter and level.  Production gets
// JSON lines; everything else gets human-readable text.  An unknown level
// falls back to info and is reported once.
func Init(env, level string) {
	logrus.SetOutput(os.Stdout)
	if env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.WithField("level", level).Warn("unknown LOG_LEVEL, using info")
		return
	}
	logrus.SetLevel(lvl)
}
