package config

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// InitLogger configures the shared JSON logger. Unknown levels fall back to
// info with a warning.
func InitLogger(level string) *logrus.Logger {
	Log = logrus.New()
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		Log.SetLevel(logrus.InfoLevel)
		if level != "" {
			Log.Warnf("Unknown log level %q, using info", level)
		}
		return Log
	}
	Log.SetLevel(lvl)
	return Log
}
