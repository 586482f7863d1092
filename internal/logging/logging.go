package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger.
// format is "json" or "text"; unknown levels fall back to info.
func Setup(level, format string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	logrus.SetOutput(out)

	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	if strings.EqualFold(format, "text") {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
}

// WithComponent returns an entry tagged with the component name
func WithComponent(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}
