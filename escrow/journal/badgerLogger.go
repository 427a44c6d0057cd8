package journal

import (
	"fmt"
	"strings"
)

// badgerLogger routes the database logs through the application logger
type badgerLogger struct{}

// Errorf -
func (bl *badgerLogger) Errorf(format string, args ...interface{}) {
	log.Error("badger", "message", formatMessage(format, args...))
}

// Warningf -
func (bl *badgerLogger) Warningf(format string, args ...interface{}) {
	log.Warn("badger", "message", formatMessage(format, args...))
}

// Infof -
func (bl *badgerLogger) Infof(format string, args ...interface{}) {
	log.Debug("badger", "message", formatMessage(format, args...))
}

// Debugf -
func (bl *badgerLogger) Debugf(format string, args ...interface{}) {
	log.Trace("badger", "message", formatMessage(format, args...))
}

func formatMessage(format string, args ...interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
