// Package backendlog provides structured logging for the effective-
// configuration engine: path resolutions, completed writes, and watcher
// events, each tagged with the component that produced them. All of it goes
// through a single package-level logrus logger, matching the structured-field
// style already used throughout this module's watcher.
package backendlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLevel adjusts the minimum severity logged, accepting logrus level
// names ("debug", "info", "warn", "error"). Unrecognized names are rejected
// without changing the current level.
func SetLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	return nil
}

// For returns a logger scoped to a named component, matching the component
// boundaries documented in internal/effconfig (e.g. "settings", "mcp",
// "watcher", "project").
func For(component string) *logrus.Entry {
	return logger.WithField("component", component)
}

// PathResolved logs a path resolution for a given scope.
func PathResolved(component, scope, path string) {
	For(component).WithFields(logrus.Fields{
		"scope": scope,
		"path":  path,
	}).Debug("resolved path")
}

// BytesWritten logs a completed atomic write.
func BytesWritten(component, path string, n int) {
	For(component).WithFields(logrus.Fields{
		"path":  path,
		"bytes": n,
	}).Info("wrote file")
}

// WatchSubscribed logs a new file-change subscription, tagged with its
// correlation id so overlapping subscribe/unsubscribe cycles are traceable.
func WatchSubscribed(correlationID string) {
	For("watcher").WithField("correlationId", correlationID).Info("subscribed to file changes")
}

// WatchUnsubscribed logs the end of a file-change subscription.
func WatchUnsubscribed(correlationID string) {
	For("watcher").WithField("correlationId", correlationID).Info("unsubscribed from file changes")
}

// WatchEvent logs a file-change event after self-write suppression, right
// before it is delivered to subscribers.
func WatchEvent(path, kind, scope string) {
	For("watcher").WithFields(logrus.Fields{
		"path":  path,
		"kind":  kind,
		"scope": scope,
	}).Debug("file change event")
}
