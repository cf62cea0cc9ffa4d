package ui

import "time"

type logLevel int

const (
	logInfo logLevel = iota
	logSuccess
	logWarning
	logError
)

type logEntry struct {
	at      time.Time
	level   logLevel
	message string
}

// logRing keeps the most recent messages for the bottom pane.
type logRing struct {
	entries []logEntry
	max     int
}

func newLogRing(max int) logRing {
	return logRing{max: max}
}

func (r *logRing) push(level logLevel, msg string) {
	r.entries = append(r.entries, logEntry{at: time.Now(), level: level, message: msg})
	if len(r.entries) > r.max {
		r.entries = r.entries[len(r.entries)-r.max:]
	}
}

func (r *logRing) info(msg string)    { r.push(logInfo, msg) }
func (r *logRing) success(msg string) { r.push(logSuccess, msg) }
func (r *logRing) warning(msg string) { r.push(logWarning, msg) }
func (r *logRing) error(msg string)   { r.push(logError, msg) }

// tail returns the newest n entries, oldest first.
func (r *logRing) tail(n int) []logEntry {
	if n <= 0 || len(r.entries) == 0 {
		return nil
	}
	if n > len(r.entries) {
		n = len(r.entries)
	}
	return r.entries[len(r.entries)-n:]
}
