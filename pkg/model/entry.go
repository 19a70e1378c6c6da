package model

import (
	"fmt"
	"time"
)

// TimestampLayout is the layout used for every timestamp written to a log file.
const TimestampLayout = "2006-01-02 15:04:05"

type Level string

const (
	LevelInfo     Level = "INFO"
	LevelWarning  Level = "WARNING"
	LevelError    Level = "ERROR"
	LevelDebug    Level = "DEBUG"
	LevelCritical Level = "CRITICAL"
	LevelDev      Level = "DEV"
)

// Levels lists the levels accepted on the command line, in severity display order.
var Levels = []Level{LevelInfo, LevelWarning, LevelError, LevelDebug, LevelCritical, LevelDev}

// Known reports whether l is one of the predefined levels.
func (l Level) Known() bool {
	for _, k := range Levels {
		if l == k {
			return true
		}
	}
	return false
}

type LogEntry struct {
	Time    time.Time
	Level   Level
	Message string
}

func (e LogEntry) Timestamp() string {
	return e.Time.Format(TimestampLayout)
}

// Line renders the entry as it is stored on disk, without the trailing newline.
func (e LogEntry) Line() string {
	return fmt.Sprintf("[%s] [%s]: %s", e.Timestamp(), e.Level, e.Message)
}
