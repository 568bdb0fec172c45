package driver

import (
	"time"

	"sgstyle/internal/checker"
)

// FileStatus reports whether a file's check started or finished.
type FileStatus int

const (
	// FileStart fires when a worker picks the file up.
	FileStart FileStatus = iota
	// FileDone fires when the file's result is final.
	FileDone
)

// FileEvent describes one file crossing a status boundary. Index is the
// file's position in the sorted collection order, not completion order.
type FileEvent struct {
	Path   string
	Index  int
	Total  int
	Status FileStatus
	// Outcome, FromCache and Elapsed are meaningful for FileDone only.
	Outcome   checker.Outcome
	FromCache bool
	Elapsed   time.Duration
}

// FileObserver receives file events from the worker pool. Events for
// different files arrive concurrently and in no particular order.
type FileObserver func(FileEvent)
