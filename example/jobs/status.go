// Package jobs models the lifecycle of background jobs.
package jobs

import "fmt"

// Status is the state of a job as stored in the database.
type Status int32

const (
	StatusQueued Status = iota
	StatusRunning
	StatusRetrying
	StatusDone
	StatusFailed
)

var statusNames = [...]string{"queued", "running", "retrying", "done", "failed"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int32(s))
	}
	return statusNames[s]
}
