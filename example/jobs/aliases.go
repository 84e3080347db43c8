//go:build transmutegen

package jobs

import transmute "github.com/coolCucumber-cat/transmute-guard"

// Active is a job that holds a worker.
var Active = transmute.EnumAlias[Status, int32](StatusRunning, StatusRetrying)

// Terminal is a job that will not change anymore.
var Terminal = transmute.EnumAlias[Status, int32](StatusDone, StatusFailed)
