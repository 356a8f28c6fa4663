package model

// RunStatus represents the state of a download run
type RunStatus string

const (
	// RunStatusIdle means no download has been started yet
	RunStatusIdle RunStatus = "Idle"

	// RunStatusRunning means the external tool is running
	RunStatusRunning RunStatus = "Running"

	// RunStatusComplete means the external tool exited
	RunStatusComplete RunStatus = "Complete"

	// RunStatusFailed means the external tool could not be started or run
	RunStatusFailed RunStatus = "Failed"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true while a run is in flight
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusRunning
}

// IsFinished returns true if the run reached a terminal state
func (rs RunStatus) IsFinished() bool {
	return rs == RunStatusComplete || rs == RunStatusFailed
}
