package tsh

// JobState is the closed set of states a Job can occupy. The zero value,
// JobUndefined, marks an empty job-table slot.
type JobState int

const (
	JobUndefined JobState = iota
	JobForeground
	JobBackground
	JobStopped
)

// String renders the state the way the jobs builtin displays it.
func (s JobState) String() string {
	switch s {
	case JobForeground:
		return "Foreground"
	case JobBackground:
		return "Running"
	case JobStopped:
		return "Stopped"
	default:
		return "Undefined"
	}
}

// Job is one launched pipeline tracked by the shell.
type Job struct {
	PGID    int      // process-group id, equal to stage 0's PID
	JID     int      // shell-local job id, monotonic from 1
	State   JobState
	Cmdline string // original, untokenized command line, display only
}
