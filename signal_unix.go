//go:build linux || darwin

package tsh

import (
	"os"
	"syscall"

	"github.com/OutOfBedlam/tsh/internal/tlog"
)

// reapLoop runs for the lifetime of the shell, draining one SIGCHLD
// notification at a time. Because signal delivery only guarantees "at
// least one child changed state", each wakeup drains every reapable
// child with WNOHANG rather than assuming a 1:1 correspondence between
// signals and events.
func (s *Shell) reapLoop(ch chan os.Signal) {
	for range ch {
		s.reapAvailable()
	}
}

func (s *Shell) reapAvailable() {
	for {
		var status syscall.WaitStatus
		pid, err := syscall.Wait4(-1, &status, syscall.WNOHANG|syscall.WUNTRACED, nil)
		if pid <= 0 || err != nil {
			return
		}
		s.reapOne(pid, status)
	}
}

// reapOne updates the job table for a single reaped pid. Only events on
// a job's lead pid (its pgid) prune or change the table; terminations of
// the pipeline's other stages are silently absorbed, matching the
// original job table's lead-pid-only bookkeeping.
func (s *Shell) reapOne(pid int, status syscall.WaitStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.table.byPGID(pid)
	if !ok {
		return
	}

	switch {
	case status.Exited(), status.Signaled():
		s.table.delete(pid)
		s.wakeForeground(pid)
	case status.Stopped():
		job.State = JobStopped
		tlog.Printf(s.stdout, "Job [%d] (%d) stopped by signal %d\n", job.JID, job.PGID, status.StopSignal())
		s.wakeForeground(pid)
	}
}

// wakeForeground nudges a blocked waitForeground loop. The channel is
// buffered by one and never blocks: a dropped wakeup just means the
// poll timeout in waitForeground notices the state change instead.
func (s *Shell) wakeForeground(pgid int) {
	select {
	case s.fgWake <- pgid:
	default:
	}
}
