//go:build linux || darwin

package tsh

import (
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/OutOfBedlam/tsh/internal/tlog"
)

// foregroundPollInterval is the fallback tick for waitForeground when no
// SIGCHLD wakeup arrives promptly. It bounds worst-case latency between a
// reaped foreground job and the prompt reappearing, without requiring the
// signal and the condition check to race exactly.
const foregroundPollInterval = 25 * time.Millisecond

// waitForeground hands the terminal to pgid and blocks until that job
// leaves the foreground, either by exiting, being signaled to death, or
// being stopped (Ctrl-Z). It then reclaims the terminal for the shell
// and restores the line discipline a foreground job may have changed.
func (s *Shell) waitForeground(pgid int) {
	if err := unix.IoctlSetPointerInt(s.ttyFd, unix.TIOCSPGRP, pgid); err != nil {
		s.log.Warn("tcsetpgrp to child failed", "pgid", pgid, "error", err)
	}

	for {
		s.mu.Lock()
		job, ok := s.table.byPGID(pgid)
		active := ok && job.State == JobForeground
		s.mu.Unlock()
		if !active {
			break
		}

		select {
		case <-s.fgWake:
		case <-time.After(foregroundPollInterval):
		}
	}

	if err := unix.IoctlSetPointerInt(s.ttyFd, unix.TIOCSPGRP, s.pgid); err != nil {
		s.log.Warn("tcsetpgrp back to shell failed", "error", err)
	}
	if s.termState != nil {
		if err := term.Restore(s.ttyFd, s.termState); err != nil {
			s.log.Warn("restore terminal state failed", "error", err)
		}
	}
	tlog.Println(s.stdout)
}
