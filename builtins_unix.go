//go:build linux || darwin

package tsh

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"

	"github.com/OutOfBedlam/tsh/internal/tlog"
)

// cmdJobs prints one line per tracked job, in job-table slot order.
func (s *Shell) cmdJobs() {
	s.mu.Lock()
	lines := s.table.list()
	s.mu.Unlock()

	for _, l := range lines {
		tlog.Println(s.stdout, l)
	}
}

// resolveJobSpec looks a job up by either %jobid or raw pgid, matching
// the original's silent atoi-returns-zero behavior on a malformed number:
// a non-numeric spec resolves to id 0, which then simply fails to match
// any job, rather than surfacing a distinct parse error.
func (s *Shell) resolveJobSpec(spec string) (*Job, error) {
	if strings.HasPrefix(spec, "%") {
		jid, _ := strconv.Atoi(spec[1:])
		job, ok := s.table.byJID(jid)
		if !ok {
			return nil, fmt.Errorf("%%%d: No such job", jid)
		}
		return job, nil
	}

	pid, _ := strconv.Atoi(spec)
	job, ok := s.table.byPGID(pid)
	if !ok {
		return nil, fmt.Errorf("(%d): No such process", pid)
	}
	return job, nil
}

// cmdBgFg implements both bg and fg: resume the job's process group with
// SIGCONT, then either mark it running in the background or hand it the
// terminal and block until it leaves the foreground.
func (s *Shell) cmdBgFg(name string, args []string) {
	if len(args) < 1 {
		tlog.Println(s.stdout, "requires PID or %jobid")
		return
	}

	s.mu.Lock()
	job, err := s.resolveJobSpec(args[0])
	if err != nil {
		s.mu.Unlock()
		tlog.Println(s.stdout, err)
		return
	}
	pgid, jid, cmdline := job.PGID, job.JID, job.Cmdline

	if err := syscall.Kill(-pgid, syscall.SIGCONT); err != nil {
		s.mu.Unlock()
		fmt.Fprintf(s.stderr, "%s: %v\n", name, err)
		return
	}

	if name == "bg" {
		job.State = JobBackground
		s.mu.Unlock()
		tlog.Printf(s.stdout, "[%d] (%d) %s\n", jid, pgid, cmdline)
		return
	}

	job.State = JobForeground
	s.mu.Unlock()
	s.waitForeground(pgid)
}
