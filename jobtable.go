package tsh

import (
	"errors"
	"fmt"

	"github.com/OutOfBedlam/tsh/internal/tlog"
)

// ErrJobTableFull is returned when every slot in the table is occupied.
var ErrJobTableFull = errors.New("job table full")

const defaultJobCapacity = 16

// jobTable is a fixed-capacity slot array, mirroring the MAX_JOBS array the
// shell's job control loop scans on every add, lookup and reap. Callers
// serialize access through Shell.mu; the table itself holds no lock.
type jobTable struct {
	jobs    []Job
	nextJID int
}

func newJobTable(capacity int) *jobTable {
	if capacity <= 0 {
		capacity = defaultJobCapacity
	}
	return &jobTable{
		jobs:    make([]Job, capacity),
		nextJID: 1,
	}
}

func (t *jobTable) add(pgid int, state JobState, cmdline string) (int, error) {
	for i := range t.jobs {
		if t.jobs[i].State == JobUndefined {
			jid := t.nextJID
			t.nextJID++
			t.jobs[i] = Job{PGID: pgid, JID: jid, State: state, Cmdline: cmdline}
			return jid, nil
		}
	}
	return 0, ErrJobTableFull
}

func (t *jobTable) delete(pgid int) bool {
	for i := range t.jobs {
		if t.jobs[i].State != JobUndefined && t.jobs[i].PGID == pgid {
			t.jobs[i] = Job{}
			return true
		}
	}
	return false
}

func (t *jobTable) byPGID(pgid int) (*Job, bool) {
	for i := range t.jobs {
		if t.jobs[i].State != JobUndefined && t.jobs[i].PGID == pgid {
			return &t.jobs[i], true
		}
	}
	return nil, false
}

func (t *jobTable) byJID(jid int) (*Job, bool) {
	for i := range t.jobs {
		if t.jobs[i].State != JobUndefined && t.jobs[i].JID == jid {
			return &t.jobs[i], true
		}
	}
	return nil, false
}

// pgidToJID returns the jid of the job owning pgid, or 0 if none.
func (t *jobTable) pgidToJID(pgid int) int {
	if j, ok := t.byPGID(pgid); ok {
		return j.JID
	}
	return 0
}

// list renders one line per occupied slot, in slot order, the same order
// the table is scanned for add/lookup.
func (t *jobTable) list() []string {
	var lines []string
	for i := range t.jobs {
		j := &t.jobs[i]
		if j.State == JobUndefined {
			continue
		}
		lines = append(lines, fmt.Sprintf("[%d] (%d) %s %s", j.JID, j.PGID, tlog.StateWord(j.State.String()), j.Cmdline))
	}
	return lines
}
