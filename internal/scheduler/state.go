// -----------------------------------------------------------------------
// CollectionState is the single struct behind a mutex the Service reads
// and writes, exposed read-only via Snapshot().
// -----------------------------------------------------------------------

package scheduler

import (
	"sync"
	"time"

	"github.com/ternarybob/hireradar/internal/models"
)

// Mode names the activity currently (or most recently) running.
type Mode string

const (
	ModeIdle        Mode = "idle"
	ModeDiscovery   Mode = "discovery"
	ModeRefresh     Mode = "refresh"
	ModeMaintenance Mode = "maintenance"
)

// CollectionState is the dashboard's one window into the running core.
type CollectionState struct {
	Running  bool
	Mode     Mode
	Progress float64
	LastRun  time.Time
	LastStats models.CollectionStats
	LastError string
}

type stateHolder struct {
	mu    sync.Mutex
	state CollectionState
}

func newStateHolder() *stateHolder {
	return &stateHolder{state: CollectionState{Mode: ModeIdle}}
}

func (h *stateHolder) begin(mode Mode) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state.Running = true
	h.state.Mode = mode
	h.state.Progress = 0
	h.state.LastError = ""
}

func (h *stateHolder) progress(p float64, stats models.CollectionStats) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state.Progress = p
	h.state.LastStats = stats
}

func (h *stateHolder) finish(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state.Running = false
	h.state.Progress = 1
	h.state.LastRun = time.Now()
	if err != nil {
		h.state.LastError = err.Error()
	}
}

// Snapshot returns a read-only copy of the current state, the accessor an
// external dashboard would call.
func (h *stateHolder) Snapshot() CollectionState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}
