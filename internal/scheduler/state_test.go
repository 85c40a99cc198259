package scheduler

import (
	"errors"
	"testing"

	"github.com/ternarybob/hireradar/internal/models"
)

func TestStateHolderInitialSnapshotIsIdle(t *testing.T) {
	h := newStateHolder()
	snap := h.Snapshot()

	if snap.Running {
		t.Error("expected Running false initially")
	}
	if snap.Mode != ModeIdle {
		t.Errorf("expected ModeIdle initially, got %v", snap.Mode)
	}
}

func TestStateHolderBeginSetsRunningAndResetsProgress(t *testing.T) {
	h := newStateHolder()
	h.progress(0.5, models.CollectionStats{})
	h.begin(ModeDiscovery)

	snap := h.Snapshot()
	if !snap.Running {
		t.Error("expected Running true after begin")
	}
	if snap.Mode != ModeDiscovery {
		t.Errorf("expected ModeDiscovery, got %v", snap.Mode)
	}
	if snap.Progress != 0 {
		t.Errorf("expected Progress reset to 0, got %v", snap.Progress)
	}
	if snap.LastError != "" {
		t.Errorf("expected LastError cleared, got %q", snap.LastError)
	}
}

func TestStateHolderProgressUpdatesStats(t *testing.T) {
	h := newStateHolder()
	h.begin(ModeRefresh)

	stats := models.CollectionStats{Tested: 3, Hits: 1}
	h.progress(0.5, stats)

	snap := h.Snapshot()
	if snap.Progress != 0.5 {
		t.Errorf("expected Progress 0.5, got %v", snap.Progress)
	}
	if snap.LastStats != stats {
		t.Errorf("expected LastStats %+v, got %+v", stats, snap.LastStats)
	}
}

func TestStateHolderFinishSuccessClearsRunning(t *testing.T) {
	h := newStateHolder()
	h.begin(ModeMaintenance)
	h.finish(nil)

	snap := h.Snapshot()
	if snap.Running {
		t.Error("expected Running false after finish")
	}
	if snap.Progress != 1 {
		t.Errorf("expected Progress 1 after finish, got %v", snap.Progress)
	}
	if snap.LastError != "" {
		t.Errorf("expected no LastError on success, got %q", snap.LastError)
	}
	if snap.LastRun.IsZero() {
		t.Error("expected LastRun to be set after finish")
	}
}

func TestStateHolderFinishErrorRecordsMessage(t *testing.T) {
	h := newStateHolder()
	h.begin(ModeDiscovery)
	h.finish(errors.New("boom"))

	snap := h.Snapshot()
	if snap.LastError != "boom" {
		t.Errorf("expected LastError %q, got %q", "boom", snap.LastError)
	}
}
