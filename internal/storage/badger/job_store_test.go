package badger

import (
	"context"
	"testing"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/hireradar/internal/models"
)

func TestJobStorageUpsertAndGet(t *testing.T) {
	db := newTestDB(t)
	storage := NewJobStorage(db, arbor.NewLogger())
	ctx := context.Background()

	job := &models.Job{JobHash: "hash-1", CompanyID: "company-1", Status: models.JobStatusOpen}
	if err := storage.Upsert(ctx, job); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	got, err := storage.Get(ctx, "hash-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.CompanyID != "company-1" {
		t.Errorf("expected CompanyID company-1, got %q", got.CompanyID)
	}
}

func TestJobStorageUpsertRejectsEmptyHash(t *testing.T) {
	db := newTestDB(t)
	storage := NewJobStorage(db, arbor.NewLogger())
	err := storage.Upsert(context.Background(), &models.Job{})
	if err == nil {
		t.Error("expected an error for a job with an empty JobHash")
	}
}

func TestJobStorageOpenForCompanyFiltersByCompanyAndStatus(t *testing.T) {
	db := newTestDB(t)
	storage := NewJobStorage(db, arbor.NewLogger())
	ctx := context.Background()

	jobs := []*models.Job{
		{JobHash: "h1", CompanyID: "co-1", Status: models.JobStatusOpen},
		{JobHash: "h2", CompanyID: "co-1", Status: models.JobStatusClosed},
		{JobHash: "h3", CompanyID: "co-2", Status: models.JobStatusOpen},
	}
	for _, j := range jobs {
		if err := storage.Upsert(ctx, j); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	open, err := storage.OpenForCompany(ctx, "co-1")
	if err != nil {
		t.Fatalf("OpenForCompany failed: %v", err)
	}
	if len(open) != 1 {
		t.Fatalf("expected 1 open job for co-1, got %d", len(open))
	}
	if open[0].JobHash != "h1" {
		t.Errorf("expected h1, got %q", open[0].JobHash)
	}
}

func TestJobStoragePurgeClosedBeforeReturnsAccurateCount(t *testing.T) {
	db := newTestDB(t)
	storage := NewJobStorage(db, arbor.NewLogger())
	ctx := context.Background()

	old := time.Now().Add(-72 * time.Hour)
	recent := time.Now()

	jobs := []*models.Job{
		{JobHash: "stale-1", CompanyID: "co-1", Status: models.JobStatusClosed, LastSeen: old},
		{JobHash: "stale-2", CompanyID: "co-1", Status: models.JobStatusClosed, LastSeen: old},
		{JobHash: "fresh", CompanyID: "co-1", Status: models.JobStatusClosed, LastSeen: recent},
		{JobHash: "open", CompanyID: "co-1", Status: models.JobStatusOpen, LastSeen: old},
	}
	for _, j := range jobs {
		if err := storage.Upsert(ctx, j); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	cutoff := time.Now().Add(-24 * time.Hour)
	purged, err := storage.PurgeClosedBefore(ctx, cutoff)
	if err != nil {
		t.Fatalf("PurgeClosedBefore failed: %v", err)
	}
	if purged != 2 {
		t.Errorf("expected 2 jobs purged, got %d", purged)
	}

	if _, err := storage.Get(ctx, "stale-1"); err == nil {
		t.Error("expected stale-1 to be purged")
	}
	if _, err := storage.Get(ctx, "fresh"); err != nil {
		t.Error("expected fresh closed job to survive the purge")
	}
	if _, err := storage.Get(ctx, "open"); err != nil {
		t.Error("expected open job to survive the purge regardless of age")
	}
}

func TestJobStoragePurgeClosedBeforeNoMatchesReturnsZero(t *testing.T) {
	db := newTestDB(t)
	storage := NewJobStorage(db, arbor.NewLogger())

	purged, err := storage.PurgeClosedBefore(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("PurgeClosedBefore failed: %v", err)
	}
	if purged != 0 {
		t.Errorf("expected 0 purged on an empty store, got %d", purged)
	}
}

func TestJobStorageClosedReturnsOnlyClosedJobs(t *testing.T) {
	db := newTestDB(t)
	storage := NewJobStorage(db, arbor.NewLogger())
	ctx := context.Background()

	jobs := []*models.Job{
		{JobHash: "h1", CompanyID: "co-1", Status: models.JobStatusOpen},
		{JobHash: "h2", CompanyID: "co-1", Status: models.JobStatusClosed},
	}
	for _, j := range jobs {
		if err := storage.Upsert(ctx, j); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	closed, err := storage.Closed(ctx)
	if err != nil {
		t.Fatalf("Closed failed: %v", err)
	}
	if len(closed) != 1 || closed[0].JobHash != "h2" {
		t.Errorf("expected only h2 in closed jobs, got %+v", closed)
	}
}
