package models

import "time"

// RawJob is a single posting as shaped by its source ATS, before
// normalization.
type RawJob struct {
	Title       string
	Location    string
	Department  string
	URL         string
	Description string
}

// JobBoard is what an ATS provider's parse function returns on success: the
// full set of currently-open postings for one company token.
type JobBoard struct {
	CareersURL string
	Jobs       []RawJob
}

// CollectionResult is the Collector's output and the Reconciler's sole
// input. Jobs is the complete observed-open set for this pass unless
// Partial is true, in which case the Reconciler must not close stale jobs.
type CollectionResult struct {
	CompanyID   string
	ATSType     string
	Token       string
	CareersURL  string
	Jobs        []NormalizedJob
	Aggregates  Aggregates
	CollectedAt time.Time
	Partial     bool
	PartialErr  error
	PagesOK     int
}

// NormalizedJob is a RawJob after the Normalizer has applied department,
// location, skill, and hashing rules. CompanyID is filled in by the
// Collector once the owning company is known.
type NormalizedJob struct {
	JobHash    string
	CompanyID  string
	Title      string
	Department string
	City       string
	Region     string
	Country    string
	WorkType   WorkType
	Skills     []string
	URL        string
}

// CollectionStats summarizes one pass for progress publishing.
type CollectionStats struct {
	Tested     int
	Hits       int
	JobsAdded  int
	JobsClosed int
}

// ProgressFunc is invoked at least once per completed company during a
// Scheduler pass.
type ProgressFunc func(progress float64, stats CollectionStats)
