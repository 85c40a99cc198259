package models

import "time"

type WorkType string

const (
	WorkTypeRemote WorkType = "remote"
	WorkTypeHybrid WorkType = "hybrid"
	WorkTypeOnsite WorkType = "onsite"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// Job is keyed by JobHash = md5(company_id + "|" + lower(title) + "|" + lower(location)),
// computed by normalizer.JobHash. At most one Job exists per JobHash for a
// given company at any instant.
type Job struct {
	JobHash     string `badgerhold:"key"`
	CompanyID   string `badgerholdIndex:"CompanyID"`
	Title       string
	City        string
	Region      string
	Country     string
	WorkType    WorkType
	Skills      []string
	FirstSeen   time.Time
	LastSeen    time.Time `badgerholdIndex:"LastSeen"`
	Status      JobStatus `badgerholdIndex:"Status"`
	TimeToFillDays int // valid only once Status == closed
}

// TouchSeen bumps LastSeen to T, never regressing it (guards against
// out-of-order CollectionResult application), and reopens a closed job that
// reappears.
func (j *Job) TouchSeen(t time.Time) {
	if t.After(j.LastSeen) {
		j.LastSeen = t
	}
	j.Status = JobStatusOpen
}

// Close marks the job closed and computes time-to-fill in whole days.
func (j *Job) Close(t time.Time) {
	j.Status = JobStatusClosed
	days := int(t.Sub(j.FirstSeen).Hours() / 24)
	if days < 0 {
		days = 0
	}
	j.TimeToFillDays = days
}
