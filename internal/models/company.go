package models

import "time"

// Company is keyed by a stable id derived from (ats_type, token): re-observing
// the same pair on a later pass MUST yield the same id.
type Company struct {
	ID                 string `badgerhold:"key"`
	CompanyName         string
	ATSType             string `badgerholdIndex:"ATSType"`
	Token               string
	JobCount            int
	Remote              int
	Hybrid              int
	Onsite              int
	Locations           []string
	Departments         []string
	NormalizedLocations []string
	ExtractedSkills     []string
	CareersURL          string
	FirstDiscovered     time.Time
	LastUpdated         time.Time `badgerholdIndex:"LastUpdated"`
}

// Aggregates is the subset of Company counters the Collector computes per
// pass and the Reconciler writes back atomically.
type Aggregates struct {
	JobCount            int
	Remote              int
	Hybrid              int
	Onsite              int
	Locations           []string
	Departments         []string
	NormalizedLocations []string
	ExtractedSkills     []string
}

// ApplyAggregates overwrites the company's derived counters.
func (c *Company) ApplyAggregates(a Aggregates) {
	c.JobCount = a.JobCount
	c.Remote = a.Remote
	c.Hybrid = a.Hybrid
	c.Onsite = a.Onsite
	c.Locations = a.Locations
	c.Departments = a.Departments
	c.NormalizedLocations = a.NormalizedLocations
	c.ExtractedSkills = a.ExtractedSkills
}
