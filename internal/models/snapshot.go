package models

import "time"

// Snapshot6h is a 6-hourly point-in-time aggregate per company, retained on
// a 90-day rolling window by Scheduler maintenance.
type Snapshot6h struct {
	ID           string    `badgerhold:"key"`
	SnapshotTime time.Time `badgerholdIndex:"SnapshotTime"`
	CompanyID    string    `badgerholdIndex:"CompanyID"`
	JobCount     int
	RemoteCount  int
	HybridCount  int
	OnsiteCount  int
}

// MonthlySnapshot is unique per (CompanyID, Year, Month), upserted once per
// calendar month at the month boundary.
type MonthlySnapshot struct {
	ID          string `badgerhold:"key"` // fmt.Sprintf("%s|%04d-%02d", CompanyID, Year, Month)
	Year        int    `badgerholdIndex:"Year"`
	Month       int
	CompanyID   string `badgerholdIndex:"CompanyID"`
	JobCount    int
	RemoteCount int
	HybridCount int
	OnsiteCount int
}
