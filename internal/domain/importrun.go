package domain

import "time"

// ImportRun records one successful schedule import into a project.
type ImportRun struct {
	ID                   string
	ProjectID            string
	FileName             string
	XERVersion           string
	WBSCount             int
	ActivityCount        int
	RelationshipCount    int
	SkippedRelationships int
	Warnings             []string
	ImportedAt           time.Time
}
