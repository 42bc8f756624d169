package domain

import "time"

// Project is a schedule container. SourceProjectID is the proj_id from the
// XER file the schedule was last imported from.
type Project struct {
	ID              string
	SourceProjectID string
	ShortName       string
	PlanStart       *time.Time
	PlanEnd         *time.Time
	DataDate        *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DisplayID returns the best short identifier for display.
// It prefers ShortName; if empty it truncates ID to 8 characters.
func (p *Project) DisplayID() string {
	if p.ShortName != "" {
		return p.ShortName
	}
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
