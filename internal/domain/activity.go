package domain

import "time"

type Activity struct {
	ID           string
	ProjectID    string
	WBSNodeID    *string
	SourceTaskID string
	Code         string
	Name         string
	Status       ActivityStatus
	StatusRaw    string

	PercentComplete float64

	// Dates
	TargetStart  *time.Time
	TargetFinish *time.Time
	ActualStart  *time.Time
	ActualFinish *time.Time
	EarlyStart   *time.Time
	EarlyFinish  *time.Time
	LateStart    *time.Time
	LateFinish   *time.Time

	// Durations and float, in hours
	PlannedDurationHrs   *float64
	RemainingDurationHrs *float64
	TotalFloatHrs        *float64
	FreeFloatHrs         *float64

	ActivityType   string
	DrivingPath    bool
	ConstraintType string
	ConstraintDate *time.Time

	CreatedAt time.Time
}

// IsCritical reports whether the activity sits on the critical path:
// total float is known and not positive.
func (a *Activity) IsCritical() bool {
	return a.TotalFloatHrs != nil && *a.TotalFloatHrs <= 0
}

// IsComplete reports whether the activity has finished.
func (a *Activity) IsComplete() bool {
	return a.Status == ActivityCompleted
}

// Start is the actual start when recorded, else the early start.
func (a *Activity) Start() *time.Time {
	return FirstTime(a.ActualStart, a.EarlyStart)
}

// Finish is the actual finish when recorded, else the early finish.
func (a *Activity) Finish() *time.Time {
	return FirstTime(a.ActualFinish, a.EarlyFinish)
}
