package xer

import "time"

// Table is one decoded XER table. Each row maps a field name to its raw,
// trimmed string value; a field absent from the row's %R line is absent from
// the map.
type Table struct {
	Name   string
	Fields []string
	Rows   []map[string]string
}

// Header holds the ERMHDR line, when the file has one.
type Header struct {
	Version    string
	ExportDate string
	Raw        string
}

// TableSummary describes a decoded table for inspection output.
type TableSummary struct {
	Name   string
	Fields []string
	Rows   int
}

// Project is one PROJECT row.
type Project struct {
	ProjectID string
	ShortName string
	PlanStart *time.Time
	PlanEnd   *time.Time
	DataDate  *time.Time
}

// WBS is one PROJWBS row. ParentWBSID is nil for a top-level node.
type WBS struct {
	WBSID       string
	ProjectID   string
	ParentWBSID *string
	ShortCode   string
	Name        string
	SortOrder   float64
}

// Task is one TASK row with its dates, durations and float in hours.
type Task struct {
	TaskID          string
	ProjectID       string
	WBSID           *string
	ActivityCode    string
	Name            string
	StatusRaw       string
	PercentComplete float64

	TargetStart  *time.Time
	TargetFinish *time.Time
	ActualStart  *time.Time
	ActualFinish *time.Time
	EarlyStart   *time.Time
	EarlyFinish  *time.Time
	LateStart    *time.Time
	LateFinish   *time.Time

	PlannedDurationHrs   *float64
	RemainingDurationHrs *float64
	TotalFloatHrs        *float64
	FreeFloatHrs         *float64

	ActivityType    *string
	DrivingPathFlag bool
	ConstraintType  *string
	ConstraintDate  *time.Time
}

// TaskPred is one TASKPRED link from PredecessorTaskID to TaskID.
type TaskPred struct {
	ID                string
	TaskID            string
	PredecessorTaskID string
	ProjectID         string
	PredType          string
	LagHrs            float64
}

// ParseResult is everything recovered from one XER file. Errors lists the
// expected tables that were missing; Warnings is only populated in strict
// mode.
type ParseResult struct {
	Header    *Header
	Projects  []Project
	WBS       []WBS
	Tasks     []Task
	TaskPreds []TaskPred
	Tables    []TableSummary
	Errors    []string
	Warnings  []string
}

// HasTasks reports whether at least one activity was recovered.
func (r *ParseResult) HasTasks() bool {
	return len(r.Tasks) > 0
}
