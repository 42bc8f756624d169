package xer

import "github.com/alexanderramin/xerplan/internal/domain"

// P6 status_code values.
const (
	StatusNotStarted = "TK_NotStart"
	StatusActive     = "TK_Active"
	StatusComplete   = "TK_Complete"
)

// P6 pred_type values.
const (
	PredFinishStart  = "PR_FS"
	PredStartStart   = "PR_SS"
	PredFinishFinish = "PR_FF"
	PredStartFinish  = "PR_SF"
)

// DefaultHoursPerDay converts duration hours to workdays when no calendar is
// configured.
const DefaultHoursPerDay = 8.0

var knownPredTypes = map[string]bool{
	PredFinishStart:  true,
	PredStartStart:   true,
	PredFinishFinish: true,
	PredStartFinish:  true,
}

// IsKnownPredType reports whether code is one of the four P6 link types.
func IsKnownPredType(code string) bool {
	return knownPredTypes[code]
}

// MapStatus maps a P6 status_code onto an activity status. Unknown and empty
// codes map to not started.
func MapStatus(code string) domain.ActivityStatus {
	switch code {
	case StatusComplete:
		return domain.ActivityCompleted
	case StatusActive:
		return domain.ActivityInProgress
	default:
		return domain.ActivityNotStarted
	}
}

// MapRelationType maps a P6 pred_type onto a relation type, defaulting to
// finish-to-start.
func MapRelationType(code string) domain.RelationType {
	switch code {
	case PredStartStart:
		return domain.RelationStartStart
	case PredFinishFinish:
		return domain.RelationFinishFinish
	case PredStartFinish:
		return domain.RelationStartFinish
	default:
		return domain.RelationFinishStart
	}
}

// IsCriticalActivity reports whether total float is known and not positive.
func IsCriticalActivity(totalFloatHrs *float64) bool {
	return totalFloatHrs != nil && *totalFloatHrs <= 0
}

// HoursToWorkdays converts an hour count to workdays. A nil input stays nil;
// a non-positive hoursPerDay falls back to DefaultHoursPerDay.
func HoursToWorkdays(hours *float64, hoursPerDay float64) *float64 {
	if hours == nil {
		return nil
	}
	if hoursPerDay <= 0 {
		hoursPerDay = DefaultHoursPerDay
	}
	days := *hours / hoursPerDay
	return &days
}
