package domain

type ActivityStatus string

const (
	ActivityNotStarted ActivityStatus = "not_started"
	ActivityInProgress ActivityStatus = "in_progress"
	ActivityCompleted  ActivityStatus = "completed"
)

// ValidActivityStatuses is the canonical set of accepted activity status strings.
var ValidActivityStatuses = map[string]bool{
	"not_started": true, "in_progress": true, "completed": true,
}

// RelationType is the logic type of a predecessor link.
type RelationType string

const (
	RelationFinishStart  RelationType = "FS"
	RelationStartStart   RelationType = "SS"
	RelationFinishFinish RelationType = "FF"
	RelationStartFinish  RelationType = "SF"
)

// Label returns the long form used in listings, e.g. "Finish-to-Start".
func (r RelationType) Label() string {
	switch r {
	case RelationStartStart:
		return "Start-to-Start"
	case RelationFinishFinish:
		return "Finish-to-Finish"
	case RelationStartFinish:
		return "Start-to-Finish"
	default:
		return "Finish-to-Start"
	}
}
