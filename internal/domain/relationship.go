package domain

// Relationship is a typed predecessor link between two activities of the
// same project.
type Relationship struct {
	ID            string
	ProjectID     string
	PredecessorID string
	SuccessorID   string
	Type          RelationType
	LagHrs        float64
	SourceID      string
}
