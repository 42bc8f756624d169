package domain

import "time"

type WBSNode struct {
	ID          string
	ProjectID   string
	ParentID    *string
	SourceWBSID string
	ShortCode   string
	Name        string
	SortOrder   float64
	CreatedAt   time.Time
}

// IsRoot reports whether the node has no parent.
func (n *WBSNode) IsRoot() bool {
	return n.ParentID == nil
}
