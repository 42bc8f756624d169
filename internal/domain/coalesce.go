package domain

import "time"

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// StrFromPtr returns *p, or "" when p is nil.
func StrFromPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// FirstTime returns the first non-nil time, or nil.
func FirstTime(ts ...*time.Time) *time.Time {
	for _, t := range ts {
		if t != nil {
			return t
		}
	}
	return nil
}
