package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/xerplan/internal/xer"
)

// ErrNoActivities rejects an upload from which no activity could be recovered.
var ErrNoActivities = errors.New("no activities found in XER file")

// Evaluate decides whether a parse result can be imported. A result without
// tasks is rejected, carrying the parser errors in the message. Otherwise the
// parser errors are downgraded and returned, followed by any strict-mode
// warnings.
func Evaluate(res *xer.ParseResult) ([]string, error) {
	if !res.HasTasks() {
		if len(res.Errors) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoActivities, strings.Join(res.Errors, "; "))
		}
		return nil, ErrNoActivities
	}

	warnings := make([]string, 0, len(res.Errors)+len(res.Warnings))
	warnings = append(warnings, res.Errors...)
	warnings = append(warnings, res.Warnings...)
	return warnings, nil
}

// CheckScope rejects a scope left without tasks after rows from other
// projects were filtered out.
func CheckScope(s *Scope) error {
	if len(s.Tasks) > 0 {
		return nil
	}
	if s.Project != nil {
		return fmt.Errorf("%w: no TASK rows belong to %s", ErrNoActivities, projectLabel(*s.Project))
	}
	return ErrNoActivities
}
