package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/xerplan/internal/domain"
	"github.com/alexanderramin/xerplan/internal/repository"
)

// resolveProject resolves a project reference which can be:
//   - a short name (case-insensitive)
//   - a full project id or the proj_id of the source file
//   - a unique id prefix
func resolveProject(ctx context.Context, app *App, input string) (*domain.Project, error) {
	if input == "" {
		return nil, fmt.Errorf("project is required")
	}

	p, err := app.Projects.Get(ctx, input)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return nil, err
	}

	var named []*domain.Project
	for _, p := range projects {
		if strings.EqualFold(p.ShortName, input) {
			named = append(named, p)
		}
	}
	if len(named) == 1 {
		return named[0], nil
	}
	if len(named) > 1 {
		return nil, fmt.Errorf("project name %q is ambiguous (%d matches)", input, len(named))
	}

	var matches []*domain.Project
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
