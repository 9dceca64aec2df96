package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mbrennan/fitlog/internal/domain"
)

// resolveType resolves a user-supplied workout type reference: an exact id,
// a unique id prefix, or a case-insensitive name.
func resolveType(ctx context.Context, app *App, ref string) (*domain.WorkoutType, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("workout type is required")
	}

	types, err := app.Types.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*domain.WorkoutType
	for _, t := range types {
		if t.ID == ref {
			return t, nil
		}
		if strings.EqualFold(t.Name, ref) || strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("no workout type matches %q (run 'fitlog type list')", ref)
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return nil, fmt.Errorf("%q is ambiguous: matches %s", ref, strings.Join(names, ", "))
	}
}
