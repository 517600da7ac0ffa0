package note

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

// normalizeRefs splits validated references into distinct ids and distinct
// trimmed names, each in first-occurrence order. A reference carrying an id
// is matched by id only; its name is ignored.
func normalizeRefs(refs []domain.CategoryRef) (ids []int64, names []string) {
	ids = []int64{}
	names = []string{}
	seenName := make(map[string]struct{})

	for _, ref := range refs {
		if ref.ID != nil {
			ids = append(ids, *ref.ID)
			continue
		}
		if ref.Name == nil {
			continue
		}
		name := strings.TrimSpace(*ref.Name)
		if name == "" {
			continue
		}
		if _, ok := seenName[name]; ok {
			continue
		}
		seenName[name] = struct{}{}
		names = append(names, name)
	}

	return domain.UniqueIDs(ids), names
}

// resolveCategories turns references into existing categories. Id references
// must point at stored categories. A name reference binds to the oldest
// category with that exact name, or creates one. Must run inside RunInTx so
// created categories roll back with the note.
// The result is deduplicated and ordered by id.
func (s *Service) resolveCategories(ctx context.Context, refs []domain.CategoryRef) ([]domain.Category, error) {
	ids, names := normalizeRefs(refs)
	byID := make(map[int64]domain.Category, len(ids)+len(names))

	if len(ids) > 0 {
		found, err := s.categories.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("get categories: %w", err)
		}
		for _, c := range found {
			byID[c.ID] = *c
		}
		for _, id := range ids {
			if _, ok := byID[id]; !ok {
				return nil, domain.NewValidationError("categories", fmt.Sprintf("category %d does not exist", id))
			}
		}
	}

	for _, name := range names {
		c, err := s.categories.FindByName(ctx, name)
		if errors.Is(err, domain.ErrNotFound) {
			c, err = s.categories.Create(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("create category %q: %w", name, err)
			}
		} else if err != nil {
			return nil, fmt.Errorf("find category %q: %w", name, err)
		}
		byID[c.ID] = *c
	}

	out := make([]domain.Category, 0, len(byID))
	for _, c := range byID {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Category) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	return out, nil
}

func categoryIDs(cats []domain.Category) []int64 {
	ids := make([]int64, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
	}
	return ids
}
