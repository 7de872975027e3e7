package slugcheck

import (
	"sort"
	"strings"
)

// GroupEntities collapses the records of one duplicated slug into one
// summary per entity. Name and slug field come from the first record of
// each codename group (variants share entity metadata); languages are
// collected without repeats and joined for display. Entities are sorted
// by codename.
func GroupEntities(slug string, records []ContentRecord) DuplicateGroup {
	type entityAcc struct {
		first     ContentRecord
		languages []string
		seen      map[string]struct{}
	}

	byCodename := make(map[string]*entityAcc)
	var order []string

	for _, rec := range records {
		acc, ok := byCodename[rec.Codename]
		if !ok {
			acc = &entityAcc{first: rec, seen: make(map[string]struct{})}
			byCodename[rec.Codename] = acc
			order = append(order, rec.Codename)
		}
		if _, dup := acc.seen[rec.Language]; dup {
			continue
		}
		acc.seen[rec.Language] = struct{}{}
		acc.languages = append(acc.languages, rec.Language)
	}

	sort.Strings(order)

	entities := make([]EntitySummary, 0, len(order))
	for _, codename := range order {
		acc := byCodename[codename]
		entities = append(entities, EntitySummary{
			Name:      acc.first.Name,
			Codename:  codename,
			Languages: strings.Join(acc.languages, ", "),
			SlugField: acc.first.SlugField,
		})
	}

	return DuplicateGroup{Slug: slug, Entities: entities}
}
