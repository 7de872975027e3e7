package slugcheck

import "sort"

// DuplicateEntry is one classified index entry: a slug and every record
// sharing it, kept only when the records span multiple entities.
type DuplicateEntry struct {
	Slug    string
	Records []ContentRecord
}

// TrueDuplicates keeps the index entries whose records span two or more
// distinct codenames. One entity repeating its slug across languages is
// expected and is discarded here. Output is sorted by slug so runs are
// reproducible despite map iteration order.
func TrueDuplicates(idx SlugIndex) []DuplicateEntry {
	var out []DuplicateEntry
	for slug, records := range idx {
		if distinctCodenames(records) < 2 {
			continue
		}
		out = append(out, DuplicateEntry{Slug: slug, Records: records})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

func distinctCodenames(records []ContentRecord) int {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		seen[rec.Codename] = struct{}{}
	}
	return len(seen)
}
