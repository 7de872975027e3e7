package slugcheck

import (
	"strings"

	"slugwatch/internal/delivery"
)

const (
	unnamedPlaceholder = "(unnamed)"
	unknownPlaceholder = "(unknown)"
)

// slugValue returns the first non-empty candidate element value and the
// element it came from. A present-but-empty (or whitespace) value counts
// as absent and falls through to the next candidate.
func slugValue(item delivery.RawItem, fields []string) (string, string) {
	for _, field := range fields {
		if el, ok := item.Elements[field]; ok {
			if v := strings.TrimSpace(el.Value); v != "" {
				return v, field
			}
		}
	}
	return "", ""
}

// HasSlug is the fetcher-side filter: items with no slug value in any
// candidate element never reach the extractor.
func HasSlug(item delivery.RawItem, fields []string) bool {
	v, _ := slugValue(item, fields)
	return v != ""
}

// ExtractRecord flattens one fetched item into a ContentRecord, tagged
// with the language it was fetched under. It assumes HasSlug passed and
// never fails: missing name/codename become literal placeholders.
func ExtractRecord(item delivery.RawItem, language string, fields []string) ContentRecord {
	slug, field := slugValue(item, fields)

	name := strings.TrimSpace(item.System.Name)
	if name == "" {
		name = unnamedPlaceholder
	}
	codename := strings.TrimSpace(item.System.Codename)
	if codename == "" {
		codename = unknownPlaceholder
	}

	return ContentRecord{
		Name:      name,
		Codename:  codename,
		Language:  language,
		Slug:      slug,
		SlugField: field,
	}
}
