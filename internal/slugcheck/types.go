package slugcheck

// ContentRecord is the normalized, internal form of one localized item
// variant. Every fetched item is mapped into this structure at the
// boundary; the rest of the pipeline never touches the raw payload.
type ContentRecord struct {
	Name      string `json:"name"`
	Codename  string `json:"codename"` // stable entity identifier, shared across language variants
	Language  string `json:"language"`
	Slug      string `json:"slug"`
	SlugField string `json:"slug_field"` // element codename the slug was read from
}

// SlugIndex maps a slug value to every record using it. Built fresh per
// detection run, never persisted.
type SlugIndex map[string][]ContentRecord

// EntitySummary is one display row: a single entity and every language
// it publishes the duplicated slug in.
type EntitySummary struct {
	Name      string `json:"name"`
	Codename  string `json:"codename"`
	Languages string `json:"languages"` // joined list, no repeats
	SlugField string `json:"slug_field"`
}

// DuplicateGroup holds the entities colliding on one slug. It exists
// only for slugs spanning at least two distinct codenames.
type DuplicateGroup struct {
	Slug     string          `json:"slug"`
	Entities []EntitySummary `json:"entities"`
}

type DetectionResult struct {
	RunID       string           `json:"run_id"`
	Duplicates  []DuplicateGroup `json:"duplicates"`
	TotalItems  int              `json:"total_items"`
	UniqueSlugs int              `json:"unique_slugs"`
	Error       string           `json:"error,omitempty"`
}

// StrategyResult is the outcome of one search strategy. A failed
// strategy keeps its error message here instead of aborting the run.
type StrategyResult struct {
	Label string          `json:"label"`
	Items []ContentRecord `json:"items"`
	Error string          `json:"error,omitempty"`
}

type SearchResult struct {
	RunID      string           `json:"run_id"`
	Success    bool             `json:"success"`
	Items      []ContentRecord  `json:"items"`
	Method     string           `json:"method"`
	TotalItems int              `json:"total_items"`
	Strategies []StrategyResult `json:"strategies,omitempty"`
	Error      string           `json:"error,omitempty"`
}
