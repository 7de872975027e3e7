package slugcheck

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"slugwatch/internal/progress"
)

const searchMethod = "element-filter"

// SearchSlug answers "which entities currently use this slug" by running
// one lookup strategy per configured language and candidate slug field,
// then merging the outputs. A failing strategy contributes nothing and
// is recorded on its StrategyResult; it never aborts the siblings, so a
// search only fails outright on invalid input.
func (d *Detector) SearchSlug(ctx context.Context, cfg Config, slug string) SearchResult {
	runID := uuid.NewString()
	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return SearchResult{RunID: runID, Items: []ContentRecord{}, Method: searchMethod, Error: err.Error()}
	}
	if strings.TrimSpace(slug) == "" {
		return SearchResult{RunID: runID, Items: []ContentRecord{}, Method: searchMethod, Error: "slug is required"}
	}

	var strategies []StrategyResult
	for _, lang := range cfg.Languages {
		for _, field := range cfg.SlugFields {
			label := fmt.Sprintf("%s/%s", lang, field)
			st := StrategyResult{Label: label, Items: []ContentRecord{}}

			items, err := d.Fetcher.FetchItemsFiltered(ctx, cfg.ContentType, lang, field, slug)
			if err != nil {
				// one broken strategy must not kill the search
				log.Printf("[search] strategy %s failed: %v", label, err)
				st.Error = err.Error()
				strategies = append(strategies, st)
				continue
			}

			for _, item := range items {
				st.Items = append(st.Items, ExtractRecord(item, lang, cfg.SlugFields))
			}
			d.publish(progress.Event{Type: progress.EventStrategyDone, RunID: runID, Label: label, Items: len(st.Items)})
			strategies = append(strategies, st)
		}
	}

	merged := mergeStrategyItems(strategies)

	return SearchResult{
		RunID:      runID,
		Success:    true,
		Items:      merged,
		Method:     searchMethod,
		TotalItems: len(merged),
		Strategies: strategies,
	}
}

// mergeStrategyItems concatenates all strategy outputs and drops later
// records with an already-seen (codename, language) pair; the first
// observation wins.
func mergeStrategyItems(strategies []StrategyResult) []ContentRecord {
	merged := []ContentRecord{}
	seen := make(map[string]struct{})

	for _, st := range strategies {
		for _, rec := range st.Items {
			key := rec.Codename + "\x00" + rec.Language
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, rec)
		}
	}
	return merged
}
