package slugcheck

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"slugwatch/internal/delivery"
	"slugwatch/internal/progress"
)

// Fetcher is the collaborator contract the engine needs from the
// content repository client. Implementations page internally and return
// the complete matching collection; zero matches is an empty slice.
type Fetcher interface {
	FetchItems(ctx context.Context, typeID, language string, fieldNames []string) ([]delivery.RawItem, error)
	FetchItemsFiltered(ctx context.Context, typeID, language, field, value string) ([]delivery.RawItem, error)
}

// Notifier receives progress events during a run. A nil notifier
// disables progress reporting.
type Notifier interface {
	BroadcastJSON(v any)
}

// Detector runs duplicate-slug detection and slug searches against a
// Fetcher. It carries no per-run state; every call builds its index
// from scratch.
type Detector struct {
	Fetcher Fetcher
	Hub     Notifier
}

func NewDetector(fetcher Fetcher) *Detector {
	return &Detector{Fetcher: fetcher}
}

func (d *Detector) publish(ev progress.Event) {
	if d.Hub != nil {
		d.Hub.BroadcastJSON(ev)
	}
}

// FindDuplicateSlugs fetches all slug-bearing items of the configured
// type in every configured language, indexes them by slug and reports
// the slugs shared by two or more distinct entities. A failing fetch
// for any language aborts the whole run; zero items is a successful
// empty result.
func (d *Detector) FindDuplicateSlugs(ctx context.Context, cfg Config) DetectionResult {
	runID := uuid.NewString()
	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return DetectionResult{
			RunID:      runID,
			Duplicates: []DuplicateGroup{},
			Error:      err.Error(),
		}
	}

	d.publish(progress.Event{Type: progress.EventScanStarted, RunID: runID, Languages: cfg.Languages})

	var records []ContentRecord
	for _, lang := range cfg.Languages {
		items, err := d.Fetcher.FetchItems(ctx, cfg.ContentType, lang, cfg.SlugFields)
		if err != nil {
			log.Printf("[scan] fetch %s failed: %v", lang, err)
			return DetectionResult{
				RunID:      runID,
				Duplicates: []DuplicateGroup{},
				Error:      fmt.Sprintf("fetch %s: %v", lang, err),
			}
		}

		kept := 0
		for _, item := range items {
			if !HasSlug(item, cfg.SlugFields) {
				continue
			}
			records = append(records, ExtractRecord(item, lang, cfg.SlugFields))
			kept++
		}
		log.Printf("[scan] language %s: %d items, %d with slug", lang, len(items), kept)
		d.publish(progress.Event{Type: progress.EventLanguageDone, RunID: runID, Language: lang, Items: kept})
	}

	idx := BuildIndex(records)
	entries := TrueDuplicates(idx)

	groups := make([]DuplicateGroup, 0, len(entries))
	for _, entry := range entries {
		groups = append(groups, GroupEntities(entry.Slug, entry.Records))
	}

	d.publish(progress.Event{
		Type:       progress.EventScanFinished,
		RunID:      runID,
		Duplicates: len(groups),
		TotalItems: len(records),
	})

	return DetectionResult{
		RunID:       runID,
		Duplicates:  groups,
		TotalItems:  len(records),
		UniqueSlugs: len(idx),
	}
}
