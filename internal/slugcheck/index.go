package slugcheck

// BuildIndex groups records by slug value in a single pass. Every input
// record lands in exactly one list; insertion order per slug follows the
// input order.
func BuildIndex(records []ContentRecord) SlugIndex {
	idx := make(SlugIndex, len(records))
	for _, rec := range records {
		idx[rec.Slug] = append(idx[rec.Slug], rec)
	}
	return idx
}
