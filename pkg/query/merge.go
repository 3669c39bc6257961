package query

// Merge returns base overlaid with override at the top level only.
//
// Every field present in override replaces the same field of base wholesale:
// a Filters slice in override replaces the base filters, it is not appended
// to them. Nested values are never merged. Neither argument is modified.
func Merge(base, override SearchQuery) SearchQuery {
	merged := base

	if override.Text != nil {
		merged.Text = override.Text
	}
	if override.Scopes != nil {
		merged.Scopes = override.Scopes
	}
	if override.Filters != nil {
		merged.Filters = override.Filters
	}
	if override.Sorts != nil {
		merged.Sorts = override.Sorts
	}
	if override.Selects != nil {
		merged.Selects = override.Selects
	}
	if override.Includes != nil {
		merged.Includes = override.Includes
	}
	if override.Aggregates != nil {
		merged.Aggregates = override.Aggregates
	}
	if override.Instructions != nil {
		merged.Instructions = override.Instructions
	}
	if override.Pagination != nil {
		merged.Pagination = override.Pagination
	}
	if override.Gates != nil {
		merged.Gates = override.Gates
	}
	if override.Page != nil {
		merged.Page = override.Page
	}
	if override.Limit != nil {
		merged.Limit = override.Limit
	}

	return merged
}

// WithPage returns a copy of q requesting the given page and limit.
func (q SearchQuery) WithPage(page, limit int) SearchQuery {
	q.Page = Int(page)
	q.Limit = Int(limit)
	return q
}
