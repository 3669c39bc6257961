package query

import "encoding/json"

// SearchResponse is one page of search results.
type SearchResponse[T any] struct {
	Data        []T             `json:"data"`
	CurrentPage int             `json:"current_page"`
	PerPage     int             `json:"per_page"`
	Total       int             `json:"total"`
	From        int             `json:"from"`
	To          int             `json:"to"`
	LastPage    int             `json:"last_page"`
	Meta        json.RawMessage `json:"meta,omitempty"`
}

// IDs converts typed resource keys into the id list sent as
// {"resources": ids}.
func IDs[K ~int | ~int64 | ~uint | ~uint64 | ~string](keys ...K) []any {
	ids := make([]any, len(keys))
	for i, k := range keys {
		ids[i] = k
	}
	return ids
}
