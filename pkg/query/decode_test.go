package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSearchQuery(t *testing.T) {
	input := map[string]any{
		"text": map[string]any{"value": "lamp"},
		"filters": []any{
			map[string]any{"field": "active", "value": true},
			map[string]any{
				"type": "or",
				"nested": []any{
					map[string]any{"field": "price", "operator": ">", "value": 10},
				},
			},
		},
		"sorts": []any{
			map[string]any{"field": "name", "direction": "desc"},
		},
		"includes": []any{
			map[string]any{
				"relation": "category",
				"limit":    1,
				"pagination": map[string]any{
					"page":  2,
					"limit": 5,
				},
				"includes": []any{
					map[string]any{"relation": "parent"},
				},
			},
		},
		"gates": []any{"view"},
		"limit": 10,
	}

	got, err := DecodeSearchQuery(input)
	require.NoError(t, err)

	want := SearchQuery{
		Text: &Text{Value: "lamp"},
		Filters: []Filter{
			{Field: "active", Value: true},
			{Type: FilterTypeOr, Nested: []Filter{
				{Field: "price", Operator: OperatorGreater, Value: 10},
			}},
		},
		Sorts: []Sort{{Field: "name", Direction: DirectionDesc}},
		Includes: []Include{{
			Relation: "category",
			SearchQuery: SearchQuery{
				Includes:   []Include{{Relation: "parent"}},
				Pagination: &Pagination{Page: 2, Limit: 5},
				Limit:      Int(1),
			},
		}},
		Gates: []string{"view"},
		Limit: Int(10),
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeSearchQuery() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSearchQuery_UnknownKey(t *testing.T) {
	_, err := DecodeSearchQuery(map[string]any{
		"filter": []any{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filter")
}
