package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQuery_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		query SearchQuery
		want  string
	}{
		{
			name:  "empty query",
			query: SearchQuery{},
			want:  `{}`,
		},
		{
			name: "filters and sorts",
			query: SearchQuery{
				Filters: []Filter{{Field: "id", Value: 2}},
				Sorts:   []Sort{{Field: "name", Direction: DirectionAsc}},
			},
			want: `{"filters":[{"field":"id","value":2}],"sorts":[{"field":"name","direction":"asc"}]}`,
		},
		{
			name:  "explicit empty slice is sent",
			query: SearchQuery{Filters: []Filter{}},
			want:  `{"filters":[]}`,
		},
		{
			name:  "zero page is sent",
			query: SearchQuery{Page: Int(0), Limit: Int(10)},
			want:  `{"page":0,"limit":10}`,
		},
		{
			name:  "false filter value is sent",
			query: SearchQuery{Filters: []Filter{{Field: "active", Value: false}}},
			want:  `{"filters":[{"field":"active","value":false}]}`,
		},
		{
			name: "nested filter tree",
			query: SearchQuery{Filters: []Filter{{
				Type: FilterTypeOr,
				Nested: []Filter{
					{Field: "price", Operator: OperatorGreater, Value: 10},
					{Field: "name", Operator: OperatorLike, Value: "%lamp%"},
				},
			}}},
			want: `{"filters":[{"type":"or","nested":[` +
				`{"field":"price","operator":">","value":10},` +
				`{"field":"name","operator":"like","value":"%lamp%"}]}]}`,
		},
		{
			name: "include is flat and recursive",
			query: SearchQuery{Includes: []Include{{
				Relation: "category",
				SearchQuery: SearchQuery{
					Includes: []Include{{Relation: "parent"}},
					Limit:    Int(1),
				},
			}}},
			want: `{"includes":[{"relation":"category","includes":[{"relation":"parent"}],"limit":1}]}`,
		},
		{
			name: "include pagination",
			query: SearchQuery{Includes: []Include{{
				Relation:    "products",
				SearchQuery: SearchQuery{Pagination: &Pagination{Page: 1, Limit: 5}},
			}}},
			want: `{"includes":[{"relation":"products","pagination":{"page":1,"limit":5}}]}`,
		},
		{
			name: "text scopes aggregates instructions gates",
			query: SearchQuery{
				Text:         &Text{Value: "lamp"},
				Scopes:       []Scope{{Name: "price_between", Parameters: []any{1, 10}}},
				Aggregates:   []Aggregate{{Relation: "reviews", Type: "avg", Field: "rating"}},
				Instructions: []Instruction{{Name: "odd", Fields: []Field{{Name: "type", Value: "even"}}}},
				Gates:        []string{"view", "update"},
			},
			want: `{"text":{"value":"lamp"},` +
				`"scopes":[{"name":"price_between","parameters":[1,10]}],` +
				`"aggregates":[{"relation":"reviews","type":"avg","field":"rating"}],` +
				`"instructions":[{"name":"odd","fields":[{"name":"type","value":"even"}]}],` +
				`"gates":["view","update"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.query)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestSearchQuery_NoNulls(t *testing.T) {
	got, err := json.Marshal(SearchQuery{
		Filters:  []Filter{{Field: "id"}},
		Includes: []Include{{Relation: "category"}},
	})
	require.NoError(t, err)
	assert.NotContains(t, string(got), "null")
}

func TestSearchQuery_UnmarshalInclude(t *testing.T) {
	var q SearchQuery
	err := json.Unmarshal([]byte(`{"includes":[{"relation":"category","filters":[{"field":"id","value":1}]}]}`), &q)
	require.NoError(t, err)

	require.Len(t, q.Includes, 1)
	assert.Equal(t, "category", q.Includes[0].Relation)
	require.Len(t, q.Includes[0].Filters, 1)
	assert.Equal(t, "id", q.Includes[0].Filters[0].Field)
}

func TestFilter_EffectiveType(t *testing.T) {
	assert.Equal(t, FilterTypeAnd, Filter{}.EffectiveType())
	assert.Equal(t, FilterTypeAnd, Filter{Type: FilterTypeAnd}.EffectiveType())
	assert.Equal(t, FilterTypeOr, Filter{Type: FilterTypeOr}.EffectiveType())
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []any{1, 2, 3}, IDs(1, 2, 3))
	assert.Equal(t, []any{"a", "b"}, IDs("a", "b"))
	assert.Equal(t, []any{}, IDs[int]())
}

func TestSearchResponse_UnmarshalJSON(t *testing.T) {
	type product struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	var resp SearchResponse[product]
	err := json.Unmarshal([]byte(`{
		"data": [{"id": 1, "name": "Test"}],
		"current_page": 1,
		"per_page": 10,
		"total": 1,
		"from": 1,
		"to": 1,
		"last_page": 1,
		"meta": {"gates": {"authorized_to_create": true}}
	}`), &resp)
	require.NoError(t, err)

	assert.Equal(t, []product{{ID: 1, Name: "Test"}}, resp.Data)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 10, resp.PerPage)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.LastPage)
	assert.JSONEq(t, `{"gates": {"authorized_to_create": true}}`, string(resp.Meta))
}
