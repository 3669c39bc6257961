package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type product struct {
	Name  string  `json:"name,omitempty"`
	Price float64 `json:"price,omitempty"`
}

func TestMutateRequest_MarshalJSON(t *testing.T) {
	req := MutateRequest[product]{
		Operation:  OperationCreate,
		Attributes: &product{Name: "Lamp", Price: 19.99},
		Relations: map[string]Relation{
			"category": One(MutateRelationRequest{
				Operation: OperationAttach,
				Key:       3,
			}),
			"tags": Many(
				MutateRelationRequest{
					Operation:  OperationCreate,
					Attributes: map[string]any{"name": "new"},
				},
				MutateRelationRequest{
					Operation:        OperationSync,
					Key:              7,
					WithoutDetaching: Bool(true),
					Pivot:            map[string]any{"position": 1},
				},
			),
		},
	}

	got, err := json.Marshal(req)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"operation": "create",
		"attributes": {"name": "Lamp", "price": 19.99},
		"relations": {
			"category": {"operation": "attach", "key": 3},
			"tags": [
				{"operation": "create", "attributes": {"name": "new"}},
				{"operation": "sync", "key": 7, "without_detaching": true, "pivot": {"position": 1}}
			]
		}
	}`, string(got))
}

func TestMutateRequest_OmitsAbsentFields(t *testing.T) {
	got, err := json.Marshal(MutateRequest[product]{Operation: OperationDetach, Key: 4})
	require.NoError(t, err)
	assert.JSONEq(t, `{"operation":"detach","key":4}`, string(got))
}

func TestRelation_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMany bool
		wantOps  []Operation
		wantErr  bool
	}{
		{
			name:    "single object",
			input:   `{"operation":"attach","key":1}`,
			wantOps: []Operation{OperationAttach},
		},
		{
			name:     "array",
			input:    `[{"operation":"create"},{"operation":"toggle","key":2}]`,
			wantMany: true,
			wantOps:  []Operation{OperationCreate, OperationToggle},
		},
		{
			name: "nested relations",
			input: `{"operation":"create","relations":{` +
				`"author":{"operation":"attach","key":5}}}`,
			wantOps: []Operation{OperationCreate},
		},
		{
			name:    "scalar is rejected",
			input:   `"attach"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Relation
			err := json.Unmarshal([]byte(tt.input), &r)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantMany, r.IsMany())
			var ops []Operation
			for _, req := range r.Requests() {
				ops = append(ops, req.Operation)
			}
			assert.Equal(t, tt.wantOps, ops)
		})
	}
}

func TestRelation_RoundTripsShape(t *testing.T) {
	input := `{"operation":"update","key":1,"relations":{` +
		`"one":{"operation":"attach","key":2},` +
		`"many":[{"operation":"detach","key":3}]}}`

	var req MutateRelationRequest
	require.NoError(t, json.Unmarshal([]byte(input), &req))

	assert.False(t, req.Relations["one"].IsMany())
	assert.True(t, req.Relations["many"].IsMany())

	got, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(got))
}

func TestMutateResponse_UnmarshalJSON(t *testing.T) {
	var resp MutateResponse
	require.NoError(t, json.Unmarshal([]byte(`{"created":[1],"updated":[2,3]}`), &resp))

	assert.Len(t, resp.Created, 1)
	assert.Len(t, resp.Updated, 2)
}
