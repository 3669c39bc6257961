package query

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Operation is a mutation operation.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationAttach Operation = "attach"
	OperationDetach Operation = "detach"
	OperationSync   Operation = "sync"
	OperationToggle Operation = "toggle"
)

// MutateRequest is one entry of a mutate request, sent as
// {"mutate": [<request>, ...]}.
type MutateRequest[T any] struct {
	Operation        Operation           `json:"operation"`
	Attributes       *T                  `json:"attributes,omitempty"`
	Key              any                 `json:"key,omitempty"`
	WithoutDetaching *bool               `json:"without_detaching,omitempty"`
	Relations        map[string]Relation `json:"relations,omitzero"`
}

// MutateRelationRequest mutates a related resource as part of a parent
// mutation.
type MutateRelationRequest struct {
	Operation        Operation           `json:"operation"`
	Attributes       any                 `json:"attributes,omitempty"`
	Key              any                 `json:"key,omitempty"`
	WithoutDetaching *bool               `json:"without_detaching,omitempty"`
	Pivot            any                 `json:"pivot,omitempty"`
	Relations        map[string]Relation `json:"relations,omitzero"`
}

// Relation holds the mutations for one relation: either a single request,
// encoded as an object, or a list, encoded as an array.
//
// The zero Relation holds nothing and encodes as null, which servers reject;
// Validate reports it.
type Relation struct {
	requests []MutateRelationRequest
	many     bool
}

// One returns a Relation holding a single request.
func One(r MutateRelationRequest) Relation {
	return Relation{requests: []MutateRelationRequest{r}}
}

// Many returns a Relation holding a list of requests.
func Many(rs ...MutateRelationRequest) Relation {
	return Relation{requests: rs, many: true}
}

// Requests returns the requests held by the relation.
func (r Relation) Requests() []MutateRelationRequest {
	return r.requests
}

// IsMany reports whether the relation is encoded as an array.
func (r Relation) IsMany() bool {
	return r.many
}

func (r Relation) MarshalJSON() ([]byte, error) {
	if r.many {
		if r.requests == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(r.requests)
	}
	if len(r.requests) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(r.requests[0])
}

func (r *Relation) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty relation")
	}

	switch trimmed[0] {
	case '[':
		var rs []MutateRelationRequest
		if err := json.Unmarshal(trimmed, &rs); err != nil {
			return err
		}
		*r = Many(rs...)
	case '{':
		var one MutateRelationRequest
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return err
		}
		*r = One(one)
	case 'n':
		*r = Relation{}
	default:
		return fmt.Errorf("relation must be an object or an array, got %q", trimmed)
	}

	return nil
}

// MutateResponse lists the keys created and updated by a mutation.
type MutateResponse struct {
	Created []any `json:"created"`
	Updated []any `json:"updated"`
}

// Bool returns a pointer to v, for WithoutDetaching.
func Bool(v bool) *bool {
	return &v
}
