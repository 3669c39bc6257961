// Package query defines the request and response payloads of a resource
// server: search queries, mutations, actions and paginated search results.
//
// # Search Queries
//
// A SearchQuery is sent as {"search": <query>} to POST /{resource}/search.
// Filters form a tree through Filter.Nested, and includes carry their own
// search query for the related resource:
//
//	q := query.SearchQuery{
//	    Filters: []query.Filter{
//	        {Field: "price", Operator: query.OperatorGreater, Value: 10},
//	        {Type: query.FilterTypeOr, Nested: []query.Filter{
//	            {Field: "category.name", Value: "books"},
//	            {Field: "category.name", Value: "music"},
//	        }},
//	    },
//	    Includes: []query.Include{
//	        {Relation: "category", SearchQuery: query.SearchQuery{Limit: query.Int(5)}},
//	    },
//	    Limit: query.Int(10),
//	}
//
// # Composition
//
// Defaults and per-call values combine with Merge, which overlays the top-level
// fields only. A field set on the override replaces the default entirely.
//
// # Mutations
//
// MutateRequest values are sent as {"mutate": [...]}. Relation mutations nest
// through Relation, which holds either one request or a list:
//
//	m := query.MutateRequest[Product]{
//	    Operation:  query.OperationCreate,
//	    Attributes: &Product{Name: "Lamp"},
//	    Relations: map[string]query.Relation{
//	        "category": query.One(query.MutateRelationRequest{
//	            Operation: query.OperationAttach,
//	            Key:       3,
//	        }),
//	    },
//	}
package query
