package query

// ActionRequest is the body of an action call. It is sent unwrapped.
//
// An action targets either the explicit Fields inputs or the resources matched
// by Search.
type ActionRequest struct {
	Fields []Field      `json:"fields,omitzero"`
	Search *SearchQuery `json:"search,omitempty"`
}

// ActionResponse reports how many resources an action touched.
type ActionResponse struct {
	Data struct {
		Impacted int `json:"impacted"`
	} `json:"data"`
}
