package query

// Operator is a filter comparison operator.
type Operator string

const (
	OperatorEqual        Operator = "="
	OperatorNotEqual     Operator = "!="
	OperatorGreater      Operator = ">"
	OperatorLess         Operator = "<"
	OperatorGreaterEqual Operator = ">="
	OperatorLessEqual    Operator = "<="
	OperatorLike         Operator = "like"
	OperatorNotLike      Operator = "not like"
	OperatorIn           Operator = "in"
	OperatorNotIn        Operator = "not in"
)

// FilterType controls how a filter combines with its siblings.
type FilterType string

const (
	FilterTypeAnd FilterType = "and"
	FilterTypeOr  FilterType = "or"
)

// Direction is a sort direction.
type Direction string

const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// SearchQuery is the body of a search request, sent as {"search": <query>}.
//
// Every field is optional. A nil field is omitted from the payload; an empty
// but non-nil slice is sent as [] so it can still replace a preset value.
type SearchQuery struct {
	Text         *Text         `json:"text,omitempty"`
	Scopes       []Scope       `json:"scopes,omitzero"`
	Filters      []Filter      `json:"filters,omitzero"`
	Sorts        []Sort        `json:"sorts,omitzero"`
	Selects      []Select      `json:"selects,omitzero"`
	Includes     []Include     `json:"includes,omitzero"`
	Aggregates   []Aggregate   `json:"aggregates,omitzero"`
	Instructions []Instruction `json:"instructions,omitzero"`
	Pagination   *Pagination   `json:"pagination,omitempty"`
	Gates        []string      `json:"gates,omitzero"`
	Page         *int          `json:"page,omitempty"`
	Limit        *int          `json:"limit,omitempty"`
}

// Pagination is the object form of page and limit, mostly used to paginate
// the records of an include.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Text is a full-text search term.
type Text struct {
	Value string `json:"value"`
}

// Scope names a server-side query scope.
type Scope struct {
	Name       string `json:"name"`
	Parameters []any  `json:"parameters,omitzero"`
}

// Filter is one node of a filter tree. Leaf filters carry Field, Operator and
// Value; group filters carry Nested.
type Filter struct {
	Field    string     `json:"field,omitempty"`
	Operator Operator   `json:"operator,omitempty"`
	Value    any        `json:"value,omitempty"`
	Type     FilterType `json:"type,omitempty"`
	Nested   []Filter   `json:"nested,omitzero"`
}

// EffectiveType returns the combining type of the filter, which is "and" when
// none is set.
func (f Filter) EffectiveType() FilterType {
	if f.Type == "" {
		return FilterTypeAnd
	}
	return f.Type
}

// Sort orders results by a field.
type Sort struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction,omitempty"`
}

// Select restricts the returned fields.
type Select struct {
	Field string `json:"field"`
}

// Include loads a relation. It accepts the full search query for the related
// resource, so includes nest to any depth.
type Include struct {
	Relation string `json:"relation"`
	SearchQuery
}

// Aggregate computes an aggregate over a relation.
type Aggregate struct {
	Relation string   `json:"relation"`
	Type     string   `json:"type"`
	Field    string   `json:"field,omitempty"`
	Filters  []Filter `json:"filters,omitzero"`
}

// Instruction runs a named server-side instruction.
type Instruction struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields,omitzero"`
}

// Field is a named input value for actions and instructions.
type Field struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Int returns a pointer to v, for Page and Limit.
func Int(v int) *int {
	return &v
}
