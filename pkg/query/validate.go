package query

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	operators = []any{
		OperatorEqual, OperatorNotEqual,
		OperatorGreater, OperatorLess,
		OperatorGreaterEqual, OperatorLessEqual,
		OperatorLike, OperatorNotLike,
		OperatorIn, OperatorNotIn,
	}
	filterTypes = []any{FilterTypeAnd, FilterTypeOr}
	directions  = []any{DirectionAsc, DirectionDesc}
	operations  = []any{
		OperationCreate, OperationUpdate,
		OperationAttach, OperationDetach,
		OperationSync, OperationToggle,
	}
)

// Validate checks the query and everything nested in it. The server remains
// the authority on field and relation names; this only catches malformed
// requests before they are sent.
func (q SearchQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Text),
		validation.Field(&q.Scopes),
		validation.Field(&q.Filters),
		validation.Field(&q.Sorts),
		validation.Field(&q.Selects),
		validation.Field(&q.Includes),
		validation.Field(&q.Aggregates),
		validation.Field(&q.Instructions),
		validation.Field(&q.Pagination),
		validation.Field(&q.Limit, validation.Min(0)),
	)
}

func (p Pagination) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Limit, validation.Min(0)),
	)
}

func (t Text) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Value, validation.Required),
	)
}

func (s Scope) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
	)
}

func (f Filter) Validate() error {
	leaf := len(f.Nested) == 0
	return validation.ValidateStruct(&f,
		validation.Field(&f.Field, validation.When(leaf, validation.Required)),
		validation.Field(&f.Operator, validation.In(operators...)),
		validation.Field(&f.Type, validation.In(filterTypes...)),
		validation.Field(&f.Nested),
	)
}

func (s Sort) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Field, validation.Required),
		validation.Field(&s.Direction, validation.In(directions...)),
	)
}

func (s Select) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Field, validation.Required),
	)
}

func (i Include) Validate() error {
	if err := validation.ValidateStruct(&i,
		validation.Field(&i.Relation, validation.Required),
	); err != nil {
		return err
	}
	return i.SearchQuery.Validate()
}

func (a Aggregate) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Relation, validation.Required),
		validation.Field(&a.Type, validation.Required),
		validation.Field(&a.Filters),
	)
}

func (i Instruction) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required),
		validation.Field(&i.Fields),
	)
}

func (f Field) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
	)
}

func (m MutateRequest[T]) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Operation, validation.Required, validation.In(operations...)),
		validation.Field(&m.Key, validation.When(m.Operation != OperationCreate, validation.NotNil)),
		validation.Field(&m.Relations),
	)
}

func (m MutateRelationRequest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Operation, validation.Required, validation.In(operations...)),
		validation.Field(&m.Key, validation.When(m.Operation != OperationCreate, validation.NotNil)),
		validation.Field(&m.Relations),
	)
}

var errEmptyRelation = errors.New("empty relation, build it with One or Many")

func (r Relation) Validate() error {
	if !r.many && len(r.requests) == 0 {
		return errEmptyRelation
	}
	return validation.Validate(r.requests)
}

func (a ActionRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Fields),
		validation.Field(&a.Search),
	)
}
