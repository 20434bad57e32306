// query/specification.go
package query

import (
	"strings"
	"sync"

	"github.com/spf13/cast"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"

	echo_errors "github.com/923325596/albedo-boot/errors"
)

var schemaCache = &sync.Map{}

// Specification is a filter over entity type T compiled from conditions.
// Field names and operators are checked when conditions are added, so a
// Specification that was built without error always compiles.
type Specification[T any] struct {
	columns map[string]string

	enforcedConds []Condition
	enforced      []clause.Expression
	and           []clause.Expression
	or            []clause.Expression
	orders        []clause.OrderByColumn
}

// New returns an empty Specification bound to the gorm schema of T.
func New[T any]() (*Specification[T], error) {
	sch, err := schema.Parse(new(T), schemaCache, schema.NamingStrategy{})
	if err != nil {
		return nil, err
	}
	columns := make(map[string]string, len(sch.Fields))
	for _, f := range sch.Fields {
		if f.DBName == "" {
			continue
		}
		columns[normalize(f.Name)] = f.DBName
		columns[normalize(f.DBName)] = f.DBName
	}
	return &Specification[T]{columns: columns}, nil
}

// BySearchQueryCondition builds a Specification from AND conditions plus
// conditions the caller cannot override.
func BySearchQueryCondition[T any](and []Condition, enforced ...Condition) (*Specification[T], error) {
	spec, err := New[T]()
	if err != nil {
		return nil, err
	}
	if err := spec.Enforce(enforced...); err != nil {
		return nil, err
	}
	if err := spec.And(and...); err != nil {
		return nil, err
	}
	return spec, nil
}

// BuildSpecification parses a JSON condition payload into AND conditions.
func BuildSpecification[T any](payload string, enforced ...Condition) (*Specification[T], error) {
	conds, err := ParseConditions(payload)
	if err != nil {
		return nil, err
	}
	return BySearchQueryCondition[T](conds, enforced...)
}

// Enforce adds server side conditions. They are always compiled first.
// Conditions added here, through And or through OrAll are never skipped: one
// that cannot be compiled fails the call.
func (s *Specification[T]) Enforce(conds ...Condition) error {
	exprs, err := s.compileAll(conds)
	if err != nil {
		return err
	}
	s.enforcedConds = append(s.enforcedConds, conds...)
	s.enforced = append(s.enforced, exprs...)
	return nil
}

// And adds conditions to the base predicate.
func (s *Specification[T]) And(conds ...Condition) error {
	exprs, err := s.compileAll(conds)
	if err != nil {
		return err
	}
	s.and = append(s.and, exprs...)
	return nil
}

// OrAll adds alternatives to the single OR group that is ANDed to the base.
func (s *Specification[T]) OrAll(conds []Condition) error {
	exprs, err := s.compileAll(conds)
	if err != nil {
		return err
	}
	s.or = append(s.or, exprs...)
	return nil
}

// OrderBy appends a sort column. An empty name is ignored.
func (s *Specification[T]) OrderBy(name string, desc bool) error {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	col, err := s.column(name)
	if err != nil {
		return err
	}
	s.orders = append(s.orders, clause.OrderByColumn{
		Column: clause.Column{Table: clause.CurrentTable, Name: col},
		Desc:   desc,
	})
	return nil
}

// EnforcedConditions returns the conditions no caller input can remove.
func (s *Specification[T]) EnforcedConditions() []Condition {
	return append([]Condition(nil), s.enforcedConds...)
}

// Exprs returns the WHERE expressions in evaluation order.
func (s *Specification[T]) Exprs() []clause.Expression {
	exprs := make([]clause.Expression, 0, len(s.enforced)+len(s.and)+1)
	exprs = append(exprs, s.enforced...)
	exprs = append(exprs, s.and...)
	switch len(s.or) {
	case 0:
	case 1:
		// gorm renders a one element OrConditions as "OR x" against its neighbour
		exprs = append(exprs, s.or[0])
	default:
		exprs = append(exprs, clause.Or(s.or...))
	}
	return exprs
}

// Scope applies the WHERE part. Use it for both count and select.
func (s *Specification[T]) Scope() func(*gorm.DB) *gorm.DB {
	exprs := s.Exprs()
	return func(db *gorm.DB) *gorm.DB {
		if len(exprs) == 0 {
			return db
		}
		return db.Clauses(clause.Where{Exprs: exprs})
	}
}

// OrderScope applies the requested sort columns.
func (s *Specification[T]) OrderScope() func(*gorm.DB) *gorm.DB {
	orders := append([]clause.OrderByColumn(nil), s.orders...)
	return func(db *gorm.DB) *gorm.DB {
		if len(orders) == 0 {
			return db
		}
		return db.Clauses(clause.OrderBy{Columns: orders})
	}
}

func (s *Specification[T]) compileAll(conds []Condition) ([]clause.Expression, error) {
	exprs := make([]clause.Expression, 0, len(conds))
	for _, c := range conds {
		expr, err := s.compile(c)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func (s *Specification[T]) compile(c Condition) (clause.Expression, error) {
	if !knownOperators[c.Operate] {
		return nil, echo_errors.WrapRuntimeMsg(echo_errors.ErrInvalidQueryCondition,
			"unknown query operator %q on field %q", c.Operate, c.FieldName)
	}
	name, err := s.column(c.FieldName)
	if err != nil {
		return nil, err
	}
	col := clause.Column{Table: clause.CurrentTable, Name: name}
	if needsValue(c.Operate) && c.Value == nil {
		return nil, echo_errors.WrapRuntimeMsg(echo_errors.ErrInvalidQueryCondition,
			"query operator %q on field %q needs a value", c.Operate, c.FieldName)
	}

	switch c.Operate {
	case OpIsNull:
		return clause.Eq{Column: col, Value: nil}, nil
	case OpIsNotNull:
		return clause.Neq{Column: col, Value: nil}, nil
	case OpIn, OpNotIn:
		values, err := coerceList(c.AttrType, c.Value)
		if err != nil {
			return nil, badValue(c, err)
		}
		in := clause.IN{Column: col, Values: values}
		if c.Operate == OpNotIn {
			return clause.Not(in), nil
		}
		return in, nil
	case OpBetween:
		values, err := coerceList(c.AttrType, c.Value)
		if err != nil {
			return nil, badValue(c, err)
		}
		if len(values) != 2 {
			return nil, echo_errors.WrapRuntimeMsg(echo_errors.ErrInvalidQueryCondition,
				"between on field %q needs exactly two values", c.FieldName)
		}
		return clause.Expr{SQL: "? BETWEEN ? AND ?", Vars: []interface{}{col, values[0], values[1]}}, nil
	}

	value, err := coerce(c.AttrType, c.Value)
	if err != nil {
		return nil, badValue(c, err)
	}
	switch c.Operate {
	case OpEq:
		return clause.Eq{Column: col, Value: value}, nil
	case OpNe:
		return clause.Neq{Column: col, Value: value}, nil
	case OpGt:
		return clause.Gt{Column: col, Value: value}, nil
	case OpGe:
		return clause.Gte{Column: col, Value: value}, nil
	case OpLt:
		return clause.Lt{Column: col, Value: value}, nil
	case OpLe:
		return clause.Lte{Column: col, Value: value}, nil
	case OpLike:
		return clause.Like{Column: col, Value: likePattern(value)}, nil
	default: // OpNotLike
		return clause.Not(clause.Like{Column: col, Value: likePattern(value)}), nil
	}
}

func (s *Specification[T]) column(field string) (string, error) {
	if col, ok := s.columns[normalize(field)]; ok {
		return col, nil
	}
	return "", echo_errors.WrapRuntimeMsg(echo_errors.ErrInvalidQueryCondition,
		"unknown query field %q", field)
}

func badValue(c Condition, err error) error {
	return echo_errors.WrapRuntimeMsg(echo_errors.ErrInvalidQueryCondition,
		"invalid value for field %q: %v", c.FieldName, err)
}

func likePattern(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		s = cast.ToString(v)
	}
	if strings.Contains(s, "%") {
		return s
	}
	return "%" + s + "%"
}

// normalize folds Go names, lowerCamel names and column names onto one key.
func normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
}
