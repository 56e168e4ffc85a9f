// Package query is the chainable data-access contract shared by every
// persistence backend. Callers build statements with Client; backends
// implement Executor.
package query

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/osse101/SmartShelf_Go/internal/domain"
)

// Record is a single row keyed by field name. Joined rows are stored under
// the joined collection's name: a Record for many-to-one joins and a
// []Record for one-to-many joins.
type Record map[string]any

// Clone returns a copy of the record that shares no maps or slices with r
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		switch val := v.(type) {
		case Record:
			out[k] = val.Clone()
		case []Record:
			nested := make([]Record, len(val))
			for i, n := range val {
				nested[i] = n.Clone()
			}
			out[k] = nested
		default:
			out[k] = v
		}
	}
	return out
}

// String returns the string value of field, or "" if absent or not a string
func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// Time returns the time value of field, or the zero time
func (r Record) Time(field string) time.Time {
	t, _ := r[field].(time.Time)
	return t
}

// Direction is a sort direction for Order
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// JoinKind describes the cardinality of a join
type JoinKind int

const (
	// ManyToOne attaches the single parent row referenced by a foreign key on
	// the selected row.
	ManyToOne JoinKind = iota
	// OneToMany attaches every child row whose foreign key references the
	// selected row.
	OneToMany
)

// Filter is an equality predicate
type Filter struct {
	Field string
	Value any
}

// Order sorts results by a single field
type Order struct {
	Field     string
	Direction Direction
}

// WithTieBreakers extends orders with created_at and id, in the direction
// of the first order, so rows equal on every requested key still come back
// in the same order from every backend. Empty orders stay empty.
func WithTieBreakers(orders []Order) []Order {
	if len(orders) == 0 {
		return nil
	}
	out := slices.Clone(orders)
	dir := orders[0].Direction
	for _, field := range []string{domain.FieldCreatedAt, domain.FieldID} {
		if !slices.ContainsFunc(out, func(o Order) bool { return o.Field == field }) {
			out = append(out, Order{Field: field, Direction: dir})
		}
	}
	return out
}

// Join requests related rows from another collection by name
type Join struct {
	Collection string
	ForeignKey string
	Fields     []string
	Kind       JoinKind
}

// SelectStatement is a fully built read
type SelectStatement struct {
	Collection string
	Fields     []string
	Filters    []Filter
	Joins      []Join
	Orders     []Order
}

// InsertStatement is a fully built insert
type InsertStatement struct {
	Collection string
	Records    []Record
}

// UpdateStatement is a fully built update
type UpdateStatement struct {
	Collection string
	Patch      Record
	Filters    []Filter
}

// DeleteStatement is a fully built delete
type DeleteStatement struct {
	Collection string
	Filters    []Filter
}

// Executor is the backend contract. Implementations may perform network I/O
// and must return either a payload or a descriptive error.
type Executor interface {
	Select(ctx context.Context, stmt SelectStatement) ([]Record, error)
	Insert(ctx context.Context, stmt InsertStatement) ([]Record, error)
	Update(ctx context.Context, stmt UpdateStatement) (int64, error)
	Delete(ctx context.Context, stmt DeleteStatement) (int64, error)
}

// Operation names used in errors, logs and metrics
const (
	OpSelect = "select"
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Error is returned by every terminal call that fails
type Error struct {
	Op         string
	Collection string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapErr(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Collection: collection, Err: err}
}
