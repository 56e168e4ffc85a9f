package store

import (
	"context"
	"slices"

	"github.com/osse101/SmartShelf_Go/internal/query"
)

// Executor serves query statements from a Store. It is the in-memory
// backend used for development and tests.
type Executor struct {
	store *Store
}

// NewExecutor creates an Executor over s
func NewExecutor(s *Store) *Executor {
	return &Executor{store: s}
}

// Store returns the underlying store
func (e *Executor) Store() *Store {
	return e.store
}

func filterPredicate(filters []query.Filter) Predicate {
	preds := make([]Predicate, len(filters))
	for i, f := range filters {
		preds[i] = FieldEquals(f.Field, f.Value)
	}
	return And(preds...)
}

// Select runs a read: filter, order, join, then project fields
func (e *Executor) Select(ctx context.Context, stmt query.SelectStatement) ([]query.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := e.store.SelectWhere(stmt.Collection, filterPredicate(stmt.Filters))
	if err != nil {
		return nil, err
	}

	// Sorting by the last key first keeps earlier keys dominant
	orders := query.WithTieBreakers(stmt.Orders)
	for i := len(orders) - 1; i >= 0; i-- {
		o := orders[i]
		rows = OrderBy(rows, o.Field, o.Direction == query.Ascending)
	}

	for _, j := range stmt.Joins {
		switch j.Kind {
		case query.OneToMany:
			rows, err = e.store.JoinOneToMany(rows, j.Collection, j.ForeignKey, j.Collection)
		default:
			rows, err = e.store.JoinManyToOne(rows, j.Collection, j.ForeignKey, j.Collection)
		}
		if err != nil {
			return nil, err
		}
		if len(j.Fields) > 0 {
			for _, r := range rows {
				projectJoined(r, j)
			}
		}
	}

	if len(stmt.Fields) > 0 {
		keep := slices.Clone(stmt.Fields)
		for _, j := range stmt.Joins {
			keep = append(keep, j.Collection)
		}
		for i, r := range rows {
			rows[i] = project(r, keep)
		}
	}
	return rows, nil
}

func projectJoined(r query.Record, j query.Join) {
	switch nested := r[j.Collection].(type) {
	case query.Record:
		r[j.Collection] = project(nested, j.Fields)
	case []query.Record:
		for i, n := range nested {
			nested[i] = project(n, j.Fields)
		}
	}
}

func project(r query.Record, fields []string) query.Record {
	out := make(query.Record, len(fields))
	for _, f := range fields {
		if v, ok := r[f]; ok {
			out[f] = v
		}
	}
	return out
}

// Insert stores records and returns them with ids and timestamps
func (e *Executor) Insert(ctx context.Context, stmt query.InsertStatement) ([]query.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.store.Insert(stmt.Collection, stmt.Records)
}

// Update patches every record matching the filters
func (e *Executor) Update(ctx context.Context, stmt query.UpdateStatement) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return e.store.UpdateWhere(stmt.Collection, filterPredicate(stmt.Filters), stmt.Patch)
}

// Delete removes every record matching the filters
func (e *Executor) Delete(ctx context.Context, stmt query.DeleteStatement) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return e.store.DeleteWhere(stmt.Collection, filterPredicate(stmt.Filters))
}
