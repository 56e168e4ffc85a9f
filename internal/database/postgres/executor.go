package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/SmartShelf_Go/internal/domain"
	"github.com/osse101/SmartShelf_Go/internal/logger"
	"github.com/osse101/SmartShelf_Go/internal/query"
)

// DB is the subset of pgxpool.Pool the executor uses
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Executor serves query statements from PostgreSQL
type Executor struct {
	db DB
}

// NewExecutor creates an Executor over db
func NewExecutor(db DB) *Executor {
	return &Executor{db: db}
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func collectRecords(ctx context.Context, q querier, sql string, args []any) ([]query.Record, error) {
	logger.FromContext(ctx).Debug("Executing query", "sql", sql)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuery, translate(err))
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRows, translate(err))
	}

	out := make([]query.Record, len(maps))
	for i, m := range maps {
		out[i] = query.Record(m)
	}
	return out, nil
}

// Select runs a read: filter and order in SQL, then join, then project fields
func (e *Executor) Select(ctx context.Context, stmt query.SelectStatement) ([]query.Record, error) {
	sql, args := buildSelect(stmt)
	rows, err := collectRecords(ctx, e.db, sql, args)
	if err != nil {
		return nil, err
	}

	for _, j := range stmt.Joins {
		if err := e.attach(ctx, rows, j); err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToJoin, j.Collection, err)
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

// attach loads the joined collection with one lookup and stores the matches
// on each row under the collection name
func (e *Executor) attach(ctx context.Context, rows []query.Record, j query.Join) error {
	if len(rows) == 0 {
		return nil
	}

	var keyField, lookupColumn string
	switch j.Kind {
	case query.OneToMany:
		keyField, lookupColumn = domain.FieldID, j.ForeignKey
	default:
		keyField, lookupColumn = j.ForeignKey, domain.FieldID
	}

	// Keys are TEXT ids
	keys := make([]string, 0, len(rows))
	for _, r := range rows {
		if v, ok := r[keyField].(string); ok && !slices.Contains(keys, v) {
			keys = append(keys, v)
		}
	}

	var related []query.Record
	if len(keys) > 0 {
		sql, args := buildLookup(j.Collection, lookupColumn, keys)
		var err error
		related, err = collectRecords(ctx, e.db, sql, args)
		if err != nil {
			return err
		}
	}
	if len(j.Fields) > 0 {
		for i, r := range related {
			related[i] = project(r, j.Fields)
			// keep the lookup key until matched
			related[i][lookupColumn] = r[lookupColumn]
		}
	}

	for _, r := range rows {
		key := r[keyField]
		switch j.Kind {
		case query.OneToMany:
			children := []query.Record{}
			for _, rel := range related {
				if rel[lookupColumn] == key {
					children = append(children, trim(rel, lookupColumn, j.Fields))
				}
			}
			r[j.Collection] = children
		default:
			r[j.Collection] = nil
			for _, rel := range related {
				if rel[lookupColumn] == key {
					r[j.Collection] = trim(rel, lookupColumn, j.Fields)
					break
				}
			}
		}
	}
	return nil
}

// trim copies rel, dropping the lookup column unless it was requested
func trim(rel query.Record, lookupColumn string, fields []string) query.Record {
	out := rel.Clone()
	if len(fields) > 0 && !slices.Contains(fields, lookupColumn) {
		delete(out, lookupColumn)
	}
	return out
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

// Insert writes every record in one transaction and returns the stored rows
func (e *Executor) Insert(ctx context.Context, stmt query.InsertStatement) ([]query.Record, error) {
	out := make([]query.Record, 0, len(stmt.Records))
	err := pgx.BeginFunc(ctx, e.db, func(tx pgx.Tx) error {
		for _, rec := range stmt.Records {
			sql, args := buildInsert(stmt.Collection, rec)
			rows, err := collectRecords(ctx, tx, sql, args)
			if err != nil {
				return err
			}
			out = append(out, rows...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsert, err)
	}
	return out, nil
}

// Update patches every row matching the filters
func (e *Executor) Update(ctx context.Context, stmt query.UpdateStatement) (int64, error) {
	sql, args := buildUpdate(stmt)
	tag, err := e.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdate, translate(err))
	}
	return tag.RowsAffected(), nil
}

// Delete removes every row matching the filters
func (e *Executor) Delete(ctx context.Context, stmt query.DeleteStatement) (int64, error) {
	sql, args := buildDelete(stmt)
	tag, err := e.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDelete, translate(err))
	}
	return tag.RowsAffected(), nil
}

// translate adds a readable reason to constraint violations. The driver
// error stays in the chain.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case PgErrorCodeForeignKeyViolation:
		return fmt.Errorf("%s (%s): %w", ErrMsgForeignKeyViolation, pgErr.ConstraintName, err)
	case PgErrorCodeCheckViolation:
		return fmt.Errorf("%s (%s): %w", ErrMsgCheckViolation, pgErr.ConstraintName, err)
	}
	return err
}
