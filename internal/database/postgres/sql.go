package postgres

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/SmartShelf_Go/internal/domain"
	"github.com/osse101/SmartShelf_Go/internal/query"
)

// SQL text is built from statements the query layer has already checked
// against its schema. Identifiers are still quoted and every value is a
// positional argument.

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

type argList struct {
	args []any
}

func (a *argList) add(v any) string {
	a.args = append(a.args, v)
	return fmt.Sprintf("$%d", len(a.args))
}

func whereClause(filters []query.Filter, args *argList) string {
	if len(filters) == 0 {
		return ""
	}
	parts := make([]string, len(filters))
	for i, f := range filters {
		if f.Value == nil {
			parts[i] = ident(f.Field) + " IS NULL"
			continue
		}
		parts[i] = ident(f.Field) + " = " + args.add(f.Value)
	}
	return " WHERE " + strings.Join(parts, " AND ")
}

// orderClause keeps nulls first when ascending and last when descending
func orderClause(orders []query.Order) string {
	if len(orders) == 0 {
		return ""
	}
	parts := make([]string, len(orders))
	for i, o := range orders {
		if o.Direction == query.Descending {
			parts[i] = ident(o.Field) + " DESC NULLS LAST"
		} else {
			parts[i] = ident(o.Field) + " ASC NULLS FIRST"
		}
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// buildSelect reads whole rows; field projection happens after joins
func buildSelect(stmt query.SelectStatement) (string, []any) {
	args := &argList{}
	sql := "SELECT * FROM " + ident(stmt.Collection) +
		whereClause(stmt.Filters, args) +
		orderClause(query.WithTieBreakers(stmt.Orders))
	return sql, args.args
}

// buildLookup reads the rows of collection whose column is one of keys, in
// insertion order like the in-memory joins
func buildLookup(collection, column string, keys []string) (string, []any) {
	return fmt.Sprintf("SELECT * FROM %s WHERE %s = ANY($1)", ident(collection), ident(column)) +
		orderClause([]query.Order{{Field: domain.FieldCreatedAt}, {Field: domain.FieldID}}), []any{keys}
}

func writableColumns(rec query.Record, skip []string) []string {
	cols := make([]string, 0, len(rec))
	for k := range rec {
		if !slices.Contains(skip, k) {
			cols = append(cols, k)
		}
	}
	sort.Strings(cols)
	return cols
}

func buildInsert(collection string, rec query.Record) (string, []any) {
	cols := writableColumns(rec, backendAssigned)
	if len(cols) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING *", ident(collection)), nil
	}

	args := &argList{}
	names := make([]string, len(cols))
	values := make([]string, len(cols))
	for i, c := range cols {
		names[i] = ident(c)
		values[i] = args.add(rec[c])
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		ident(collection), strings.Join(names, ", "), strings.Join(values, ", "))
	return sql, args.args
}

func buildUpdate(stmt query.UpdateStatement) (string, []any) {
	args := &argList{}
	cols := writableColumns(stmt.Patch, immutableOnUpdate)
	sets := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		sets = append(sets, ident(c)+" = "+args.add(stmt.Patch[c]))
	}
	sets = append(sets, ident(domain.FieldLastUpdatedAt)+" = NOW()")

	sql := "UPDATE " + ident(stmt.Collection) + " SET " + strings.Join(sets, ", ") +
		whereClause(stmt.Filters, args)
	return sql, args.args
}

func buildDelete(stmt query.DeleteStatement) (string, []any) {
	args := &argList{}
	sql := "DELETE FROM " + ident(stmt.Collection) + whereClause(stmt.Filters, args)
	return sql, args.args
}
