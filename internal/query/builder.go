package query

import (
	"context"
	"slices"
)

// Client builds statements against a backend
type Client struct {
	exec   Executor
	schema Schema
}

// NewClient creates a client over exec using the default schema
func NewClient(exec Executor) *Client {
	return NewClientWithSchema(exec, DefaultSchema())
}

// NewClientWithSchema creates a client with an explicit schema
func NewClientWithSchema(exec Executor, schema Schema) *Client {
	return &Client{exec: exec, schema: schema}
}

// From starts a statement on a collection
func (c *Client) From(collection string) Table {
	return Table{client: c, collection: collection}
}

// Table is the entry point for statements on one collection
type Table struct {
	client     *Client
	collection string
}

// Select starts a read. No fields means every column.
func (t Table) Select(fields ...string) SelectQuery {
	return SelectQuery{client: t.client, stmt: SelectStatement{
		Collection: t.collection,
		Fields:     slices.Clone(fields),
	}}
}

// Insert builds an insert of one or more records
func (t Table) Insert(records ...Record) InsertQuery {
	cloned := make([]Record, len(records))
	for i, r := range records {
		cloned[i] = r.Clone()
	}
	return InsertQuery{client: t.client, stmt: InsertStatement{
		Collection: t.collection,
		Records:    cloned,
	}}
}

// Update starts an update; it must be narrowed with Eq before Execute
func (t Table) Update(patch Record) UpdateQuery {
	return UpdateQuery{client: t.client, stmt: UpdateStatement{
		Collection: t.collection,
		Patch:      patch.Clone(),
	}}
}

// Delete starts a delete; it must be narrowed with Eq before Execute
func (t Table) Delete() DeleteQuery {
	return DeleteQuery{client: t.client, stmt: DeleteStatement{
		Collection: t.collection,
	}}
}

// SelectQuery is an immutable read under construction. Each method returns
// a new query, so a partially built query can be shared and extended.
type SelectQuery struct {
	client *Client
	stmt   SelectStatement
}

// Eq narrows the read to rows whose field equals value
func (q SelectQuery) Eq(field string, value any) SelectQuery {
	q.stmt.Filters = append(slices.Clone(q.stmt.Filters), Filter{Field: field, Value: value})
	return q
}

// Order sorts by field. Later calls break ties of earlier ones.
func (q SelectQuery) Order(field string, dir Direction) SelectQuery {
	q.stmt.Orders = append(slices.Clone(q.stmt.Orders), Order{Field: field, Direction: dir})
	return q
}

// Embed attaches the parent row from collection referenced by foreignKey on
// each selected row.
func (q SelectQuery) Embed(collection, foreignKey string, fields ...string) SelectQuery {
	return q.join(Join{Collection: collection, ForeignKey: foreignKey, Fields: slices.Clone(fields), Kind: ManyToOne})
}

// Nest attaches the child rows from collection whose foreignKey references
// each selected row.
func (q SelectQuery) Nest(collection, foreignKey string, fields ...string) SelectQuery {
	return q.join(Join{Collection: collection, ForeignKey: foreignKey, Fields: slices.Clone(fields), Kind: OneToMany})
}

func (q SelectQuery) join(j Join) SelectQuery {
	q.stmt.Joins = append(slices.Clone(q.stmt.Joins), j)
	return q
}

// Statement returns the statement built so far
func (q SelectQuery) Statement() SelectStatement {
	return q.stmt
}

// Execute runs the read
func (q SelectQuery) Execute(ctx context.Context) ([]Record, error) {
	if err := q.client.schema.ValidateSelect(q.stmt); err != nil {
		return nil, wrapErr(OpSelect, q.stmt.Collection, err)
	}
	rows, err := q.client.exec.Select(ctx, q.stmt)
	if err != nil {
		return nil, wrapErr(OpSelect, q.stmt.Collection, err)
	}
	return rows, nil
}

// InsertQuery is an insert ready to execute
type InsertQuery struct {
	client *Client
	stmt   InsertStatement
}

// Execute runs the insert and returns the stored records
func (q InsertQuery) Execute(ctx context.Context) ([]Record, error) {
	if err := q.client.schema.ValidateInsert(q.stmt); err != nil {
		return nil, wrapErr(OpInsert, q.stmt.Collection, err)
	}
	rows, err := q.client.exec.Insert(ctx, q.stmt)
	if err != nil {
		return nil, wrapErr(OpInsert, q.stmt.Collection, err)
	}
	return rows, nil
}

// UpdateQuery is an immutable update under construction
type UpdateQuery struct {
	client *Client
	stmt   UpdateStatement
}

// Eq narrows the update to rows whose field equals value
func (q UpdateQuery) Eq(field string, value any) UpdateQuery {
	q.stmt.Filters = append(slices.Clone(q.stmt.Filters), Filter{Field: field, Value: value})
	return q
}

// Execute runs the update and returns the number of rows changed
func (q UpdateQuery) Execute(ctx context.Context) (int64, error) {
	if err := q.client.schema.ValidateUpdate(q.stmt); err != nil {
		return 0, wrapErr(OpUpdate, q.stmt.Collection, err)
	}
	n, err := q.client.exec.Update(ctx, q.stmt)
	if err != nil {
		return 0, wrapErr(OpUpdate, q.stmt.Collection, err)
	}
	return n, nil
}

// DeleteQuery is an immutable delete under construction
type DeleteQuery struct {
	client *Client
	stmt   DeleteStatement
}

// Eq narrows the delete to rows whose field equals value
func (q DeleteQuery) Eq(field string, value any) DeleteQuery {
	q.stmt.Filters = append(slices.Clone(q.stmt.Filters), Filter{Field: field, Value: value})
	return q
}

// Execute runs the delete and returns the number of rows removed
func (q DeleteQuery) Execute(ctx context.Context) (int64, error) {
	if err := q.client.schema.ValidateDelete(q.stmt); err != nil {
		return 0, wrapErr(OpDelete, q.stmt.Collection, err)
	}
	n, err := q.client.exec.Delete(ctx, q.stmt)
	if err != nil {
		return 0, wrapErr(OpDelete, q.stmt.Collection, err)
	}
	return n, nil
}
