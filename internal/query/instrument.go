package query

import (
	"context"
	"time"

	"github.com/osse101/SmartShelf_Go/internal/metrics"
)

// instrumented records metrics for every backend call
type instrumented struct {
	next    Executor
	backend string
}

// Instrument wraps exec so each call is counted and timed under the given
// backend label.
func Instrument(exec Executor, backend string) Executor {
	return &instrumented{next: exec, backend: backend}
}

func (i *instrumented) observe(op, collection string, start time.Time, err error) {
	status := metrics.StatusOK
	if err != nil {
		status = metrics.StatusError
	}
	metrics.QueryOperationsTotal.WithLabelValues(i.backend, op, collection, status).Inc()
	metrics.QueryDuration.WithLabelValues(i.backend, op).Observe(time.Since(start).Seconds())
}

func (i *instrumented) Select(ctx context.Context, stmt SelectStatement) ([]Record, error) {
	start := time.Now()
	rows, err := i.next.Select(ctx, stmt)
	i.observe(OpSelect, stmt.Collection, start, err)
	return rows, err
}

func (i *instrumented) Insert(ctx context.Context, stmt InsertStatement) ([]Record, error) {
	start := time.Now()
	rows, err := i.next.Insert(ctx, stmt)
	i.observe(OpInsert, stmt.Collection, start, err)
	return rows, err
}

func (i *instrumented) Update(ctx context.Context, stmt UpdateStatement) (int64, error) {
	start := time.Now()
	n, err := i.next.Update(ctx, stmt)
	i.observe(OpUpdate, stmt.Collection, start, err)
	return n, err
}

func (i *instrumented) Delete(ctx context.Context, stmt DeleteStatement) (int64, error) {
	start := time.Now()
	n, err := i.next.Delete(ctx, stmt)
	i.observe(OpDelete, stmt.Collection, start, err)
	return n, err
}
