// Package store is the in-memory record set behind the shelf query layer.
// A Store is created per process or per test and owns all of its state.
package store

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SmartShelf_Go/internal/domain"
	"github.com/osse101/SmartShelf_Go/internal/query"
)

// Predicate selects records
type Predicate func(query.Record) bool

// All matches every record
func All(query.Record) bool { return true }

// FieldEquals matches records whose field equals value
func FieldEquals(field string, value any) Predicate {
	return func(r query.Record) bool {
		return valuesEqual(r[field], value)
	}
}

// And matches records that satisfy every predicate
func And(preds ...Predicate) Predicate {
	return func(r query.Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// immutableFields are never changed by UpdateWhere
var immutableFields = []string{domain.FieldID, domain.FieldOwnerID, domain.FieldCreatedAt}

// Store holds named collections of records
type Store struct {
	mu          sync.RWMutex
	collections map[string][]query.Record
	now         func() time.Time
	newID       func() string
	calls       atomic.Int64
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides id assignment
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates a Store with an empty collection for each Smart Shelf table
func New(opts ...Option) *Store {
	s := &Store{
		collections: map[string][]query.Record{
			domain.CollectionContainers:       {},
			domain.CollectionShelfItems:       {},
			domain.CollectionFeedbackComments: {},
		},
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calls returns how many primitive operations the store has served
func (s *Store) Calls() int64 {
	return s.calls.Load()
}

func (s *Store) collection(name string) ([]query.Record, error) {
	recs, ok := s.collections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, name)
	}
	return recs, nil
}

// Insert assigns an id and timestamps to each record, appends it, and
// returns copies of what was stored.
func (s *Store) Insert(collection string, records []query.Record) ([]query.Record, error) {
	s.calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]query.Record, 0, len(records))
	for _, rec := range records {
		stored := rec.Clone()
		if stored == nil {
			stored = query.Record{}
		}
		stored[domain.FieldID] = s.newID()
		stored[domain.FieldCreatedAt] = now
		stored[domain.FieldLastUpdatedAt] = now
		existing = append(existing, stored)
		out = append(out, stored.Clone())
	}
	s.collections[collection] = existing
	return out, nil
}

// SelectWhere returns copies of matching records in insertion order
func (s *Store) SelectWhere(collection string, pred Predicate) ([]query.Record, error) {
	s.calls.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selectLocked(collection, pred)
}

func (s *Store) selectLocked(collection string, pred Predicate) ([]query.Record, error) {
	recs, err := s.collection(collection)
	if err != nil {
		return nil, err
	}
	out := make([]query.Record, 0, len(recs))
	for _, r := range recs {
		if pred(r) {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

// UpdateWhere applies patch to every matching record and refreshes
// last_updated_at. Identity and ownership fields in patch are ignored.
func (s *Store) UpdateWhere(collection string, pred Predicate, patch query.Record) (int64, error) {
	s.calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.collection(collection)
	if err != nil {
		return 0, err
	}

	now := s.now()
	var n int64
	for _, r := range recs {
		if !pred(r) {
			continue
		}
		for k, v := range patch.Clone() {
			if slices.Contains(immutableFields, k) {
				continue
			}
			r[k] = v
		}
		r[domain.FieldLastUpdatedAt] = now
		n++
	}
	return n, nil
}

// DeleteWhere removes matching records and returns how many were removed
func (s *Store) DeleteWhere(collection string, pred Predicate) (int64, error) {
	s.calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.collection(collection)
	if err != nil {
		return 0, err
	}

	kept := recs[:0]
	var n int64
	for _, r := range recs {
		if pred(r) {
			n++
			continue
		}
		kept = append(kept, r)
	}
	// Clear the tail so removed records can be collected
	clear(recs[len(kept):])
	s.collections[collection] = kept
	return n, nil
}

// JoinOneToMany attaches to each left record, under key as, copies of the
// right records whose fkField equals the left record's id.
func (s *Store) JoinOneToMany(left []query.Record, rightCollection, fkField, as string) ([]query.Record, error) {
	s.calls.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()

	right, err := s.selectLocked(rightCollection, All)
	if err != nil {
		return nil, err
	}

	out := make([]query.Record, len(left))
	for i, l := range left {
		joined := l.Clone()
		children := []query.Record{}
		for _, r := range right {
			if valuesEqual(r[fkField], l[domain.FieldID]) {
				children = append(children, r.Clone())
			}
		}
		joined[as] = children
		out[i] = joined
	}
	return out, nil
}

// JoinManyToOne attaches to each left record, under key as, a copy of the
// parent record whose id equals the left record's fkField, or nil.
func (s *Store) JoinManyToOne(left []query.Record, parentCollection, fkField, as string) ([]query.Record, error) {
	s.calls.Add(1)
	s.mu.RLock()
	defer s.mu.RUnlock()

	parents, err := s.selectLocked(parentCollection, All)
	if err != nil {
		return nil, err
	}
	byID := make(map[any]query.Record, len(parents))
	for _, p := range parents {
		byID[p[domain.FieldID]] = p
	}

	out := make([]query.Record, len(left))
	for i, l := range left {
		joined := l.Clone()
		if p, ok := byID[l[fkField]]; ok {
			joined[as] = p.Clone()
		} else {
			joined[as] = nil
		}
		out[i] = joined
	}
	return out, nil
}

// OrderBy returns a new slice sorted by field. The sort is stable, so ties
// keep their original order in both directions.
func OrderBy(records []query.Record, field string, ascending bool) []query.Record {
	out := slices.Clone(records)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareValues(out[i][field], out[j][field])
		if ascending {
			return c < 0
		}
		return c > 0
	})
	return out
}

func valuesEqual(a, b any) bool {
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Equal(tb)
		}
	}
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}
	return reflect.DeepEqual(a, b)
}

// compareValues orders nil first, then numbers, times and strings by value.
// Values of unrelated types compare by their printed form.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return strings.Compare(sa, sb)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
