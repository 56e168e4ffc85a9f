package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SmartShelf_Go/internal/domain"
	"github.com/osse101/SmartShelf_Go/internal/query"
)

// newTestStore returns a store with sequential ids and a clock that ticks
// one second per call
func newTestStore() *Store {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	seq := 0
	return New(
		WithClock(func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		}),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
}

func TestInsert_AssignsIDAndTimestamps(t *testing.T) {
	s := newTestStore()

	out, err := s.Insert(domain.CollectionContainers, []query.Record{
		{domain.FieldOwnerID: "u1", domain.FieldName: "Pantry", domain.FieldID: "caller-supplied"},
		{domain.FieldOwnerID: "u1", domain.FieldName: "Fridge"},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "id-1", out[0][domain.FieldID])
	assert.Equal(t, "id-2", out[1][domain.FieldID])
	assert.NotZero(t, out[0].Time(domain.FieldCreatedAt))
	assert.Equal(t, out[0][domain.FieldCreatedAt], out[0][domain.FieldLastUpdatedAt])

	// Mutating a returned record must not reach the store
	out[0][domain.FieldName] = "Changed"
	rows, err := s.SelectWhere(domain.CollectionContainers, FieldEquals(domain.FieldID, "id-1"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Pantry", rows[0][domain.FieldName])
}

func TestInsert_UnknownCollection(t *testing.T) {
	s := New()
	_, err := s.Insert("pantries", []query.Record{{}})
	assert.ErrorIs(t, err, domain.ErrUnknownCollection)
}

func TestSelectWhere_InsertionOrderAndOwnerScope(t *testing.T) {
	s := newTestStore()
	_, err := s.Insert(domain.CollectionContainers, []query.Record{
		{domain.FieldOwnerID: "u1", domain.FieldName: "A"},
		{domain.FieldOwnerID: "u2", domain.FieldName: "B"},
		{domain.FieldOwnerID: "u1", domain.FieldName: "C"},
	})
	require.NoError(t, err)

	rows, err := s.SelectWhere(domain.CollectionContainers, FieldEquals(domain.FieldOwnerID, "u1"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0][domain.FieldName])
	assert.Equal(t, "C", rows[1][domain.FieldName])
}

func TestOrderBy_StableInBothDirections(t *testing.T) {
	records := []query.Record{
		{"k": 2.0, "tag": "first-2"},
		{"k": 1.0, "tag": "first-1"},
		{"k": 2.0, "tag": "second-2"},
		{"k": nil, "tag": "nil"},
		{"k": 1.0, "tag": "second-1"},
	}

	asc := OrderBy(records, "k", true)
	assert.Equal(t, []string{"nil", "first-1", "second-1", "first-2", "second-2"}, tags(asc))

	desc := OrderBy(records, "k", false)
	assert.Equal(t, []string{"first-2", "second-2", "first-1", "second-1", "nil"}, tags(desc))

	// Input is untouched
	assert.Equal(t, "first-2", records[0]["tag"])
}

func TestOrderBy_Times(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []query.Record{
		{"at": t0.Add(time.Hour), "tag": "b"},
		{"at": t0, "tag": "a"},
		{"at": t0.Add(2 * time.Hour), "tag": "c"},
	}
	assert.Equal(t, []string{"c", "b", "a"}, tags(OrderBy(records, "at", false)))
}

func TestUpdateWhere(t *testing.T) {
	s := newTestStore()
	inserted, err := s.Insert(domain.CollectionShelfItems, []query.Record{
		{domain.FieldOwnerID: "u1", domain.FieldFoodName: "Rice", domain.FieldCurrentWeightGrams: 400.0},
		{domain.FieldOwnerID: "u1", domain.FieldFoodName: "Oats", domain.FieldCurrentWeightGrams: 300.0},
	})
	require.NoError(t, err)
	before := inserted[0].Time(domain.FieldLastUpdatedAt)

	n, err := s.UpdateWhere(domain.CollectionShelfItems, FieldEquals(domain.FieldID, "id-1"), query.Record{
		domain.FieldCurrentWeightGrams: 200.0,
		domain.FieldOwnerID:            "intruder",
		domain.FieldID:                 "hijacked",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rows, err := s.SelectWhere(domain.CollectionShelfItems, FieldEquals(domain.FieldID, "id-1"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 200.0, rows[0][domain.FieldCurrentWeightGrams])
	assert.Equal(t, "u1", rows[0][domain.FieldOwnerID])
	assert.True(t, rows[0].Time(domain.FieldLastUpdatedAt).After(before))

	n, err = s.UpdateWhere(domain.CollectionShelfItems, FieldEquals(domain.FieldID, "missing"), query.Record{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeleteWhere(t *testing.T) {
	s := newTestStore()
	_, err := s.Insert(domain.CollectionShelfItems, []query.Record{
		{domain.FieldContainerID: "c1"},
		{domain.FieldContainerID: "c2"},
		{domain.FieldContainerID: "c1"},
	})
	require.NoError(t, err)

	n, err := s.DeleteWhere(domain.CollectionShelfItems, FieldEquals(domain.FieldContainerID, "c1"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	rows, err := s.SelectWhere(domain.CollectionShelfItems, All)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "c2", rows[0][domain.FieldContainerID])

	n, err = s.DeleteWhere(domain.CollectionShelfItems, FieldEquals(domain.FieldContainerID, "c1"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestJoins(t *testing.T) {
	s := newTestStore()
	containers, err := s.Insert(domain.CollectionContainers, []query.Record{
		{domain.FieldName: "Pantry"},
		{domain.FieldName: "Fridge"},
	})
	require.NoError(t, err)
	pantryID := containers[0][domain.FieldID]

	items, err := s.Insert(domain.CollectionShelfItems, []query.Record{
		{domain.FieldContainerID: pantryID, domain.FieldFoodName: "Rice"},
		{domain.FieldContainerID: pantryID, domain.FieldFoodName: "Oats"},
		{domain.FieldContainerID: "gone", domain.FieldFoodName: "Orphan"},
	})
	require.NoError(t, err)

	t.Run("one to many", func(t *testing.T) {
		joined, err := s.JoinOneToMany(containers, domain.CollectionShelfItems, domain.FieldContainerID, "items")
		require.NoError(t, err)
		require.Len(t, joined, 2)
		assert.Len(t, joined[0]["items"], 2)
		assert.Empty(t, joined[1]["items"])
		assert.NotContains(t, containers[0], "items", "join must not write through to its input")
	})

	t.Run("many to one", func(t *testing.T) {
		joined, err := s.JoinManyToOne(items, domain.CollectionContainers, domain.FieldContainerID, domain.CollectionContainers)
		require.NoError(t, err)
		require.Len(t, joined, 3)
		parent, ok := joined[0][domain.CollectionContainers].(query.Record)
		require.True(t, ok)
		assert.Equal(t, "Pantry", parent[domain.FieldName])
		assert.Nil(t, joined[2][domain.CollectionContainers])
	})
}

func TestCalls(t *testing.T) {
	s := New()
	assert.Zero(t, s.Calls())

	_, _ = s.SelectWhere(domain.CollectionContainers, All)
	_, _ = s.Insert(domain.CollectionContainers, []query.Record{{}})
	_ = OrderBy(nil, "x", true)

	assert.Equal(t, int64(2), s.Calls())
}

func tags(records []query.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.String("tag")
	}
	return out
}
