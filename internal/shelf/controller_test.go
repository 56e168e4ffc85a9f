package shelf_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SmartShelf_Go/internal/domain"
	"github.com/osse101/SmartShelf_Go/internal/feedback"
	"github.com/osse101/SmartShelf_Go/internal/query"
	"github.com/osse101/SmartShelf_Go/internal/shelf"
	"github.com/osse101/SmartShelf_Go/internal/store"
)

const testOwner = "owner-1"

var errBackend = errors.New("connection reset")

// faultyExecutor passes calls through to the in-memory store unless fault
// returns an error for them
type faultyExecutor struct {
	query.Executor

	mu    sync.Mutex
	fault func(op, collection string, filters []query.Filter) error
}

func (f *faultyExecutor) setFault(fn func(op, collection string, filters []query.Filter) error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fault = fn
}

func (f *faultyExecutor) check(op, collection string, filters []query.Filter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fault == nil {
		return nil
	}
	return f.fault(op, collection, filters)
}

func (f *faultyExecutor) Select(ctx context.Context, stmt query.SelectStatement) ([]query.Record, error) {
	if err := f.check(query.OpSelect, stmt.Collection, stmt.Filters); err != nil {
		return nil, err
	}
	return f.Executor.Select(ctx, stmt)
}

func (f *faultyExecutor) Insert(ctx context.Context, stmt query.InsertStatement) ([]query.Record, error) {
	if err := f.check(query.OpInsert, stmt.Collection, nil); err != nil {
		return nil, err
	}
	return f.Executor.Insert(ctx, stmt)
}

func (f *faultyExecutor) Update(ctx context.Context, stmt query.UpdateStatement) (int64, error) {
	if err := f.check(query.OpUpdate, stmt.Collection, stmt.Filters); err != nil {
		return 0, err
	}
	return f.Executor.Update(ctx, stmt)
}

func (f *faultyExecutor) Delete(ctx context.Context, stmt query.DeleteStatement) (int64, error) {
	if err := f.check(query.OpDelete, stmt.Collection, stmt.Filters); err != nil {
		return 0, err
	}
	return f.Executor.Delete(ctx, stmt)
}

func failOn(op, collection string) func(string, string, []query.Filter) error {
	return func(gotOp, gotCollection string, _ []query.Filter) error {
		if gotOp == op && gotCollection == collection {
			return errBackend
		}
		return nil
	}
}

type harness struct {
	ctrl   *shelf.Controller
	store  *store.Store
	exec   *faultyExecutor
	client *query.Client
	events *feedback.Queue
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	tick := 0
	s := store.New(store.WithClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}))

	exec := &faultyExecutor{Executor: store.NewExecutor(s)}
	client := query.NewClient(exec)
	events := feedback.NewQueue(feedback.DefaultQueueLimit)

	ctrl, err := shelf.NewController(testOwner, client, events)
	require.NoError(t, err)
	require.NoError(t, ctrl.LoadAll(context.Background()))

	return &harness{ctrl: ctrl, store: s, exec: exec, client: client, events: events}
}

func (h *harness) addContainer(t *testing.T, name string) domain.Container {
	t.Helper()
	weight := 100.0
	c, err := h.ctrl.AddContainer(context.Background(), shelf.ContainerInput{Name: name, EmptyWeightGrams: &weight})
	require.NoError(t, err)
	require.NotNil(t, c)
	h.events.Drain()
	return *c
}

func (h *harness) addItem(t *testing.T, containerID, food string, calories, current, maxWeight float64) domain.ShelfItem {
	t.Helper()
	item, err := h.ctrl.AddShelfItem(context.Background(), shelf.ShelfItemInput{
		ContainerID:        containerID,
		FoodName:           food,
		CaloriesPerGram:    calories,
		CurrentWeightGrams: current,
		MaxWeightGrams:     maxWeight,
	})
	require.NoError(t, err)
	require.NotNil(t, item)
	h.events.Drain()
	return *item
}

func foodNames(items []domain.ShelfItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.FoodName
	}
	return out
}

func TestNewController_RequiresOwner(t *testing.T) {
	_, err := shelf.NewController("  ", query.NewClient(store.NewExecutor(store.New())), nil)
	assert.ErrorIs(t, err, domain.ErrMissingOwner)
}

func TestNewController_StartsUninitialized(t *testing.T) {
	ctrl, err := shelf.NewController(testOwner, query.NewClient(store.NewExecutor(store.New())), nil)
	require.NoError(t, err)

	assert.Equal(t, shelf.States{Containers: shelf.StateUninitialized, ShelfItems: shelf.StateUninitialized}, ctrl.State())
	assert.NotNil(t, ctrl.Containers())
	assert.Empty(t, ctrl.ShelfItems())
}

func TestAddContainer_RoundTrip(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	weight := 250.0
	created, err := h.ctrl.AddContainer(ctx, shelf.ContainerInput{Name: "  Pantry ", EmptyWeightGrams: &weight})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Pantry", created.Name)
	assert.Equal(t, testOwner, created.OwnerID)

	events := h.events.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, feedback.KindSuccess, events[0].Kind)
	assert.Equal(t, `"Pantry" container added!`, events[0].Message)

	// A fresh session sees the same record
	other, err := shelf.NewController(testOwner, h.client, nil)
	require.NoError(t, err)
	require.NoError(t, other.LoadAll(ctx))

	containers := other.Containers()
	require.Len(t, containers, 1)
	assert.Equal(t, created.ID, containers[0].ID)
	assert.Equal(t, "Pantry", containers[0].Name)
	require.NotNil(t, containers[0].EmptyWeightGrams)
	assert.Equal(t, 250.0, *containers[0].EmptyWeightGrams)
	assert.False(t, containers[0].CreatedAt.IsZero())
}

func TestAddContainer_ScaleCalibrated(t *testing.T) {
	h := newHarness(t)

	created, err := h.ctrl.AddContainer(context.Background(), shelf.ContainerInput{Name: "Jar", UseScale: true})
	require.NoError(t, err)
	assert.Nil(t, created.EmptyWeightGrams)
	assert.True(t, created.UsesScale())
}

func TestAddContainer_InvalidInputPerformsNoIO(t *testing.T) {
	weight := 10.0
	negative := -1.0

	tests := []struct {
		name  string
		input shelf.ContainerInput
		field string
	}{
		{"blank name", shelf.ContainerInput{Name: "   ", EmptyWeightGrams: &weight}, shelf.FieldKeyName},
		{"name too long", shelf.ContainerInput{Name: strings.Repeat("a", 51), EmptyWeightGrams: &weight}, shelf.FieldKeyName},
		{"weight and scale", shelf.ContainerInput{Name: "Jar", EmptyWeightGrams: &weight, UseScale: true}, shelf.FieldKeyEmptyWeight},
		{"neither weight nor scale", shelf.ContainerInput{Name: "Jar"}, shelf.FieldKeyEmptyWeight},
		{"negative weight", shelf.ContainerInput{Name: "Jar", EmptyWeightGrams: &negative}, shelf.FieldKeyEmptyWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			before := h.store.Calls()

			created, err := h.ctrl.AddContainer(context.Background(), tt.input)

			assert.Nil(t, created)
			var verr *shelf.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, before, h.store.Calls())
			assert.Zero(t, h.events.Len())
		})
	}
}

func TestAddContainer_NameLengthCountsComposedCharacters(t *testing.T) {
	h := newHarness(t)

	// 50 decomposed e-acute sequences are 100 code points before NFC
	name := strings.Repeat("e\u0301", 50)
	created, err := h.ctrl.AddContainer(context.Background(), shelf.ContainerInput{Name: name, UseScale: true})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("\u00e9", 50), created.Name)
}

func TestAddContainer_InsertFailure(t *testing.T) {
	h := newHarness(t)
	h.exec.setFault(failOn(query.OpInsert, domain.CollectionContainers))

	created, err := h.ctrl.AddContainer(context.Background(), shelf.ContainerInput{Name: "Pantry", UseScale: true})

	assert.Nil(t, created)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBackend)
	var qerr *query.Error
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, query.OpInsert, qerr.Op)

	events := h.events.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, feedback.KindError, events[0].Kind)
	assert.Equal(t, shelf.MsgAddContainerFailed, events[0].Message)
	assert.Empty(t, h.ctrl.Containers())
	assert.Equal(t, shelf.StateReady, h.ctrl.State().Containers)
}

func TestShelfItem_CalorieScenario(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	pantry := h.addContainer(t, "Pantry")

	rice, err := h.ctrl.AddShelfItem(ctx, shelf.ShelfItemInput{
		ContainerID:        pantry.ID,
		FoodName:           "Rice",
		CaloriesPerGram:    3.6,
		CurrentWeightGrams: 400,
		MaxWeightGrams:     1000,
	})
	require.NoError(t, err)

	events := h.events.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, `"Rice" added to shelf!`, events[0].Message)

	items := h.ctrl.ShelfItems()
	require.Len(t, items, 1)
	assert.InDelta(t, 1440.0, items[0].CaloriesRemaining(), 1e-9)
	assert.Equal(t, "Pantry", items[0].ContainerName())
	assert.Equal(t, domain.DefaultDeviceID, items[0].DeviceID)

	err = h.ctrl.EditShelfItem(ctx, rice.ID, shelf.ShelfItemEdit{
		FoodName:           "Rice",
		CaloriesPerGram:    3.6,
		CurrentWeightGrams: 200,
		MaxWeightGrams:     1000,
	})
	require.NoError(t, err)

	events = h.events.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, feedback.KindSuccess, events[0].Kind)
	assert.Equal(t, `"Rice" updated successfully!`, events[0].Message)

	items = h.ctrl.ShelfItems()
	require.Len(t, items, 1)
	assert.InDelta(t, 720.0, items[0].CaloriesRemaining(), 1e-9)
	assert.Equal(t, pantry.ID, items[0].ContainerID)
}

func TestAddShelfItem_CurrentAboveMaxRejected(t *testing.T) {
	h := newHarness(t)
	pantry := h.addContainer(t, "Pantry")
	before := h.store.Calls()

	_, err := h.ctrl.AddShelfItem(context.Background(), shelf.ShelfItemInput{
		ContainerID:        pantry.ID,
		FoodName:           "Flour",
		CaloriesPerGram:    3.6,
		CurrentWeightGrams: 900,
		MaxWeightGrams:     500,
	})

	var verr *shelf.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, shelf.ErrMsgCurrentExceedsMax, verr.Fields[shelf.FieldKeyWeight])
	assert.Equal(t, before, h.store.Calls())
	assert.Zero(t, h.events.Len())
	assert.Empty(t, h.ctrl.ShelfItems())
}

func TestAddShelfItem_UnknownContainer(t *testing.T) {
	h := newHarness(t)
	before := h.store.Calls()

	_, err := h.ctrl.AddShelfItem(context.Background(), shelf.ShelfItemInput{
		ContainerID:        "missing",
		FoodName:           "Rice",
		CaloriesPerGram:    3.6,
		CurrentWeightGrams: 1,
		MaxWeightGrams:     2,
	})

	var verr *shelf.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, shelf.ErrMsgSelectContainer, verr.Fields[shelf.FieldKeyContainer])
	assert.Equal(t, before, h.store.Calls())
}

func TestAddShelfItem_KeepsSuppliedDeviceID(t *testing.T) {
	h := newHarness(t)
	pantry := h.addContainer(t, "Pantry")

	item, err := h.ctrl.AddShelfItem(context.Background(), shelf.ShelfItemInput{
		ContainerID:        pantry.ID,
		FoodName:           "Oats",
		CaloriesPerGram:    3.9,
		CurrentWeightGrams: 100,
		MaxWeightGrams:     500,
		DeviceID:           "ShelfESP32_7",
	})
	require.NoError(t, err)
	assert.Equal(t, "ShelfESP32_7", item.DeviceID)
}

func TestEditShelfItem_UnknownItem(t *testing.T) {
	h := newHarness(t)
	before := h.store.Calls()

	err := h.ctrl.EditShelfItem(context.Background(), "missing", shelf.ShelfItemEdit{
		FoodName:           "Rice",
		CaloriesPerGram:    1,
		CurrentWeightGrams: 1,
		MaxWeightGrams:     2,
	})

	var verr *shelf.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, shelf.FieldKeyItem)
	assert.Equal(t, before, h.store.Calls())
}

func TestEditShelfItem_RemovedElsewhere(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	pantry := h.addContainer(t, "Pantry")
	rice := h.addItem(t, pantry.ID, "Rice", 3.6, 400, 1000)

	// Another session for the same owner deletes the item
	other, err := shelf.NewController(testOwner, h.client, nil)
	require.NoError(t, err)
	require.NoError(t, other.LoadAll(ctx))
	require.NoError(t, other.DeleteShelfItem(ctx, rice.ID))

	err = h.ctrl.EditShelfItem(ctx, rice.ID, shelf.ShelfItemEdit{
		FoodName:           "Rice",
		CaloriesPerGram:    3.6,
		CurrentWeightGrams: 200,
		MaxWeightGrams:     1000,
	})
	assert.ErrorIs(t, err, domain.ErrShelfItemNotFound)

	events := h.events.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, feedback.KindError, events[0].Kind)
	assert.Empty(t, h.ctrl.ShelfItems())
}

func TestDeleteShelfItem_Idempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	pantry := h.addContainer(t, "Pantry")
	rice := h.addItem(t, pantry.ID, "Rice", 3.6, 400, 1000)

	require.NoError(t, h.ctrl.DeleteShelfItem(ctx, rice.ID))
	events := h.events.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, `"Rice" removed from shelf`, events[0].Message)
	assert.Empty(t, h.ctrl.ShelfItems())

	require.NoError(t, h.ctrl.DeleteShelfItem(ctx, rice.ID))
	events = h.events.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, feedback.KindSuccess, events[0].Kind)
}

func TestDeleteContainer_RemovesAllItems(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		t.Run(fmt.Sprintf("%d items", n), func(t *testing.T) {
			h := newHarness(t)
			ctx := context.Background()
			target := h.addContainer(t, "Pantry")
			keep := h.addContainer(t, "Fridge")
			for i := 0; i < n; i++ {
				h.addItem(t, target.ID, fmt.Sprintf("Food %d", i), 1, 1, 2)
			}
			h.addItem(t, keep.ID, "Milk", 0.6, 500, 1000)

			require.NoError(t, h.ctrl.DeleteContainer(ctx, target.ID))

			containers := h.ctrl.Containers()
			require.Len(t, containers, 1)
			assert.Equal(t, keep.ID, containers[0].ID)
			assert.Empty(t, h.ctrl.ItemsByContainer(target.ID))
			assert.Equal(t, []string{"Milk"}, foodNames(h.ctrl.ShelfItems()))

			events := h.events.Drain()
			require.Len(t, events, 1)
			assert.Equal(t, shelf.MsgContainerDeleted, events[0].Message)

			remaining, err := h.store.SelectWhere(domain.CollectionShelfItems, store.FieldEquals(domain.FieldContainerID, target.ID))
			require.NoError(t, err)
			assert.Empty(t, remaining)
		})
	}
}

func TestDeleteContainer_TwoContainerScenario(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	pantry := h.addContainer(t, "Pantry")
	fridge := h.addContainer(t, "Fridge")
	h.addItem(t, pantry.ID, "Rice", 3.6, 400, 1000)
	h.addItem(t, pantry.ID, "Beans", 3.4, 300, 800)
	h.addItem(t, fridge.ID, "Milk", 0.6, 900, 1000)

	assert.Equal(t, []string{"Beans", "Rice"}, foodNames(h.ctrl.ItemsByContainer(pantry.ID)))

	require.NoError(t, h.ctrl.DeleteContainer(ctx, pantry.ID))

	containers := h.ctrl.Containers()
	require.Len(t, containers, 1)
	assert.Equal(t, "Fridge", containers[0].Name)
	assert.Equal(t, []string{"Milk"}, foodNames(h.ctrl.ShelfItems()))
	assert.Equal(t, "Fridge", h.ctrl.ShelfItems()[0].ContainerName())
	assert.Equal(t, shelf.States{Containers: shelf.StateReady, ShelfItems: shelf.StateReady}, h.ctrl.State())
}

func TestDeleteContainer_PartialFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	pantry := h.addContainer(t, "Pantry")
	rice := h.addItem(t, pantry.ID, "Rice", 3.6, 400, 1000)
	h.addItem(t, pantry.ID, "Beans", 3.4, 300, 800)

	h.exec.setFault(func(op, collection string, filters []query.Filter) error {
		if op != query.OpDelete || collection != domain.CollectionShelfItems {
			return nil
		}
		for _, f := range filters {
			if f.Field == domain.FieldID && f.Value == rice.ID {
				return errBackend
			}
		}
		return nil
	})

	err := h.ctrl.DeleteContainer(ctx, pantry.ID)

	var cerr *shelf.CascadeError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, domain.ErrCascadeIncomplete)
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, 1, cerr.ItemsDeleted)
	assert.Equal(t, 1, cerr.ItemsFailed)
	assert.True(t, cerr.ContainerDeleted)

	events := h.events.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, feedback.KindError, events[0].Kind)
	assert.Equal(t, shelf.MsgDeleteContainerFailed, events[0].Message)

	// Projections show what the backend holds
	assert.Empty(t, h.ctrl.Containers())
	items := h.ctrl.ShelfItems()
	require.Len(t, items, 1)
	assert.Equal(t, rice.ID, items[0].ID)
	assert.Equal(t, domain.UnknownContainerName, items[0].ContainerName())
}

func TestDeleteContainer_ListFailureStillDeletesContainer(t *testing.T) {
	h := newHarness(t)
	pantry := h.addContainer(t, "Pantry")

	calls := 0
	h.exec.setFault(func(op, collection string, _ []query.Filter) error {
		if op == query.OpSelect && collection == domain.CollectionShelfItems {
			calls++
			if calls == 1 {
				return errBackend
			}
		}
		return nil
	})

	err := h.ctrl.DeleteContainer(context.Background(), pantry.ID)

	var cerr *shelf.CascadeError
	require.ErrorAs(t, err, &cerr)
	assert.Zero(t, cerr.ItemsDeleted)
	assert.True(t, cerr.ContainerDeleted)
	assert.Empty(t, h.ctrl.Containers())
}

func TestWrite_RefetchFailureWarns(t *testing.T) {
	h := newHarness(t)
	pantry := h.addContainer(t, "Pantry")
	h.addItem(t, pantry.ID, "Rice", 3.6, 400, 1000)

	h.exec.setFault(failOn(query.OpSelect, domain.CollectionShelfItems))

	_, err := h.ctrl.AddShelfItem(context.Background(), shelf.ShelfItemInput{
		ContainerID:        pantry.ID,
		FoodName:           "Beans",
		CaloriesPerGram:    3.4,
		CurrentWeightGrams: 300,
		MaxWeightGrams:     800,
	})
	require.NoError(t, err)

	events := h.events.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, feedback.KindWarning, events[0].Kind)
	assert.Equal(t, `"Beans" added to shelf!`+shelf.MsgRefreshFailedSuffix, events[0].Message)

	// Last known-good rows are kept
	assert.Equal(t, shelf.StateError, h.ctrl.State().ShelfItems)
	assert.Equal(t, []string{"Rice"}, foodNames(h.ctrl.ShelfItems()))

	h.exec.setFault(nil)
	require.NoError(t, h.ctrl.LoadAll(context.Background()))
	assert.Equal(t, []string{"Beans", "Rice"}, foodNames(h.ctrl.ShelfItems()))
}

func TestLoadAll_FailureClearsProjection(t *testing.T) {
	h := newHarness(t)
	h.addContainer(t, "Pantry")
	h.exec.setFault(failOn(query.OpSelect, domain.CollectionContainers))

	err := h.ctrl.LoadAll(context.Background())

	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, shelf.States{Containers: shelf.StateError, ShelfItems: shelf.StateReady}, h.ctrl.State())
	assert.Empty(t, h.ctrl.Containers())
	assert.Zero(t, h.events.Len())
}

func TestItemsByContainer(t *testing.T) {
	h := newHarness(t)
	pantry := h.addContainer(t, "Pantry")
	fridge := h.addContainer(t, "Fridge")
	h.addItem(t, pantry.ID, "Rice", 1, 1, 2)
	h.addItem(t, fridge.ID, "Milk", 1, 1, 2)
	h.addItem(t, pantry.ID, "Beans", 1, 1, 2)

	assert.Equal(t, []string{"Beans", "Rice"}, foodNames(h.ctrl.ItemsByContainer(pantry.ID)))
	assert.Equal(t, []string{"Milk"}, foodNames(h.ctrl.ItemsByContainer(fridge.ID)))

	none := h.ctrl.ItemsByContainer("missing")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestOwnerIsolation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	pantry := h.addContainer(t, "Pantry")
	h.addItem(t, pantry.ID, "Rice", 3.6, 400, 1000)

	other, err := shelf.NewController("owner-2", h.client, nil)
	require.NoError(t, err)
	require.NoError(t, other.LoadAll(ctx))
	assert.Empty(t, other.Containers())
	assert.Empty(t, other.ShelfItems())

	// Deletes from another owner do not reach this owner's rows
	require.NoError(t, other.DeleteContainer(ctx, pantry.ID))
	require.NoError(t, h.ctrl.LoadAll(ctx))
	assert.Len(t, h.ctrl.Containers(), 1)
	assert.Len(t, h.ctrl.ShelfItems(), 1)
}

func TestSummary(t *testing.T) {
	h := newHarness(t)
	pantry := h.addContainer(t, "Pantry")
	fridge := h.addContainer(t, "Fridge")
	h.addItem(t, pantry.ID, "Rice", 3.6, 400, 1000)
	h.addItem(t, pantry.ID, "Beans", 2, 100, 800)
	h.addItem(t, fridge.ID, "Milk", 0.5, 1000, 1000)

	sum := h.ctrl.Summary()

	assert.Equal(t, 2, sum.ContainerCount)
	assert.Equal(t, 3, sum.ItemCount)
	assert.InDelta(t, 1440.0+200+500, sum.CaloriesRemaining, 1e-9)
	require.Len(t, sum.Containers, 2)
	assert.Equal(t, "Fridge", sum.Containers[0].Name)
	assert.Equal(t, 1, sum.Containers[0].ItemCount)
	assert.Equal(t, "Pantry", sum.Containers[1].Name)
	assert.Equal(t, 2, sum.Containers[1].ItemCount)
	assert.InDelta(t, 1640.0, sum.Containers[1].CaloriesRemaining, 1e-9)
}
