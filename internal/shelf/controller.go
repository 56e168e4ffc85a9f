// Package shelf keeps a session's view of containers and shelf items
// consistent with the backend. Every write is followed by a refetch of the
// affected projections; nothing is applied optimistically.
package shelf

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/osse101/SmartShelf_Go/internal/domain"
	"github.com/osse101/SmartShelf_Go/internal/feedback"
	"github.com/osse101/SmartShelf_Go/internal/logger"
	"github.com/osse101/SmartShelf_Go/internal/metrics"
	"github.com/osse101/SmartShelf_Go/internal/query"
)

// Controller owns the projections for one signed-in owner
type Controller struct {
	ownerID   string
	client    *query.Client
	notifier  feedback.Notifier
	validator *Validator

	mu         sync.RWMutex
	containers projection[domain.Container]
	items      projection[domain.ShelfItem]
}

// Option configures a Controller
type Option func(*Controller)

// WithValidator replaces the default validator
func WithValidator(v *Validator) Option {
	return func(c *Controller) { c.validator = v }
}

// NewController creates a controller for ownerID. The owner id is opaque and
// is never checked beyond being non-empty.
func NewController(ownerID string, client *query.Client, notifier feedback.Notifier, opts ...Option) (*Controller, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, domain.ErrMissingOwner
	}
	if notifier == nil {
		notifier = feedback.Discard{}
	}
	c := &Controller{
		ownerID:    ownerID,
		client:     client,
		notifier:   notifier,
		validator:  NewValidator(domain.DefaultDeviceID),
		containers: newProjection[domain.Container](),
		items:      newProjection[domain.ShelfItem](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// OwnerID returns the session owner
func (c *Controller) OwnerID() string {
	return c.ownerID
}

// ---- Reads ----

// LoadAll fetches both collections. A failed fetch leaves that projection
// empty in the error state; the error is returned for the caller to log.
func (c *Controller) LoadAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	cErr := c.refreshContainers(ctx, true)
	iErr := c.refreshItems(ctx, true)
	err := errors.Join(cErr, iErr)
	if err != nil {
		log.Error("Failed to load shelf", "owner_id", c.ownerID, "error", err)
		c.record(OpLoadAll, OutcomeError)
		return err
	}

	c.record(OpLoadAll, OutcomeSuccess)
	log.Debug("Shelf loaded", "owner_id", c.ownerID)
	return nil
}

// Containers returns a copy of the containers projection, most recently
// updated first
func (c *Controller) Containers() []domain.Container {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.containers.snapshot()
}

// ShelfItems returns a copy of the shelf items projection, most recently
// updated first
func (c *Controller) ShelfItems() []domain.ShelfItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items.snapshot()
}

// State reports the lifecycle state of both projections
func (c *Controller) State() States {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return States{Containers: c.containers.state, ShelfItems: c.items.state}
}

// ItemsByContainer returns the shelf items in containerID, in projection
// order. It performs no I/O.
func (c *Controller) ItemsByContainer(containerID string) []domain.ShelfItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []domain.ShelfItem{}
	for _, item := range c.items.rows {
		if item.ContainerID == containerID {
			out = append(out, item)
		}
	}
	return out
}

func (c *Controller) findContainer(id string) (domain.Container, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ct := range c.containers.rows {
		if ct.ID == id {
			return ct, true
		}
	}
	return domain.Container{}, false
}

func (c *Controller) findItem(id string) (domain.ShelfItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items.rows {
		if it.ID == id {
			return it, true
		}
	}
	return domain.ShelfItem{}, false
}

// ---- Writes ----

// AddContainer validates and inserts a container, then refetches containers
func (c *Controller) AddContainer(ctx context.Context, in ContainerInput) (*domain.Container, error) {
	log := logger.FromContext(ctx)

	in, err := c.validator.Container(in)
	if err != nil {
		log.Debug("Add container rejected", "owner_id", c.ownerID, "error", err)
		c.record(OpAddContainer, OutcomeInvalid)
		return nil, err
	}

	rec := query.Record{
		domain.FieldOwnerID:          c.ownerID,
		domain.FieldName:             in.Name,
		domain.FieldEmptyWeightGrams: nil,
	}
	if in.EmptyWeightGrams != nil {
		rec[domain.FieldEmptyWeightGrams] = *in.EmptyWeightGrams
	}

	rows, err := c.client.From(domain.CollectionContainers).Insert(rec).Execute(ctx)
	if err != nil {
		return nil, c.fail(ctx, OpAddContainer, MsgAddContainerFailed, fmt.Errorf("failed to add container: %w", err))
	}
	created, err := decodeFirst[domain.Container](rows)
	if err != nil {
		log.Warn("Inserted container could not be decoded", "error", err)
	}

	refreshErr := c.refreshContainers(ctx, false)
	c.succeed(ctx, OpAddContainer, fmt.Sprintf(MsgContainerAddedFormat, in.Name), refreshErr)
	return created, nil
}

// AddShelfItem validates and inserts a shelf item, then refetches items.
// The container must be in the containers projection; a stale projection
// makes this check best-effort.
func (c *Controller) AddShelfItem(ctx context.Context, in ShelfItemInput) (*domain.ShelfItem, error) {
	log := logger.FromContext(ctx)

	in, err := c.validator.ShelfItem(in)
	if in.ContainerID != "" {
		if _, ok := c.findContainer(in.ContainerID); !ok {
			err = withField(err, FieldKeyContainer, ErrMsgSelectContainer)
		}
	}
	if err != nil {
		log.Debug("Add shelf item rejected", "owner_id", c.ownerID, "error", err)
		c.record(OpAddShelfItem, OutcomeInvalid)
		return nil, err
	}

	rows, err := c.client.From(domain.CollectionShelfItems).Insert(query.Record{
		domain.FieldOwnerID:            c.ownerID,
		domain.FieldContainerID:        in.ContainerID,
		domain.FieldFoodName:           in.FoodName,
		domain.FieldCaloriesPerGram:    in.CaloriesPerGram,
		domain.FieldCurrentWeightGrams: in.CurrentWeightGrams,
		domain.FieldMaxWeightGrams:     in.MaxWeightGrams,
		domain.FieldDeviceID:           in.DeviceID,
	}).Execute(ctx)
	if err != nil {
		return nil, c.fail(ctx, OpAddShelfItem, MsgAddItemFailed, fmt.Errorf("failed to add shelf item: %w", err))
	}
	created, err := decodeFirst[domain.ShelfItem](rows)
	if err != nil {
		log.Warn("Inserted shelf item could not be decoded", "error", err)
	}

	refreshErr := c.refreshItems(ctx, false)
	c.succeed(ctx, OpAddShelfItem, fmt.Sprintf(MsgItemAddedFormat, in.FoodName), refreshErr)
	return created, nil
}

// EditShelfItem validates and applies an update by id, then refetches items.
// The item keeps its container.
func (c *Controller) EditShelfItem(ctx context.Context, itemID string, in ShelfItemEdit) error {
	log := logger.FromContext(ctx)

	in, err := c.validator.ShelfItemEdit(in)
	if _, ok := c.findItem(itemID); !ok {
		err = withField(err, FieldKeyItem, ErrMsgItemNotOnShelf)
	}
	if err != nil {
		log.Debug("Edit shelf item rejected", "owner_id", c.ownerID, "item_id", itemID, "error", err)
		c.record(OpEditShelfItem, OutcomeInvalid)
		return err
	}

	n, err := c.client.From(domain.CollectionShelfItems).Update(query.Record{
		domain.FieldFoodName:           in.FoodName,
		domain.FieldCaloriesPerGram:    in.CaloriesPerGram,
		domain.FieldCurrentWeightGrams: in.CurrentWeightGrams,
		domain.FieldMaxWeightGrams:     in.MaxWeightGrams,
	}).Eq(domain.FieldID, itemID).Eq(domain.FieldOwnerID, c.ownerID).Execute(ctx)
	if err != nil {
		return c.fail(ctx, OpEditShelfItem, MsgUpdateItemFailed, fmt.Errorf("failed to update shelf item: %w", err))
	}
	if n == 0 {
		// Removed elsewhere since the last fetch; bring the projection up to date
		_ = c.refreshItems(ctx, false)
		return c.fail(ctx, OpEditShelfItem, MsgUpdateItemFailed, fmt.Errorf("%w: %s", domain.ErrShelfItemNotFound, itemID))
	}

	refreshErr := c.refreshItems(ctx, false)
	c.succeed(ctx, OpEditShelfItem, fmt.Sprintf(MsgItemUpdatedFormat, in.FoodName), refreshErr)
	return nil
}

// DeleteShelfItem removes an item by id and refetches items. Deleting an id
// that does not exist succeeds.
func (c *Controller) DeleteShelfItem(ctx context.Context, itemID string) error {
	msg := MsgItemDeleted
	if item, ok := c.findItem(itemID); ok {
		msg = fmt.Sprintf(MsgItemDeletedFormat, item.FoodName)
	}

	_, err := c.client.From(domain.CollectionShelfItems).Delete().
		Eq(domain.FieldID, itemID).
		Eq(domain.FieldOwnerID, c.ownerID).
		Execute(ctx)
	if err != nil {
		return c.fail(ctx, OpDeleteShelfItem, MsgDeleteItemFailed, fmt.Errorf("failed to delete shelf item: %w", err))
	}

	refreshErr := c.refreshItems(ctx, false)
	c.succeed(ctx, OpDeleteShelfItem, msg, refreshErr)
	return nil
}

// DeleteContainer removes a container's items one by one and then the
// container. The container delete is attempted even if some item deletes
// fail, and both projections are refetched whatever the outcome so they show
// what the backend holds. An incomplete cascade returns *CascadeError.
func (c *Controller) DeleteContainer(ctx context.Context, containerID string) error {
	log := logger.FromContext(ctx)
	cascade := &CascadeError{ContainerID: containerID}

	ids, err := c.childItemIDs(ctx, containerID)
	if err != nil {
		cascade.ItemsErr = err
	}
	var itemErrs []error
	for _, id := range ids {
		_, err := c.client.From(domain.CollectionShelfItems).Delete().
			Eq(domain.FieldID, id).
			Eq(domain.FieldOwnerID, c.ownerID).
			Execute(ctx)
		if err != nil {
			cascade.ItemsFailed++
			itemErrs = append(itemErrs, fmt.Errorf("item %s: %w", id, err))
			continue
		}
		cascade.ItemsDeleted++
	}
	if len(itemErrs) > 0 {
		cascade.ItemsErr = errors.Join(append([]error{cascade.ItemsErr}, itemErrs...)...)
	}

	_, err = c.client.From(domain.CollectionContainers).Delete().
		Eq(domain.FieldID, containerID).
		Eq(domain.FieldOwnerID, c.ownerID).
		Execute(ctx)
	cascade.ContainerErr = err
	cascade.ContainerDeleted = err == nil

	cErr := c.refreshContainers(ctx, false)
	iErr := c.refreshItems(ctx, false)

	if cascade.ItemsErr != nil || cascade.ContainerErr != nil {
		log.Error("Container delete incomplete",
			"owner_id", c.ownerID,
			"container_id", containerID,
			"items_deleted", cascade.ItemsDeleted,
			"items_failed", cascade.ItemsFailed,
			"error", cascade)
		c.notifier.Notify(MsgDeleteContainerFailed, feedback.KindError)
		c.record(OpDeleteContainer, OutcomePartial)
		return cascade
	}

	log.Info("Container deleted", "owner_id", c.ownerID, "container_id", containerID, "items_deleted", cascade.ItemsDeleted)
	c.succeed(ctx, OpDeleteContainer, MsgContainerDeleted, errors.Join(cErr, iErr))
	return nil
}

// childItemIDs reads the ids of a container's items from the backend rather
// than the projection, which may be stale.
func (c *Controller) childItemIDs(ctx context.Context, containerID string) ([]string, error) {
	rows, err := c.client.From(domain.CollectionShelfItems).
		Select(domain.FieldID).
		Eq(domain.FieldContainerID, containerID).
		Eq(domain.FieldOwnerID, c.ownerID).
		Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list container items: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if id := row.String(domain.FieldID); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// SubmitFeedback validates and stores a note about the app from the owner.
// Feedback is not part of the shelf, so no projection is refetched.
func (c *Controller) SubmitFeedback(ctx context.Context, in FeedbackInput) (*domain.FeedbackComment, error) {
	log := logger.FromContext(ctx)

	in, err := c.validator.Feedback(in)
	if err != nil {
		log.Debug("Feedback rejected", "owner_id", c.ownerID, "error", err)
		c.record(OpSubmitFeedback, OutcomeInvalid)
		return nil, err
	}

	rows, err := c.client.From(domain.CollectionFeedbackComments).Insert(query.Record{
		domain.FieldUserID:       c.ownerID,
		domain.FieldFeedbackType: in.FeedbackType,
		domain.FieldTitle:        in.Title,
		domain.FieldMessage:      in.Message,
		domain.FieldEmail:        in.Email,
	}).Execute(ctx)
	if err != nil {
		return nil, c.fail(ctx, OpSubmitFeedback, MsgFeedbackFailed, fmt.Errorf("failed to submit feedback: %w", err))
	}
	created, err := decodeFirst[domain.FeedbackComment](rows)
	if err != nil {
		log.Warn("Inserted feedback could not be decoded", "error", err)
	}

	log.Info("Feedback submitted", "owner_id", c.ownerID, "feedback_type", in.FeedbackType)
	c.succeed(ctx, OpSubmitFeedback, MsgFeedbackSent, nil)
	return created, nil
}

// ---- Refetch ----

func (c *Controller) refreshContainers(ctx context.Context, clearOnError bool) error {
	c.mu.Lock()
	c.containers.begin()
	c.mu.Unlock()

	rows, err := c.client.From(domain.CollectionContainers).
		Select().
		Eq(domain.FieldOwnerID, c.ownerID).
		Order(domain.FieldLastUpdatedAt, query.Descending).
		Execute(ctx)

	var decoded []domain.Container
	if err == nil {
		decoded, err = query.Decode[domain.Container](rows)
	}
	if err != nil {
		err = fmt.Errorf("failed to fetch containers: %w", err)
	}

	c.mu.Lock()
	c.containers.settle(decoded, err, clearOnError)
	c.mu.Unlock()
	return err
}

func (c *Controller) refreshItems(ctx context.Context, clearOnError bool) error {
	c.mu.Lock()
	c.items.begin()
	c.mu.Unlock()

	rows, err := c.client.From(domain.CollectionShelfItems).
		Select().
		Embed(domain.CollectionContainers, domain.FieldContainerID, domain.FieldName).
		Eq(domain.FieldOwnerID, c.ownerID).
		Order(domain.FieldLastUpdatedAt, query.Descending).
		Execute(ctx)

	var decoded []domain.ShelfItem
	if err == nil {
		decoded, err = query.Decode[domain.ShelfItem](rows)
	}
	if err != nil {
		err = fmt.Errorf("failed to fetch shelf items: %w", err)
	}

	c.mu.Lock()
	c.items.settle(decoded, err, clearOnError)
	c.mu.Unlock()
	return err
}

// ---- Outcome reporting ----

// fail reports a write the backend rejected. Projections are left as they
// were, matching the last successful fetch.
func (c *Controller) fail(ctx context.Context, op, message string, err error) error {
	logger.FromContext(ctx).Error("Shelf operation failed", "operation", op, "owner_id", c.ownerID, "error", err)
	c.notifier.Notify(message, feedback.KindError)
	c.record(op, OutcomeError)
	return err
}

// succeed reports a completed write. If the refetch afterwards failed the
// write still stands and the user is warned that the view may be stale.
func (c *Controller) succeed(ctx context.Context, op, message string, refreshErr error) {
	if refreshErr != nil {
		logger.FromContext(ctx).Warn("Refetch after write failed", "operation", op, "owner_id", c.ownerID, "error", refreshErr)
		c.notifier.Notify(message+MsgRefreshFailedSuffix, feedback.KindWarning)
		c.record(op, OutcomeStale)
		return
	}
	c.notifier.Notify(message, feedback.KindSuccess)
	c.record(op, OutcomeSuccess)
}

func (c *Controller) record(op, outcome string) {
	metrics.ShelfOperationsTotal.WithLabelValues(op, outcome).Inc()
}

// ---- Helpers ----

func withField(err error, key, msg string) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		if _, ok := verr.Fields[key]; !ok {
			verr.Fields[key] = msg
		}
		return verr
	}
	return &ValidationError{Fields: map[string]string{key: msg}}
}

func decodeFirst[T any](rows []query.Record) (*T, error) {
	if len(rows) == 0 {
		return nil, errors.New("backend returned no rows")
	}
	decoded, err := query.Decode[T](rows[:1])
	if err != nil {
		return nil, err
	}
	return &decoded[0], nil
}
