package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SmartShelf_Go/internal/domain"
	"github.com/osse101/SmartShelf_Go/internal/logger"
	"github.com/osse101/SmartShelf_Go/internal/session"
	"github.com/osse101/SmartShelf_Go/internal/shelf"
)

// SessionProvider opens and closes per-owner shelf sessions
type SessionProvider interface {
	// Attach returns the owner's session and reports whether this call
	// opened it, in which case the shelf was loaded just now
	Attach(ctx context.Context, ownerID string) (*session.Session, bool, error)
	SignOut(ownerID string) bool
}

// ShelfHandler handles container and shelf item endpoints
type ShelfHandler struct {
	sessions SessionProvider
}

// NewShelfHandler creates a new shelf handler
func NewShelfHandler(sessions SessionProvider) *ShelfHandler {
	return &ShelfHandler{sessions: sessions}
}

// AddContainerRequest is the request body for adding a container. The max
// tags only bound raw input; the shelf rules apply the real limits.
type AddContainerRequest struct {
	Name             string   `json:"name" validate:"max=512"`
	EmptyWeightGrams *float64 `json:"empty_weight_grams"`
	UseScale         bool     `json:"use_scale"`
}

// AddShelfItemRequest is the request body for adding a shelf item.
// Numbers are pointers so a missing value is told apart from zero.
type AddShelfItemRequest struct {
	ContainerID        string   `json:"container_id" validate:"max=512"`
	FoodName           string   `json:"food_name" validate:"max=512"`
	CaloriesPerGram    *float64 `json:"calories_per_gram" validate:"required"`
	CurrentWeightGrams *float64 `json:"current_weight_grams" validate:"required"`
	MaxWeightGrams     *float64 `json:"max_weight_grams" validate:"required"`
	DeviceID           string   `json:"device_id" validate:"max=512"`
}

// EditShelfItemRequest is the request body for editing a shelf item
type EditShelfItemRequest struct {
	FoodName           string   `json:"food_name" validate:"max=512"`
	CaloriesPerGram    *float64 `json:"calories_per_gram" validate:"required"`
	CurrentWeightGrams *float64 `json:"current_weight_grams" validate:"required"`
	MaxWeightGrams     *float64 `json:"max_weight_grams" validate:"required"`
}

// SubmitFeedbackRequest is the request body for sending feedback about the
// app. A blank type means general.
type SubmitFeedbackRequest struct {
	FeedbackType string `json:"feedback_type" validate:"max=32"`
	Title        string `json:"title" validate:"max=512"`
	Message      string `json:"message" validate:"max=10000"`
	Email        string `json:"email" validate:"max=512"`
}

// shelfOp is one request's work against the caller's controller. loaded is
// true when opening the session for this request already loaded the shelf.
type shelfOp func(ctx context.Context, c *shelf.Controller, loaded bool) (interface{}, error)

// session resolves the caller's session. If ok is false, the response has
// already been written.
func (h *ShelfHandler) session(w http.ResponseWriter, r *http.Request) (sess *session.Session, loaded, ok bool) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return nil, false, false
	}

	ctx := logger.WithOwnerID(r.Context(), ownerID)
	log := logger.FromContext(ctx)

	sess, opened, err := h.sessions.Attach(ctx, ownerID)
	if sess == nil {
		log.Error("Failed to open session", "error", err)
		status, msg := mapShelfErrorToUserMessage(err)
		respondError(w, status, msg)
		return nil, false, false
	}
	if err != nil {
		// The session is open with its projections in the error state
		log.Warn("Session opened without a shelf", "error", err)
	}
	return sess, opened && err == nil, true
}

// run executes op against the caller's controller and writes the result
// together with the feedback it produced
func (h *ShelfHandler) run(w http.ResponseWriter, r *http.Request, status int, op func(ctx context.Context, c *shelf.Controller) (interface{}, error)) {
	h.runLoaded(w, r, status, func(ctx context.Context, c *shelf.Controller, _ bool) (interface{}, error) {
		return op(ctx, c)
	})
}

func (h *ShelfHandler) runLoaded(w http.ResponseWriter, r *http.Request, status int, op shelfOp) {
	sess, loaded, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx := logger.WithOwnerID(r.Context(), sess.OwnerID)

	var data interface{}
	events, err := sess.Run(func(c *shelf.Controller) error {
		var opErr error
		data, opErr = op(ctx, c, loaded)
		return opErr
	})
	if err != nil {
		respondShelfError(w, err, events)
		return
	}

	respondJSON(w, status, ShelfResponse{
		Data:     data,
		State:    sess.Controller.State(),
		Feedback: events,
	})
}

// HandleLoadSession refetches the caller's shelf
// @Summary Load shelf
// @Description Opens the caller's session if needed and reloads containers and items
// @Tags session
// @Produce json
// @Param X-Owner-ID header string true "Owner id"
// @Success 200 {object} ShelfResponse
// @Failure 500 {object} ShelfErrorResponse
// @Router /api/v1/session/load [post]
func (h *ShelfHandler) HandleLoadSession(w http.ResponseWriter, r *http.Request) {
	h.runLoaded(w, r, http.StatusOK, func(ctx context.Context, c *shelf.Controller, loaded bool) (interface{}, error) {
		if !loaded {
			if err := c.LoadAll(ctx); err != nil {
				return nil, err
			}
		}
		return c.Summary(), nil
	})
}

// HandleSignOut discards the caller's session
// @Summary Sign out
// @Tags session
// @Produce json
// @Param X-Owner-ID header string true "Owner id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/session [delete]
func (h *ShelfHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}
	if !h.sessions.SignOut(ownerID) {
		respondError(w, http.StatusNotFound, ErrMsgNoSession)
		return
	}
	logger.FromContext(r.Context()).Info("Signed out", "owner_id", ownerID)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSignedOut})
}

// HandleListContainers returns the container projection
// @Summary List containers
// @Tags containers
// @Produce json
// @Param X-Owner-ID header string true "Owner id"
// @Success 200 {object} ShelfResponse
// @Router /api/v1/containers [get]
func (h *ShelfHandler) HandleListContainers(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, http.StatusOK, func(_ context.Context, c *shelf.Controller) (interface{}, error) {
		return c.Containers(), nil
	})
}

// HandleAddContainer creates a container
// @Summary Add container
// @Tags containers
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Owner id"
// @Param request body AddContainerRequest true "Container"
// @Success 201 {object} ShelfResponse
// @Failure 400 {object} ShelfErrorResponse
// @Failure 500 {object} ShelfErrorResponse
// @Router /api/v1/containers [post]
func (h *ShelfHandler) HandleAddContainer(w http.ResponseWriter, r *http.Request) {
	var req AddContainerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add container"); err != nil {
		return
	}

	h.run(w, r, http.StatusCreated, func(ctx context.Context, c *shelf.Controller) (interface{}, error) {
		return c.AddContainer(ctx, shelf.ContainerInput{
			Name:             req.Name,
			EmptyWeightGrams: req.EmptyWeightGrams,
			UseScale:         req.UseScale,
		})
	})
}

// HandleDeleteContainer removes a container and every item in it
// @Summary Delete container
// @Tags containers
// @Produce json
// @Param X-Owner-ID header string true "Owner id"
// @Param id path string true "Container id"
// @Success 200 {object} ShelfResponse
// @Failure 207 {object} ShelfErrorResponse
// @Failure 500 {object} ShelfErrorResponse
// @Router /api/v1/containers/{id} [delete]
func (h *ShelfHandler) HandleDeleteContainer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.run(w, r, http.StatusOK, func(ctx context.Context, c *shelf.Controller) (interface{}, error) {
		return nil, c.DeleteContainer(ctx, id)
	})
}

// HandleContainerItems returns the items in one container
// @Summary List items in a container
// @Tags containers
// @Produce json
// @Param X-Owner-ID header string true "Owner id"
// @Param id path string true "Container id"
// @Success 200 {object} ShelfResponse
// @Router /api/v1/containers/{id}/items [get]
func (h *ShelfHandler) HandleContainerItems(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.run(w, r, http.StatusOK, func(_ context.Context, c *shelf.Controller) (interface{}, error) {
		return c.ItemsByContainer(id), nil
	})
}

// HandleListItems returns the shelf item projection
// @Summary List shelf items
// @Tags items
// @Produce json
// @Param X-Owner-ID header string true "Owner id"
// @Success 200 {object} ShelfResponse
// @Router /api/v1/items [get]
func (h *ShelfHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, http.StatusOK, func(_ context.Context, c *shelf.Controller) (interface{}, error) {
		return c.ShelfItems(), nil
	})
}

// HandleAddItem adds a food to a container
// @Summary Add shelf item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Owner id"
// @Param request body AddShelfItemRequest true "Shelf item"
// @Success 201 {object} ShelfResponse
// @Failure 400 {object} ShelfErrorResponse
// @Failure 500 {object} ShelfErrorResponse
// @Router /api/v1/items [post]
func (h *ShelfHandler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddShelfItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add shelf item"); err != nil {
		return
	}

	h.run(w, r, http.StatusCreated, func(ctx context.Context, c *shelf.Controller) (interface{}, error) {
		return c.AddShelfItem(ctx, shelf.ShelfItemInput{
			ContainerID:        req.ContainerID,
			FoodName:           req.FoodName,
			CaloriesPerGram:    *req.CaloriesPerGram,
			CurrentWeightGrams: *req.CurrentWeightGrams,
			MaxWeightGrams:     *req.MaxWeightGrams,
			DeviceID:           req.DeviceID,
		})
	})
}

// HandleEditItem updates a shelf item's editable fields
// @Summary Edit shelf item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Owner id"
// @Param id path string true "Shelf item id"
// @Param request body EditShelfItemRequest true "Changes"
// @Success 200 {object} ShelfResponse
// @Failure 400 {object} ShelfErrorResponse
// @Failure 404 {object} ShelfErrorResponse
// @Router /api/v1/items/{id} [put]
func (h *ShelfHandler) HandleEditItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req EditShelfItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Edit shelf item"); err != nil {
		return
	}

	h.run(w, r, http.StatusOK, func(ctx context.Context, c *shelf.Controller) (interface{}, error) {
		err := c.EditShelfItem(ctx, id, shelf.ShelfItemEdit{
			FoodName:           req.FoodName,
			CaloriesPerGram:    *req.CaloriesPerGram,
			CurrentWeightGrams: *req.CurrentWeightGrams,
			MaxWeightGrams:     *req.MaxWeightGrams,
		})
		if err != nil {
			return nil, err
		}
		return findItem(c.ShelfItems(), id), nil
	})
}

// HandleDeleteItem removes a shelf item. Removing an unknown item succeeds.
// @Summary Delete shelf item
// @Tags items
// @Produce json
// @Param X-Owner-ID header string true "Owner id"
// @Param id path string true "Shelf item id"
// @Success 200 {object} ShelfResponse
// @Failure 500 {object} ShelfErrorResponse
// @Router /api/v1/items/{id} [delete]
func (h *ShelfHandler) HandleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.run(w, r, http.StatusOK, func(ctx context.Context, c *shelf.Controller) (interface{}, error) {
		return nil, c.DeleteShelfItem(ctx, id)
	})
}

// HandleSummary returns shelf totals
// @Summary Shelf summary
// @Tags shelf
// @Produce json
// @Param X-Owner-ID header string true "Owner id"
// @Success 200 {object} ShelfResponse
// @Router /api/v1/summary [get]
func (h *ShelfHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, http.StatusOK, func(_ context.Context, c *shelf.Controller) (interface{}, error) {
		return c.Summary(), nil
	})
}

// HandleSubmitFeedback stores feedback about the app from the caller
// @Summary Send feedback
// @Description Stores a general note, bug report, feature request or improvement suggestion
// @Tags feedback
// @Accept json
// @Produce json
// @Param X-Owner-ID header string true "Owner id"
// @Param request body SubmitFeedbackRequest true "Feedback"
// @Success 201 {object} ShelfResponse
// @Failure 400 {object} ShelfErrorResponse
// @Failure 500 {object} ShelfErrorResponse
// @Router /api/v1/feedback [post]
func (h *ShelfHandler) HandleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req SubmitFeedbackRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit feedback"); err != nil {
		return
	}

	h.run(w, r, http.StatusCreated, func(ctx context.Context, c *shelf.Controller) (interface{}, error) {
		return c.SubmitFeedback(ctx, shelf.FeedbackInput{
			FeedbackType: req.FeedbackType,
			Title:        req.Title,
			Message:      req.Message,
			Email:        req.Email,
		})
	})
}

// findItem returns the item with id, or nil when a refetch has not
// delivered it
func findItem(items []domain.ShelfItem, id string) *domain.ShelfItem {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

// Routes mounts the shelf endpoints on r
func (h *ShelfHandler) Routes(r chi.Router) {
	r.Post("/session/load", h.HandleLoadSession)
	r.Delete("/session", h.HandleSignOut)

	r.Get("/containers", h.HandleListContainers)
	r.Post("/containers", h.HandleAddContainer)
	r.Delete("/containers/{id}", h.HandleDeleteContainer)
	r.Get("/containers/{id}/items", h.HandleContainerItems)

	r.Get("/items", h.HandleListItems)
	r.Post("/items", h.HandleAddItem)
	r.Put("/items/{id}", h.HandleEditItem)
	r.Delete("/items/{id}", h.HandleDeleteItem)

	r.Get("/summary", h.HandleSummary)

	r.Post("/feedback", h.HandleSubmitFeedback)
}
