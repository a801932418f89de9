package handler

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"minagallery/internal/archive"
	"minagallery/internal/model"
	"minagallery/internal/view"
)

type RecordStore interface {
	ListGenerations(accountID string) ([]model.RawRecord, error)
	ListFeedbacks(accountID string) ([]model.RawRecord, error)
	DeleteGeneration(accountID, generationID string) (bool, error)
	GetGenerationTotal() (int, error)
	GetAccount(accountID string) (*model.Account, error)
}

type ViewStore interface {
	Get(ctx context.Context, sessionID string) (model.ViewState, error)
	Put(ctx context.Context, sessionID string, state model.ViewState) error
}

// RecreateSink hands a finished draft to the generator collaborator.
type RecreateSink interface {
	Recreate(ctx context.Context, accountID string, draft model.RecreateDraft) error
}

type GalleryHandler struct {
	records RecordStore
	views   ViewStore
	sink    RecreateSink

	arbitersMu sync.Mutex
	arbiters   map[string]*view.Arbiter

	sessionsMu   sync.Mutex
	sessionLocks map[string]*sync.Mutex

	deletesMu       sync.Mutex
	deletesInFlight map[string]bool
}

func NewGalleryHandler(records RecordStore, views ViewStore, sink RecreateSink) *GalleryHandler {
	return &GalleryHandler{
		records:         records,
		views:           views,
		sink:            sink,
		arbiters:        make(map[string]*view.Arbiter),
		sessionLocks:    make(map[string]*sync.Mutex),
		deletesInFlight: make(map[string]bool),
	}
}

func accountID(c *gin.Context) string {
	if id := c.GetHeader("X-Account-ID"); id != "" {
		return id
	}
	return c.Query("account")
}

func sessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	if id := c.Query("session"); id != "" {
		return id
	}
	return uuid.NewString()
}

func (h *GalleryHandler) reconcile(accountID string) ([]model.NormalizedItem, error) {
	generations, err := h.records.ListGenerations(accountID)
	if err != nil {
		return nil, err
	}

	feedbacks, err := h.records.ListFeedbacks(accountID)
	if err != nil {
		return nil, err
	}

	return archive.Reconcile(generations, feedbacks), nil
}

func (h *GalleryHandler) GetGallery(c *gin.Context) {
	account := accountID(c)
	if account == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing account id"})
		return
	}
	session := sessionID(c)

	items, err := h.reconcile(account)
	if err != nil {
		slog.Error("error reconciling gallery", "error", err, "account", account)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	mu := h.sessionLock(session)
	mu.Lock()
	defer mu.Unlock()

	state, err := h.views.Get(c.Request.Context(), session)
	if err != nil {
		slog.Warn("error loading view state, using defaults", "error", err, "session", session)
	}

	view.SyncWindow(&state, len(items))

	entries, visibleTotal := view.Apply(items, state)
	window := view.Window(entries, state)

	if err := h.views.Put(c.Request.Context(), session, state); err != nil {
		slog.Warn("error saving view state", "error", err, "session", session)
	}

	res := GalleryResponse{
		SessionID:    session,
		Items:        make([]GalleryItemResponse, 0, len(window)),
		VisibleTotal: visibleTotal,
		Total:        len(items),
		VisibleCount: state.VisibleCount,
		Filters:      toFiltersResponse(state),
	}

	for _, e := range window {
		res.Items = append(res.Items, GalleryItemResponse{
			ID:          e.ID,
			CreatedAt:   e.CreatedAt,
			URL:         e.URL,
			IsMotion:    e.IsMotion,
			Liked:       e.Liked,
			AspectRatio: e.AspectRatio,
			Prompt:      e.Prompt,
			Dimmed:      e.Dimmed,
			CanRecreate: e.CanRecreate,
		})
	}

	acct, err := h.records.GetAccount(account)
	if err != nil {
		slog.Warn("error fetching account", "error", err, "account", account)
	}
	if acct != nil {
		res.Account = &AccountResponse{
			Email:     acct.Email,
			Credits:   acct.Credits,
			ExpiresAt: acct.ExpiresAt,
		}
	}

	c.JSON(http.StatusOK, res)
}

func toFiltersResponse(state model.ViewState) FiltersResponse {
	return FiltersResponse{
		Motion:    state.MotionFilter,
		LikedOnly: state.LikedOnly,
		Aspect:    view.AspectForIndex(state.AspectIndex),
	}
}

// sessionLock serializes view-state writes per session.
func (h *GalleryHandler) sessionLock(session string) *sync.Mutex {
	h.sessionsMu.Lock()
	defer h.sessionsMu.Unlock()
	mu, ok := h.sessionLocks[session]
	if !ok {
		mu = &sync.Mutex{}
		h.sessionLocks[session] = mu
	}
	return mu
}

func (h *GalleryHandler) updateState(c *gin.Context, mutate func(*model.ViewState)) {
	account := accountID(c)
	if account == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing account id"})
		return
	}
	session := sessionID(c)

	mu := h.sessionLock(session)
	mu.Lock()
	defer mu.Unlock()

	state, err := h.views.Get(c.Request.Context(), session)
	if err != nil {
		slog.Warn("error loading view state, using defaults", "error", err, "session", session)
	}

	items, err := h.reconcile(account)
	if err != nil {
		slog.Error("error reconciling gallery", "error", err, "account", account)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	view.SyncWindow(&state, len(items))
	mutate(&state)

	_, visibleTotal := view.Apply(items, state)

	if err := h.views.Put(c.Request.Context(), session, state); err != nil {
		slog.Warn("error saving view state", "error", err, "session", session)
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":    session,
		"filters":       toFiltersResponse(state),
		"visible_total": visibleTotal,
		"visible_count": state.VisibleCount,
	})
}

func (h *GalleryHandler) CycleMotionFilter(c *gin.Context) {
	h.updateState(c, func(state *model.ViewState) {
		state.MotionFilter = view.CycleMotion(state.MotionFilter)
	})
}

func (h *GalleryHandler) ToggleLikedFilter(c *gin.Context) {
	h.updateState(c, func(state *model.ViewState) {
		state.LikedOnly = !state.LikedOnly
	})
}

func (h *GalleryHandler) CycleAspectFilter(c *gin.Context) {
	h.updateState(c, func(state *model.ViewState) {
		state.AspectIndex = view.CycleAspect(state.AspectIndex)
	})
}

func (h *GalleryHandler) Reveal(c *gin.Context) {
	h.updateState(c, func(state *model.ViewState) {
		view.GrowWindow(state)
	})
}

func (h *GalleryHandler) arbiter(session string) *view.Arbiter {
	h.arbitersMu.Lock()
	defer h.arbitersMu.Unlock()
	a, ok := h.arbiters[session]
	if !ok {
		a = view.NewArbiter()
		h.arbiters[session] = a
	}
	return a
}

func (h *GalleryHandler) Playback(c *gin.Context) {
	var req PlaybackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid playback report"})
		return
	}

	a := h.arbiter(sessionID(c))

	for _, id := range req.Mounted {
		a.Mount(id)
	}
	for _, id := range req.Unmounted {
		a.Unmount(id)
	}
	for _, r := range req.Reports {
		a.Report(r.ID, r.Ratio)
	}
	if req.PageHidden != nil {
		a.SetPageHidden(*req.PageHidden)
	}

	c.JSON(http.StatusOK, PlaybackResponse{Playing: a.Playing()})
}

func (h *GalleryHandler) beginDelete(id string) bool {
	h.deletesMu.Lock()
	defer h.deletesMu.Unlock()
	if h.deletesInFlight[id] {
		return false
	}
	h.deletesInFlight[id] = true
	return true
}

func (h *GalleryHandler) endDelete(id string) {
	h.deletesMu.Lock()
	defer h.deletesMu.Unlock()
	delete(h.deletesInFlight, id)
}

func (h *GalleryHandler) DeleteItem(c *gin.Context) {
	account := accountID(c)
	if account == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing account id"})
		return
	}
	id := c.Param("id")

	if !h.beginDelete(id) {
		c.JSON(http.StatusConflict, gin.H{"id": id, "error": "Delete already in progress"})
		return
	}
	defer h.endDelete(id)

	deleted, err := h.records.DeleteGeneration(account, id)
	if err != nil {
		// Failure stays scoped to this item.
		slog.Error("error deleting generation", "error", err, "generation_id", id)
		c.JSON(http.StatusBadGateway, gin.H{"id": id, "error": "Delete failed"})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"id": id, "error": "Item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *GalleryHandler) Recreate(c *gin.Context) {
	account := accountID(c)
	if account == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing account id"})
		return
	}
	id := c.Param("id")

	items, err := h.reconcile(account)
	if err != nil {
		slog.Error("error reconciling gallery", "error", err, "account", account)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	item, found := findItem(items, id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"id": id, "error": "Item not found"})
		return
	}

	if !item.CanRecreate || item.Draft == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"id": id, "error": "Item has no recreatable brief"})
		return
	}

	if err := h.sink.Recreate(c.Request.Context(), account, *item.Draft); err != nil {
		slog.Error("error handing draft to generator", "error", err, "generation_id", id)
		c.JSON(http.StatusBadGateway, gin.H{"id": id, "error": "Recreate failed"})
		return
	}

	c.JSON(http.StatusAccepted, RecreateResponse{
		Draft:    item.Draft,
		Redirect: "/generator",
	})
}

func (h *GalleryHandler) Download(c *gin.Context) {
	account := accountID(c)
	if account == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing account id"})
		return
	}
	id := c.Param("id")

	items, err := h.reconcile(account)
	if err != nil {
		slog.Error("error reconciling gallery", "error", err, "account", account)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	item, found := findItem(items, id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"id": id, "error": "Item not found"})
		return
	}

	c.JSON(http.StatusOK, DownloadResponse{
		URL:      item.URL,
		Filename: downloadFilename(item),
	})
}

func (h *GalleryHandler) GetHealth(c *gin.Context) {
	_, err := h.records.GetGenerationTotal()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func findItem(items []model.NormalizedItem, id string) (model.NormalizedItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return model.NormalizedItem{}, false
}
