package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	"github.com/ratemystore/ratemystore-backend/internal/app/repository"
	"github.com/ratemystore/ratemystore-backend/internal/app/service"
	apperrors "github.com/ratemystore/ratemystore-backend/internal/errors"
	"github.com/ratemystore/ratemystore-backend/internal/middleware"
)

type StoreController struct {
	storeService service.StoreService
}

func NewStoreController(storeService service.StoreService) *StoreController {
	return &StoreController{
		storeService: storeService,
	}
}

type CreateStoreRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Address string `json:"address" binding:"required"`
	OwnerID *uint  `json:"owner_id"`
}

type UpdateStoreRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Address string `json:"address" binding:"required"`
}

func storeJSON(store *model.Store) gin.H {
	return gin.H{
		"id":             store.ID,
		"name":           store.Name,
		"email":          store.Email,
		"address":        store.Address,
		"owner_id":       store.OwnerID,
		"owner_name":     store.Owner.Name,
		"average_rating": store.AverageRating,
	}
}

// parseStoreID validates the :id path segment. Non-numeric input is a client
// error, not a lookup miss.
func parseStoreID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.MsgInvalidStoreID)
		return 0, false
	}
	return uint(id), true
}

// parseSortParam resolves the explicit sort key. Only name ordering is
// supported; an unknown key is rejected rather than silently ignored.
func parseSortParam(c *gin.Context) (desc bool, ok bool) {
	switch c.Query("sort") {
	case "", "name_asc":
		return false, true
	case "name_desc":
		return true, true
	default:
		apperrors.BadRequest(c, apperrors.MsgInvalidSort)
		return false, false
	}
}

// List returns all stores matching the optional name/address filters, each
// carrying the caller's own rating when they have one
// GET /api/v1/stores (any authenticated role)
func (ctrl *StoreController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sortDesc, ok := parseSortParam(c)
	if !ok {
		return
	}

	filter := repository.StoreFilter{
		Name:     c.Query("name"),
		Address:  c.Query("address"),
		SortDesc: sortDesc,
	}

	viewerID, _ := middleware.GetUserID(c)

	items, err := ctrl.storeService.List(filter, viewerID)
	if err != nil {
		log.Error("Failed to list stores", err, nil)
		apperrors.ParseAndRespond(c, err, "list stores")
		return
	}

	stores := make([]gin.H, 0, len(items))
	for i := range items {
		entry := storeJSON(&items[i].Store)
		entry["user_rating"] = items[i].UserRating
		stores = append(stores, entry)
	}

	respondList(c, http.StatusOK, len(stores), gin.H{
		"stores": stores,
	})
}

// GetDetail returns one store with its ratings
// GET /api/v1/stores/:id
func (ctrl *StoreController) GetDetail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID, ok := parseStoreID(c)
	if !ok {
		return
	}

	store, ratings, err := ctrl.storeService.GetDetail(storeID)
	if err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.MsgStoreNotFound)
			return
		}
		log.Error("Failed to load store", err, map[string]interface{}{
			"store_id": storeID,
		})
		apperrors.ParseAndRespond(c, err, "get store")
		return
	}

	ratingList := make([]gin.H, 0, len(ratings))
	for _, r := range ratings {
		ratingList = append(ratingList, gin.H{
			"id":         r.ID,
			"rating":     r.Rating,
			"comment":    r.Comment,
			"user_id":    r.UserID,
			"user_name":  r.User.Name,
			"created_at": r.CreatedAt,
			"updated_at": r.UpdatedAt,
		})
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"store":   storeJSON(store),
		"ratings": ratingList,
	})
}

// Create registers a new store
// POST /api/v1/stores (admin, owner)
func (ctrl *StoreController) Create(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	callerID, _ := middleware.GetUserID(c)
	callerRole, _ := middleware.GetUserRole(c)

	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.MsgAllFieldsRequired)
		return
	}

	store, err := ctrl.storeService.Create(callerID, callerRole, req.Name, req.Email, req.Address, req.OwnerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOwnerNotFound), errors.Is(err, service.ErrOwnerRoleMismatch):
			apperrors.BadRequest(c, apperrors.MsgInvalidOwnerID)
		case service.IsValidationError(err):
			apperrors.BadRequest(c, validationMessage(err))
		default:
			log.Error("Failed to create store", err, map[string]interface{}{
				"email": req.Email,
			})
			apperrors.ParseAndRespond(c, err, "create store")
		}
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{
		"store": storeJSON(store),
	})
}

// Update rewrites a store's profile
// PUT /api/v1/stores/:id (admin, owning owner)
func (ctrl *StoreController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID, ok := parseStoreID(c)
	if !ok {
		return
	}

	callerID, _ := middleware.GetUserID(c)
	callerRole, _ := middleware.GetUserRole(c)

	var req UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.MsgAllFieldsRequired)
		return
	}

	store, err := ctrl.storeService.Update(callerID, callerRole, storeID, req.Name, req.Email, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoreNotFound):
			apperrors.NotFound(c, apperrors.MsgStoreNotFound)
		case errors.Is(err, service.ErrNotStoreOwner):
			apperrors.Forbidden(c, apperrors.MsgCannotUpdateStore)
		case service.IsValidationError(err):
			apperrors.BadRequest(c, validationMessage(err))
		default:
			log.Error("Failed to update store", err, map[string]interface{}{
				"store_id": storeID,
			})
			apperrors.ParseAndRespond(c, err, "update store")
		}
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"store": storeJSON(store),
	})
}

// Delete removes a store along with its ratings
// DELETE /api/v1/stores/:id (admin, owning owner)
func (ctrl *StoreController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	storeID, ok := parseStoreID(c)
	if !ok {
		return
	}

	callerID, _ := middleware.GetUserID(c)
	callerRole, _ := middleware.GetUserRole(c)

	if err := ctrl.storeService.Delete(callerID, callerRole, storeID); err != nil {
		switch {
		case errors.Is(err, service.ErrStoreNotFound):
			apperrors.NotFound(c, apperrors.MsgStoreNotFound)
		case errors.Is(err, service.ErrNotStoreOwner):
			apperrors.Forbidden(c, apperrors.MsgCannotDeleteStore)
		default:
			log.Error("Failed to delete store", err, map[string]interface{}{
				"store_id": storeID,
			})
			apperrors.ParseAndRespond(c, err, "delete store")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListOwn returns the stores owned by the authenticated owner
// GET /api/v1/owner/stores (owner)
func (ctrl *StoreController) ListOwn(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	ownerID, _ := middleware.GetUserID(c)

	stores, err := ctrl.storeService.ListByOwner(ownerID)
	if err != nil {
		log.Error("Failed to list owner stores", err, map[string]interface{}{
			"owner_id": ownerID,
		})
		apperrors.ParseAndRespond(c, err, "list owner stores")
		return
	}

	list := make([]gin.H, 0, len(stores))
	for i := range stores {
		list = append(list, gin.H{
			"id":             stores[i].ID,
			"name":           stores[i].Name,
			"email":          stores[i].Email,
			"address":        stores[i].Address,
			"average_rating": stores[i].AverageRating,
		})
	}

	respondList(c, http.StatusOK, len(list), gin.H{
		"stores": list,
	})
}
