package controllers

import (
	"errors"
	"net/http"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/dtos"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/middleware"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CollectionController struct {
	service *services.CollectionService
}

func NewCollectionController(service *services.CollectionService) *CollectionController {
	return &CollectionController{service: service}
}

// GetCollections handles GET requests listing the caller's collections
func (c *CollectionController) GetCollections(ctx *gin.Context) {
	collections, err := c.service.ListCollections(ctx.Request.Context(), middleware.CollectorEmail(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": nil})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dtos.Rows(collections)})
}

// CreateCollection handles POST requests to create an empty collection
func (c *CollectionController) CreateCollection(ctx *gin.Context) {
	var req dtos.CollectionNameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Collection name is required"})
		return
	}
	if err := c.service.CreateCollection(ctx.Request.Context(), req.CollectionName, middleware.CollectorEmail(ctx)); err != nil {
		ctx.JSON(statusFor(err), gin.H{"success": false, "message": "Error when creating collection."})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Collection created successfully!"})
}

// DeleteCollection handles DELETE requests removing one of the caller's collections
func (c *CollectionController) DeleteCollection(ctx *gin.Context) {
	var req dtos.CollectionNameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Collection name is required"})
		return
	}
	err := c.service.DeleteCollection(ctx.Request.Context(), req.CollectionName, middleware.CollectorEmail(ctx))
	if errors.Is(err, services.ErrNotFoundOrUnauthorized) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "No collection was found or Collector not authorized to delete this."})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error when deleting collection."})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Collection deleted successfully!"})
}

// AddItemToCollection handles POST requests putting an item in one of the caller's collections
func (c *CollectionController) AddItemToCollection(ctx *gin.Context) {
	var req dtos.AddItemToCollectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Collection name and a positive itemID are required"})
		return
	}
	err := c.service.AddItemToCollection(ctx.Request.Context(), req.CollectionName, int(req.ItemID), middleware.CollectorEmail(ctx))
	if errors.Is(err, services.ErrNotFoundOrUnauthorized) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "No collection or item was found, or Collector not authorized to change this collection."})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error when adding item to collection."})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to collection successfully!"})
}

// GetItemsInCollection handles GET requests listing the items of a named collection
func (c *CollectionController) GetItemsInCollection(ctx *gin.Context) {
	var query dtos.ItemsInCollectionQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"data": nil})
		return
	}
	items, err := c.service.ListItemsInCollection(ctx.Request.Context(), query.CollectionName, middleware.CollectorEmail(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": nil, "error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dtos.Rows(items)})
}

// CountItemsGroupByCollection handles GET requests counting items per collection
func (c *CollectionController) CountItemsGroupByCollection(ctx *gin.Context) {
	counts, err := c.service.CountItemsByCollection(ctx.Request.Context(), middleware.CollectorEmail(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"data": nil, "error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dtos.Rows(counts)})
}

// GetCollectionValuations handles GET requests for the appraised value of each collection
func (c *CollectionController) GetCollectionValuations(ctx *gin.Context) {
	valuations, err := c.service.GetCollectionValuation(ctx.Request.Context(), middleware.CollectorEmail(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "data": nil})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": dtos.Rows(valuations)})
}
