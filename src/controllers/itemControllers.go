package controllers

import (
	"errors"
	"net/http"

	"github.com/CollectorsVault/CollectorsVault-Backend/src/dtos"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/middleware"
	"github.com/CollectorsVault/CollectorsVault-Backend/src/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ItemController struct {
	service       *services.ItemService
	importService *services.ImportService
}

func NewItemController(service *services.ItemService, importService *services.ImportService) *ItemController {
	return &ItemController{service: service, importService: importService}
}

// InsertTradingCard handles POST requests adding a trading card to the catalogue
func (c *ItemController) InsertTradingCard(ctx *gin.Context) {
	var req dtos.InsertTradingCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Missing data"})
		return
	}
	itemID, err := c.service.InsertTradingCard(ctx.Request.Context(), req)
	if errors.Is(err, services.ErrValidation) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to insert trading card"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Trading card inserted successfully", "itemID": itemID})
}

// InsertCoin handles POST requests adding a coin to the catalogue
func (c *ItemController) InsertCoin(ctx *gin.Context) {
	var req dtos.InsertCoinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Missing data"})
		return
	}
	itemID, err := c.service.InsertCoin(ctx.Request.Context(), req)
	if errors.Is(err, services.ErrValidation) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to insert coin"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Coin inserted successfully", "itemID": itemID})
}

// UpdateItem handles PUT requests changing an item in one of the caller's collections
func (c *ItemController) UpdateItem(ctx *gin.Context) {
	var req dtos.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "A positive itemID is required"})
		return
	}
	err := c.service.UpdateItem(ctx.Request.Context(), middleware.CollectorEmail(ctx), req)
	if errors.Is(err, services.ErrValidation) {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// ImportItems handles multipart POST requests carrying an .xlsx workbook in the "file" field
func (c *ItemController) ImportItems(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "An .xlsx workbook is required in the file field"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Uploaded file cannot be read"})
		return
	}
	defer file.Close()

	result, err := c.importService.ImportItemsFromExcel(ctx.Request.Context(), file)
	if err != nil {
		body := gin.H{"message": err.Error()}
		if result != nil {
			body["imported"] = result.Imported
			body["errors"] = result.Errors
		}
		ctx.JSON(statusFor(err), body)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ImportTemplate handles GET requests for an empty import workbook
func (c *ItemController) ImportTemplate(ctx *gin.Context) {
	workbook, err := c.importService.Template()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build template"})
		return
	}
	defer workbook.Close()

	ctx.Header("Content-Disposition", `attachment; filename="items-import.xlsx"`)
	ctx.Header("Content-Type", xlsxContentType)
	ctx.Status(http.StatusOK)
	if err := workbook.Write(ctx.Writer); err != nil {
		_ = ctx.Error(err)
	}
}
