package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familysync-backend/internal/core"
	"familysync-backend/internal/models"
)

// ShoppingHandler handles shopping-list endpoints.
type ShoppingHandler struct {
	shoppingService core.ShoppingService
}

// NewShoppingHandler creates a new ShoppingHandler.
func NewShoppingHandler(ss core.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shoppingService: ss}
}

// CreateItem handles POST /api/v1/shopping.
func (h *ShoppingHandler) CreateItem(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.CreateShoppingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid-argument", Message: "Invalid request body"})
		return
	}
	itemID, err := h.shoppingService.CreateItem(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse("itemId", itemID))
}

// MarkItemPurchased handles
// POST /api/v1/shopping/:familyId/:listId/items/:itemId/purchase.
func (h *ShoppingHandler) MarkItemPurchased(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	err := h.shoppingService.MarkItemPurchased(c.Request.Context(), uid,
		c.Param("familyId"), c.Param("listId"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Item marked as purchased"})
}
