package handlers

import (
	"errors"
	"net/http"

	"repair_shop_backend/internal/services"
	"repair_shop_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PurchaseHandler holds the purchase service.
type PurchaseHandler struct {
	purchaseService services.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(ps services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: ps}
}

// CreatePurchase handles recording a sale. The whole request either commits
// as one transaction or leaves the database untouched.
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req services.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreatePurchase: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	purchaseID, err := h.purchaseService.CreatePurchase(req)
	if err != nil {
		utils.LogError(err, "CreatePurchase: Error from purchaseService.CreatePurchase")
		switch {
		case errors.Is(err, services.ErrInsufficientStock):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeInsufficientStock, "Not enough stock to complete the purchase.", err.Error()))
		case errors.Is(err, services.ErrPurchaseProductMissing), errors.Is(err, services.ErrPurchaseClientMissing):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Purchase references a record that does not exist.", err.Error()))
		case errors.Is(err, services.ErrEmptyPurchase), errors.Is(err, services.ErrValidation):
			utils.RespondValidationFailed(c, err.Error())
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record purchase.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"purchase_id": purchaseID})
}

// GetPurchasesForClient handles fetching one client's purchase history,
// newest first.
func (h *PurchaseHandler) GetPurchasesForClient(c *gin.Context) {
	clientID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid client ID format.")
		return
	}

	purchases, err := h.purchaseService.GetPurchasesForClient(clientID)
	if err != nil {
		utils.LogError(err, "GetPurchasesForClient: Error from purchaseService.GetPurchasesForClient for client "+c.Param("id"))
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch client purchases.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, purchases)
}
