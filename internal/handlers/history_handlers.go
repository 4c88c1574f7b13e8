package handlers

import (
	"net/http"

	"repair_shop_backend/internal/services"
	"repair_shop_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// HistoryHandler holds the history service.
type HistoryHandler struct {
	historyService services.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(hs services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: hs}
}

// GetHistory handles the merged activity feed of purchases and repairs,
// newest event first.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	events, err := h.historyService.GetHistory()
	if err != nil {
		utils.LogError(err, "GetHistory: Error from historyService.GetHistory")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch history feed.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, events)
}
