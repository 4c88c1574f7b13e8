package handlers

import (
	"errors"
	"net/http"

	"repair_shop_backend/internal/services"
	"repair_shop_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RepairHandler holds the repair service.
type RepairHandler struct {
	repairService services.RepairService
}

// NewRepairHandler creates a new RepairHandler.
func NewRepairHandler(rs services.RepairService) *RepairHandler {
	return &RepairHandler{repairService: rs}
}

// CreateRepair handles the creation of a new work order.
func (h *RepairHandler) CreateRepair(c *gin.Context) {
	var req services.RepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateRepair: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	repair, err := h.repairService.CreateRepair(req)
	if err != nil {
		utils.LogError(err, "CreateRepair: Error from repairService.CreateRepair")
		h.respondRepairError(c, err, "Failed to create repair.")
		return
	}
	c.JSON(http.StatusCreated, repair)
}

// GetRepairs handles fetching all work orders, newest request first.
func (h *RepairHandler) GetRepairs(c *gin.Context) {
	repairs, err := h.repairService.GetRepairs()
	if err != nil {
		utils.LogError(err, "GetRepairs: Error from repairService.GetRepairs")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch repairs.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, repairs)
}

// GetRepairsForClient handles fetching one client's work orders.
func (h *RepairHandler) GetRepairsForClient(c *gin.Context) {
	clientID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid client ID format.")
		return
	}

	repairs, err := h.repairService.GetRepairsForClient(clientID)
	if err != nil {
		utils.LogError(err, "GetRepairsForClient: Error from repairService.GetRepairsForClient for client "+c.Param("id"))
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch client repairs.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, repairs)
}

// GetRepairByID handles fetching a single work order by ID.
func (h *RepairHandler) GetRepairByID(c *gin.Context) {
	repairID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid repair ID format.")
		return
	}

	repair, err := h.repairService.GetRepairByID(repairID)
	if err != nil {
		utils.LogError(err, "GetRepairByID: Error from repairService.GetRepairByID for ID "+c.Param("id"))
		if errors.Is(err, services.ErrRepairNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Repair not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch repair.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, repair)
}

// UpdateRepair handles replacing a work order row.
func (h *RepairHandler) UpdateRepair(c *gin.Context) {
	repairID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid repair ID format.")
		return
	}

	var req services.RepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateRepair: Failed to bind JSON for ID "+c.Param("id"))
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	repair, err := h.repairService.UpdateRepair(repairID, req)
	if err != nil {
		utils.LogError(err, "UpdateRepair: Error from repairService.UpdateRepair for ID "+c.Param("id"))
		h.respondRepairError(c, err, "Failed to update repair.")
		return
	}
	c.JSON(http.StatusOK, repair)
}

// DeleteRepair handles deleting a work order.
func (h *RepairHandler) DeleteRepair(c *gin.Context) {
	repairID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondValidationFailed(c, "Invalid repair ID format.")
		return
	}

	if err := h.repairService.DeleteRepair(repairID); err != nil {
		utils.LogError(err, "DeleteRepair: Error from repairService.DeleteRepair for ID "+c.Param("id"))
		if errors.Is(err, services.ErrRepairNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Repair not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete repair.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Repair deleted successfully"})
}

func (h *RepairHandler) respondRepairError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrRepairNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Repair not found.", err.Error()))
	case errors.Is(err, services.ErrRepairClientMissing), errors.Is(err, services.ErrRepairStaffMissing):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Repair references a record that does not exist.", err.Error()))
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidRepairStatus),
		errors.Is(err, services.ErrInvalidRepairPriority):
		utils.RespondValidationFailed(c, err.Error())
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, fallback, "Internal error"))
	}
}
