package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelias-gh/CRM/domain"
	"github.com/kelias-gh/CRM/utils"
)

type DashboardHandler struct {
	dashUC domain.DashboardUseCase
}

func NewDashboardHandler(r *gin.Engine, dashUC domain.DashboardUseCase) {
	handler := &DashboardHandler{dashUC: dashUC}

	r.GET("/", handler.Overview)
	r.GET("/health", handler.Health)
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	overview, err := h.dashUC.Overview(c.Request.Context())
	if err != nil {
		utils.PrintLogInfo(&name, 500, "Overview", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to Get Dashboard Overview",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "Overview", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    overview,
	})
}

func (h *DashboardHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
