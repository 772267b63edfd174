package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kelias-gh/CRM/config"
	"github.com/kelias-gh/CRM/domain"
	"github.com/kelias-gh/CRM/dto"
	"github.com/kelias-gh/CRM/middleware"
	"github.com/kelias-gh/CRM/utils"
)

type OrderHandler struct {
	orderUC domain.OrderUseCase
}

func NewOrderHandler(r *gin.Engine, orderUC domain.OrderUseCase, jwtManager *utils.JWTManager) {
	handler := &OrderHandler{orderUC: orderUC}

	r.GET("/orders", handler.ListOrders)

	orders := r.Group("/orders")
	orders.Use(config.AuthMiddleware(jwtManager), middleware.StaffOnly())
	{
		orders.POST("", middleware.RateLimit("order_create"), handler.CreateOrder)
	}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	query := c.Query("q")
	page := parsePage(c.Query("page"))

	rows, pageInfo, err := h.orderUC.List(c.Request.Context(), query, page)
	if err != nil {
		utils.PrintLogInfo(&name, 500, "ListOrders", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to List Orders",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "ListOrders", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
		"paging":  pageInfo,
		"query":   query,
	})
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var payload dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.PrintLogInfo(&name, 400, "CreateOrder", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to Create Order",
		})
		return
	}

	order, items := dto.MapCreateOrderRequest(&payload)
	err := h.orderUC.Create(c.Request.Context(), &order, items)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			utils.PrintLogInfo(&name, 404, "CreateOrder", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to Create Order",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "CreateOrder", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to Create Order",
		})
		return
	}

	utils.PrintLogInfo(&name, 201, "CreateOrder", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order Created Successfully",
		"data":    order,
	})
}
