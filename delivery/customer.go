package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kelias-gh/CRM/config"
	"github.com/kelias-gh/CRM/domain"
	"github.com/kelias-gh/CRM/dto"
	"github.com/kelias-gh/CRM/middleware"
	"github.com/kelias-gh/CRM/utils"
)

type CustomerHandler struct {
	customerUC domain.CustomerUseCase
}

func NewCustomerHandler(r *gin.Engine, customerUC domain.CustomerUseCase, jwtManager *utils.JWTManager) {
	handler := &CustomerHandler{customerUC: customerUC}

	r.GET("/customers", handler.ListCustomers)
	r.GET("/customers/:id", handler.CustomerDetail)
	r.GET("/customers/:id/revenue", handler.CustomerRevenue)

	edit := r.Group("/customer")
	edit.Use(config.AuthMiddleware(jwtManager), middleware.StaffOnly())
	{
		edit.POST("/:id/edit", middleware.RateLimit("customer_edit"), handler.UpdateCustomer)
	}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	query := c.Query("q")
	page := parsePage(c.Query("page"))

	customers, pageInfo, err := h.customerUC.List(c.Request.Context(), query, page)
	if err != nil {
		utils.PrintLogInfo(&name, 500, "ListCustomers", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to List Customers",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "ListCustomers", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    customers,
		"paging":  pageInfo,
		"query":   query,
	})
}

func (h *CustomerHandler) CustomerDetail(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	customerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || customerID < 1 {
		utils.PrintLogInfo(&name, 400, "CustomerDetail", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid customer ID parameter",
			"message": "Failed to Get Customer Detail",
		})
		return
	}

	detail, err := h.customerUC.Detail(c.Request.Context(), uint(customerID), c.Query("from"), c.Query("to"))
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			utils.PrintLogInfo(&name, 404, "CustomerDetail", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to Get Customer Detail",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "CustomerDetail", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to Get Customer Detail",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "CustomerDetail", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}

func (h *CustomerHandler) CustomerRevenue(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	customerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || customerID < 1 {
		utils.PrintLogInfo(&name, 400, "CustomerRevenue", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid customer ID parameter",
			"message": "Failed to Get Customer Revenue",
		})
		return
	}

	var query dto.RevenueQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.PrintLogInfo(&name, 400, "CustomerRevenue", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to Get Customer Revenue",
		})
		return
	}

	revenue, err := h.customerUC.RangedRevenue(c.Request.Context(), uint(customerID), query.From, query.To)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			utils.PrintLogInfo(&name, 404, "CustomerRevenue", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to Get Customer Revenue",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "CustomerRevenue", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to Get Customer Revenue",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "CustomerRevenue", nil)
	c.JSON(http.StatusOK, gin.H{
		"customer_id": customerID,
		"from":        query.From,
		"to":          query.To,
		"revenue":     revenue.StringFixed(2),
	})
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	customerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || customerID < 1 {
		utils.PrintLogInfo(&name, 400, "UpdateCustomer", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid customer ID parameter",
			"message": "Failed to Update Customer",
		})
		return
	}

	var payload dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.PrintLogInfo(&name, 400, "UpdateCustomer", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to Update Customer",
		})
		return
	}

	err = h.customerUC.Update(c.Request.Context(), uint(customerID), dto.MapUpdateCustomerRequest(&payload))
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			utils.PrintLogInfo(&name, 404, "UpdateCustomer", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to Update Customer",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "UpdateCustomer", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to Update Customer",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "UpdateCustomer", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Customer Updated Successfully",
	})
}

// parsePage treats non-numeric or non-positive page parameters as page 1.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
