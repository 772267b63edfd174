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

type ContactHandler struct {
	contactUC domain.ContactUseCase
}

func NewContactHandler(r *gin.Engine, contactUC domain.ContactUseCase, jwtManager *utils.JWTManager) {
	handler := &ContactHandler{contactUC: contactUC}

	r.GET("/contacts", handler.ListContacts)

	contacts := r.Group("/contacts")
	contacts.Use(config.AuthMiddleware(jwtManager))
	{
		contacts.POST("", middleware.RateLimit("contact_log"), handler.LogContact)
	}
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	channel := c.Query("channel")
	page := parsePage(c.Query("page"))

	rows, pageInfo, err := h.contactUC.List(c.Request.Context(), channel, page)
	if err != nil {
		utils.PrintLogInfo(&name, 500, "ListContacts", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to List Contacts",
		})
		return
	}

	utils.PrintLogInfo(&name, 200, "ListContacts", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
		"paging":  pageInfo,
		"channel": channel,
	})
}

func (h *ContactHandler) LogContact(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	var payload dto.LogContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.PrintLogInfo(&name, 400, "LogContact", &err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   utils.TranslateValidationError(err),
			"message": "Failed to Log Contact",
		})
		return
	}

	// Attribute the record to the authenticated user
	var userID *uint
	if id, exists := c.Get("userID"); exists {
		if uid, ok := id.(uint); ok {
			userID = &uid
		}
	}

	contact := dto.MapLogContactRequest(&payload, userID)
	err := h.contactUC.Log(c.Request.Context(), &contact)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			utils.PrintLogInfo(&name, 404, "LogContact", &err)
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   err.Error(),
				"message": "Failed to Log Contact",
			})
			return
		}
		utils.PrintLogInfo(&name, 500, "LogContact", &err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to Log Contact",
		})
		return
	}

	utils.PrintLogInfo(&name, 201, "LogContact", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Contact Logged Successfully",
		"data":    contact,
	})
}
