package handlers

import (
	"errors"
	"net/http"

	"campus-exchange-backend/internal/auth"
	apperrors "campus-exchange-backend/internal/errors"
	"campus-exchange-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ComponentHandler handles HTTP requests for component listings
type ComponentHandler struct {
	componentService service.ComponentServiceInterface
}

// NewComponentHandler creates a new component handler
func NewComponentHandler(componentService service.ComponentServiceInterface) *ComponentHandler {
	return &ComponentHandler{
		componentService: componentService,
	}
}

// ListComponents handles GET /components
// @Summary List available components
// @Description List all components with status AVAILABLE, newest first
// @Tags components
// @Produce json
// @Success 200 {array} service.ComponentResponse "Available components"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /components [get]
func (h *ComponentHandler) ListComponents(c *gin.Context) {
	components, err := h.componentService.ListAvailable()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching components"})
		return
	}

	c.JSON(http.StatusOK, components)
}

// CreateComponent handles POST /components
// @Summary List a new component
// @Description Create a component listing owned by the caller; status starts as AVAILABLE
// @Tags components
// @Accept json
// @Produce json
// @Param request body service.CreateComponentRequest true "Listing data"
// @Success 201 {object} models.Component "Created component"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /components [post]
func (h *ComponentHandler) CreateComponent(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, err := h.componentService.CreateComponent(userID, &req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if apperrors.IsValidation(err) || errors.As(err, &validationErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating component"})
		return
	}

	c.JSON(http.StatusCreated, component)
}
