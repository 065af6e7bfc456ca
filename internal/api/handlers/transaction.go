package handlers

import (
	"errors"
	"net/http"

	"campus-exchange-backend/internal/auth"
	apperrors "campus-exchange-backend/internal/errors"
	"campus-exchange-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler handles HTTP requests for lending transactions
type TransactionHandler struct {
	transactionService service.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService service.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransactionRequest represents the body for a borrow/lend request
type CreateTransactionRequest struct {
	ComponentID uuid.UUID `json:"component_id" binding:"required"`
}

// UpdateTransactionRequest represents the body for a status transition
type UpdateTransactionRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateRequest handles POST /transactions
// @Summary Create a borrow/lend request
// @Description Request a listed component. The lender/borrower roles are resolved from the listing type; the transaction starts in PENDING and the component stays AVAILABLE until approval.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Component to request"
// @Success 201 {object} models.Transaction "Created transaction"
// @Failure 400 {object} ErrorResponse "Item not available or own-item request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Component not found"
// @Security BearerAuth
// @Router /transactions [post]
func (h *TransactionHandler) CreateRequest(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.CreateRequest(req.ComponentID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrComponentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsInvalidState(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating transaction"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "request sent successfully", "transaction": transaction})
}

// UpdateStatus handles PATCH /transactions/:id
// @Summary Transition a transaction
// @Description Apply a status transition. Moving to ACTIVE marks the component BORROWED; COMPLETED, REJECTED or CANCELLED release it back to AVAILABLE.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body UpdateTransactionRequest true "Requested status"
// @Success 200 {object} models.Transaction "Updated transaction"
// @Failure 400 {object} ErrorResponse "Unknown status or illegal transition"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Caller is not a participant"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction ID"})
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.transactionService.UpdateStatus(id, req.Status, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsInvalidState(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error updating transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated", "transaction": transaction})
}

// GetDashboard handles GET /dashboard
// @Summary Get own transactions
// @Description Return every transaction where the caller is lender or borrower, newest first, with the caller's minimal identity
// @Tags transactions
// @Produce json
// @Success 200 {object} service.DashboardResponse "Dashboard data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *TransactionHandler) GetDashboard(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	dashboard, err := h.transactionService.GetDashboard(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
