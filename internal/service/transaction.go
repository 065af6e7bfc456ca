package service

import (
	"errors"
	"fmt"

	"campus-exchange-backend/internal/database/models"
	apperrors "campus-exchange-backend/internal/errors"
	"campus-exchange-backend/internal/logger"
	"campus-exchange-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionService runs the lending lifecycle: it validates incoming
// borrow/lend requests and applies status transitions, keeping the
// referenced component's availability in sync. This is the only place a
// component's status is ever mutated.
type TransactionService struct {
	repo          repository.TransactionRepositoryInterface
	componentRepo repository.ComponentRepositoryInterface
	userRepo      repository.UserRepositoryInterface
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo repository.TransactionRepositoryInterface, componentRepo repository.ComponentRepositoryInterface, userRepo repository.UserRepositoryInterface) *TransactionService {
	return &TransactionService{
		repo:          repo,
		componentRepo: componentRepo,
		userRepo:      userRepo,
	}
}

// CurrentUserView is the minimal identity returned alongside dashboard data
type CurrentUserView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// DashboardResponse bundles a user's transactions with their identity
type DashboardResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	CurrentUser  CurrentUserView      `json:"current_user"`
}

// CreateRequest validates a new borrow/lend request against the component's
// current availability and ownership, resolves which party is lender and
// which is borrower from the listing type, and creates the transaction in
// PENDING. The component stays AVAILABLE until a later ACTIVE transition,
// so several PENDING requests may coexist on one listing.
func (s *TransactionService) CreateRequest(componentID, requesterID uuid.UUID) (*models.Transaction, error) {
	component, err := s.componentRepo.GetByID(componentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to get component: %w", err)
	}

	if component.Status != models.ComponentStatusAvailable {
		return nil, apperrors.ErrItemNotAvailable
	}

	if component.UserID == requesterID {
		return nil, apperrors.ErrOwnItemRequest
	}

	var lenderID, borrowerID uuid.UUID
	if component.Type == models.ComponentTypeGive {
		// The requester wants to receive an item listed for lending
		lenderID = component.UserID
		borrowerID = requesterID
	} else {
		// The owner is seeking an item; the requester offers to supply it
		lenderID = requesterID
		borrowerID = component.UserID
	}

	transaction := &models.Transaction{
		LenderID:    lenderID,
		BorrowerID:  borrowerID,
		ComponentID: componentID,
	}
	if err := s.repo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"transaction_id": transaction.ID,
		"component_id":   componentID,
		"lender_id":      lenderID,
		"borrower_id":    borrowerID,
	}).Info("lending request created")

	return transaction, nil
}

// UpdateStatus applies a status transition to a transaction. Legal moves are
// PENDING to ACTIVE/REJECTED/CANCELLED and ACTIVE to COMPLETED/REJECTED/
// CANCELLED; COMPLETED, REJECTED and CANCELLED are terminal. Re-applying the
// current status is a no-op that still re-syncs the component, so repeated
// updates are idempotent. Moving to ACTIVE marks the component BORROWED;
// any terminal move releases it back to AVAILABLE. Both writes commit in
// one database transaction.
func (s *TransactionService) UpdateStatus(transactionID uuid.UUID, status string, callerID uuid.UUID) (*models.Transaction, error) {
	requested := models.TransactionStatus(status)
	if !requested.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	transaction, err := s.repo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if !transaction.IsParticipant(callerID) {
		return nil, apperrors.ErrNotParticipant
	}

	if !transaction.Status.CanTransitionTo(requested) {
		return nil, apperrors.ErrIllegalTransition
	}

	// A second PENDING request on the same component can only be approved
	// while the component is still free.
	if requested == models.TransactionStatusActive && transaction.Status != models.TransactionStatusActive {
		component, err := s.componentRepo.GetByID(transaction.ComponentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get component: %w", err)
		}
		if component.Status != models.ComponentStatusAvailable {
			return nil, apperrors.ErrItemNotAvailable
		}
	}

	componentStatus := componentStatusFor(requested)
	updated, err := s.repo.UpdateStatusWithComponent(transactionID, requested, componentStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"transaction_id": transactionID,
		"status":         requested,
	}).Info("transaction status updated")

	return updated, nil
}

// GetDashboard returns every transaction the user participates in, newest
// first, along with their minimal identity
func (s *TransactionService) GetDashboard(userID uuid.UUID) (*DashboardResponse, error) {
	transactions, err := s.repo.GetByParticipant(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &DashboardResponse{
		Transactions: transactions,
		CurrentUser: CurrentUserView{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

// componentStatusFor maps a transaction status to the component status it
// forces, or nil when the transition has no component side effect
func componentStatusFor(status models.TransactionStatus) *models.ComponentStatus {
	switch status {
	case models.TransactionStatusActive:
		borrowed := models.ComponentStatusBorrowed
		return &borrowed
	case models.TransactionStatusCompleted, models.TransactionStatusRejected, models.TransactionStatusCancelled:
		available := models.ComponentStatusAvailable
		return &available
	}
	return nil
}
