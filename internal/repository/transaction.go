package repository

import (
	"campus-exchange-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository handles database operations for lending transactions
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create creates a new transaction. Status is always forced to PENDING
// regardless of what the caller set on the struct.
func (r *TransactionRepository) Create(transaction *models.Transaction) error {
	transaction.Status = models.TransactionStatusPending
	return r.db.Create(transaction).Error
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.First(&transaction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// GetByParticipant retrieves all transactions where the user is lender or
// borrower, newest first, with the component and both parties preloaded
// for the dashboard view
func (r *TransactionRepository) GetByParticipant(userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.
		Preload("Component").
		Preload("Lender").
		Preload("Borrower").
		Where("lender_id = ? OR borrower_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// UpdateStatusWithComponent writes the transaction status and, when
// componentStatus is non-nil, the referenced component's status inside a
// single database transaction, so readers never observe one write without
// the other. Returns the updated transaction.
func (r *TransactionRepository) UpdateStatusWithComponent(id uuid.UUID, status models.TransactionStatus, componentStatus *models.ComponentStatus) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&transaction, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&transaction).Update("status", status).Error; err != nil {
			return err
		}
		if componentStatus != nil {
			if err := tx.Model(&models.Component{}).
				Where("id = ?", transaction.ComponentID).
				Update("status", *componentStatus).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}
