package repository

import (
	"campus-exchange-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// ComponentRepositoryInterface defines the interface for component repository
type ComponentRepositoryInterface interface {
	Create(component *models.Component) error
	GetByID(id uuid.UUID) (*models.Component, error)
	GetAvailable() ([]models.Component, error)
	GetByUserID(userID uuid.UUID) ([]models.Component, error)
	UpdateStatus(id uuid.UUID, status models.ComponentStatus) error
}

// ProjectRepositoryInterface defines the interface for project repository
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetAll() ([]models.Project, error)
	GetByUserID(userID uuid.UUID) ([]models.Project, error)
}

// TransactionRepositoryInterface defines the interface for transaction repository
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByParticipant(userID uuid.UUID) ([]models.Transaction, error)
	UpdateStatusWithComponent(id uuid.UUID, status models.TransactionStatus, componentStatus *models.ComponentStatus) (*models.Transaction, error)
}
