package repository

import (
	"campus-exchange-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComponentRepository handles database operations for component listings
type ComponentRepository struct {
	db *gorm.DB
}

// NewComponentRepository creates a new component repository
func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// Create creates a new component listing
func (r *ComponentRepository) Create(component *models.Component) error {
	return r.db.Create(component).Error
}

// GetByID retrieves a component by ID
func (r *ComponentRepository) GetByID(id uuid.UUID) (*models.Component, error) {
	var component models.Component
	err := r.db.First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// GetAvailable retrieves all components with status AVAILABLE, newest first,
// with the owner preloaded for the public listing view
func (r *ComponentRepository) GetAvailable() ([]models.Component, error) {
	var components []models.Component
	err := r.db.
		Preload("Owner").
		Where("status = ?", models.ComponentStatusAvailable).
		Order("created_at DESC").
		Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// GetByUserID retrieves all components owned by a user, newest first
func (r *ComponentRepository) GetByUserID(userID uuid.UUID) ([]models.Component, error) {
	var components []models.Component
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&components).Error
	if err != nil {
		return nil, err
	}
	return components, nil
}

// UpdateStatus sets the status of a component. Last write wins; there is no
// optimistic-concurrency check on the previous status.
func (r *ComponentRepository) UpdateStatus(id uuid.UUID, status models.ComponentStatus) error {
	return r.db.Model(&models.Component{}).Where("id = ?", id).Update("status", status).Error
}
