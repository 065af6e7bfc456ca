package service

import (
	"fmt"

	"campus-exchange-backend/internal/database/models"
	apperrors "campus-exchange-backend/internal/errors"
	"campus-exchange-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ComponentService handles business logic for component listings
type ComponentService struct {
	repo      repository.ComponentRepositoryInterface
	validator *validator.Validate
}

// NewComponentService creates a new component service
func NewComponentService(repo repository.ComponentRepositoryInterface, validator *validator.Validate) *ComponentService {
	return &ComponentService{
		repo:      repo,
		validator: validator,
	}
}

// CreateComponentRequest represents the data needed to list a component
type CreateComponentRequest struct {
	Title       string               `json:"title" validate:"required,max=200"`
	Description string               `json:"description"`
	Category    string               `json:"category" validate:"max=100"`
	ImageURL    string               `json:"image_url" validate:"omitempty,url,max=500"`
	Type        models.ComponentType `json:"type" validate:"required"`
}

// OwnerView is the minimal owner info shown on public listings
type OwnerView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Branch          string    `json:"branch"`
	Year            int       `json:"year"`
	ReputationScore int       `json:"reputation_score"`
}

// ComponentResponse represents the response data for a listed component
type ComponentResponse struct {
	ID          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	ImageURL    string                 `json:"image_url,omitempty"`
	Type        models.ComponentType   `json:"type"`
	Status      models.ComponentStatus `json:"status"`
	Owner       OwnerView              `json:"owner"`
	CreatedAt   string                 `json:"created_at"`
}

// CreateComponent lists a new component for the given owner. Status always
// starts as AVAILABLE; only the transaction lifecycle changes it later.
func (s *ComponentService) CreateComponent(userID uuid.UUID, req *CreateComponentRequest) (*models.Component, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "must be GIVE or TAKE")
	}

	component := &models.Component{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Type:        req.Type,
		Status:      models.ComponentStatusAvailable,
	}

	if err := s.repo.Create(component); err != nil {
		return nil, fmt.Errorf("failed to create component: %w", err)
	}

	return component, nil
}

// ListAvailable returns all AVAILABLE components, newest first, with the
// owner reduced to the public view
func (s *ComponentService) ListAvailable() ([]ComponentResponse, error) {
	components, err := s.repo.GetAvailable()
	if err != nil {
		return nil, fmt.Errorf("failed to get components: %w", err)
	}

	responses := make([]ComponentResponse, len(components))
	for i, component := range components {
		responses[i] = ComponentResponse{
			ID:          component.ID,
			Title:       component.Title,
			Description: component.Description,
			Category:    component.Category,
			ImageURL:    component.ImageURL,
			Type:        component.Type,
			Status:      component.Status,
			Owner: OwnerView{
				ID:              component.Owner.ID,
				Name:            component.Owner.Name,
				Branch:          component.Owner.Branch,
				Year:            component.Owner.Year,
				ReputationScore: component.Owner.ReputationScore,
			},
			CreatedAt: component.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return responses, nil
}
