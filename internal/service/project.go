package service

import (
	"context"
	"errors"
	"fmt"

	"campus-exchange-backend/internal/database/models"
	apperrors "campus-exchange-backend/internal/errors"
	"campus-exchange-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for project write-ups
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	github    GitHubServiceInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, github GitHubServiceInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		github:    github,
		validator: validator,
	}
}

// CreateProjectRequest represents the data needed to publish a project
type CreateProjectRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	TechStack   []string `json:"tech_stack"`
	GithubLink  string   `json:"github_link" validate:"omitempty,url,max=500"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url,max=500"`
}

// ProjectResponse represents the response data for a project
type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   []string  `json:"tech_stack"`
	GithubLink  string    `json:"github_link,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Owner       OwnerView `json:"owner"`
	CreatedAt   string    `json:"created_at"`
}

// CreateProject publishes a new project write-up for the given user
func (s *ProjectService) CreateProject(userID uuid.UUID, req *CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project := &models.Project{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		GithubLink:  req.GithubLink,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// ListProjects returns all project write-ups, newest first, with the owner
// reduced to the public view
func (s *ProjectService) ListProjects() ([]ProjectResponse, error) {
	projects, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = ProjectResponse{
			ID:          project.ID,
			Title:       project.Title,
			Description: project.Description,
			TechStack:   project.TechStack,
			GithubLink:  project.GithubLink,
			ImageURL:    project.ImageURL,
			Owner: OwnerView{
				ID:              project.Owner.ID,
				Name:            project.Owner.Name,
				Branch:          project.Owner.Branch,
				Year:            project.Owner.Year,
				ReputationScore: project.Owner.ReputationScore,
			},
			CreatedAt: project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return responses, nil
}

// GetRepoInfo resolves the GitHub repository metadata for a project's
// github link
func (s *ProjectService) GetRepoInfo(ctx context.Context, projectID uuid.UUID) (*RepoInfo, error) {
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project.GithubLink == "" {
		return nil, apperrors.ErrNoGithubLink
	}

	return s.github.GetRepositoryInfo(ctx, project.GithubLink)
}
