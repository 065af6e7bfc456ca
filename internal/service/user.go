package service

import (
	"errors"
	"fmt"

	"campus-exchange-backend/internal/auth"
	"campus-exchange-backend/internal/database/models"
	apperrors "campus-exchange-backend/internal/errors"
	"campus-exchange-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles registration, login and profile aggregation
type UserService struct {
	repo          repository.UserRepositoryInterface
	projectRepo   repository.ProjectRepositoryInterface
	componentRepo repository.ComponentRepositoryInterface
	authService   *auth.Service
	validator     *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, componentRepo repository.ComponentRepositoryInterface, authService *auth.Service, validator *validator.Validate) *UserService {
	return &UserService{
		repo:          repo,
		projectRepo:   projectRepo,
		componentRepo: componentRepo,
		authService:   authService,
		validator:     validator,
	}
}

// RegisterRequest represents the data needed to register a user
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Branch   string `json:"branch" validate:"max=100"`
	Year     int    `json:"year" validate:"omitempty,min=1,max=6"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse represents the response data for a user
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Branch          string    `json:"branch"`
	Year            int       `json:"year"`
	ReputationScore int       `json:"reputation_score"`
	CreatedAt       string    `json:"created_at"`
}

// LoginResult carries the issued token and the minimal user identity
type LoginResult struct {
	Token string          `json:"token"`
	User  CurrentUserView `json:"user"`
}

// ProfileResponse aggregates a user with their projects and listed inventory
type ProfileResponse struct {
	User      UserResponse         `json:"user"`
	Projects  []models.Project     `json:"projects"`
	Inventory []models.Component   `json:"inventory"`
}

// Register creates a new user with a bcrypt-hashed password
func (s *UserService) Register(req *RegisterRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		Branch:   req.Branch,
		Year:     req.Year,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.convertToResponse(user), nil
}

// Login verifies credentials and issues a session token. Lookup and
// password failures return the same error so the response does not leak
// which one failed.
func (s *UserService) Login(req *LoginRequest) (*LoginResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.ComparePassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.authService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{
		Token: token,
		User: CurrentUserView{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

// GetProfile returns a user's details together with their published
// projects and listed component inventory, each newest first
func (s *UserService) GetProfile(userID uuid.UUID) (*ProfileResponse, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	projects, err := s.projectRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	inventory, err := s.componentRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}

	return &ProfileResponse{
		User:      *s.convertToResponse(user),
		Projects:  projects,
		Inventory: inventory,
	}, nil
}

func (s *UserService) convertToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Branch:          user.Branch,
		Year:            user.Year,
		ReputationScore: user.ReputationScore,
		CreatedAt:       user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
