package service

import (
	"context"

	"campus-exchange-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Register(req *RegisterRequest) (*UserResponse, error)
	Login(req *LoginRequest) (*LoginResult, error)
	GetProfile(userID uuid.UUID) (*ProfileResponse, error)
}

// ComponentServiceInterface defines the interface for component service
type ComponentServiceInterface interface {
	CreateComponent(userID uuid.UUID, req *CreateComponentRequest) (*models.Component, error)
	ListAvailable() ([]ComponentResponse, error)
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	CreateProject(userID uuid.UUID, req *CreateProjectRequest) (*models.Project, error)
	ListProjects() ([]ProjectResponse, error)
	GetRepoInfo(ctx context.Context, projectID uuid.UUID) (*RepoInfo, error)
}

// TransactionServiceInterface defines the interface for transaction service
type TransactionServiceInterface interface {
	CreateRequest(componentID, requesterID uuid.UUID) (*models.Transaction, error)
	UpdateStatus(transactionID uuid.UUID, status string, callerID uuid.UUID) (*models.Transaction, error)
	GetDashboard(userID uuid.UUID) (*DashboardResponse, error)
}

// GitHubServiceInterface defines the interface for GitHub repo lookups
type GitHubServiceInterface interface {
	GetRepositoryInfo(ctx context.Context, repoURL string) (*RepoInfo, error)
}
