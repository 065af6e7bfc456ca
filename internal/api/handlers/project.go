package handlers

import (
	"errors"
	"net/http"

	"campus-exchange-backend/internal/auth"
	apperrors "campus-exchange-backend/internal/errors"
	"campus-exchange-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProjectHandler handles HTTP requests for project write-ups
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects handles GET /projects
// @Summary List projects
// @Description List all project write-ups, newest first
// @Tags projects
// @Produce json
// @Success 200 {array} service.ProjectResponse "Projects"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject handles POST /projects
// @Summary Publish a project
// @Description Create a project write-up owned by the caller
// @Tags projects
// @Accept json
// @Produce json
// @Param request body service.CreateProjectRequest true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.CreateProject(userID, &req)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetRepoInfo handles GET /projects/:id/repo
// @Summary Get project repository metadata
// @Description Resolve the GitHub repository metadata for a project's github link
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} service.RepoInfo "Repository metadata"
// @Failure 400 {object} ErrorResponse "Invalid project ID or no github link"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 502 {object} ErrorResponse "GitHub lookup failed"
// @Router /projects/{id}/repo [get]
func (h *ProjectHandler) GetRepoInfo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	info, err := h.projectService.GetRepoInfo(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsInvalidState(err) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch repository metadata"})
		return
	}

	c.JSON(http.StatusOK, info)
}
