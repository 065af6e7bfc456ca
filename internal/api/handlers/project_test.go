package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-exchange-backend/internal/api/handlers"
	"campus-exchange-backend/internal/database/models"
	apperrors "campus-exchange-backend/internal/errors"
	"campus-exchange-backend/internal/mocks"
	"campus-exchange-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	handler     *handlers.ProjectHandler
	router      *gin.Engine
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.handler = handlers.NewProjectHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.router = gin.New()
	suite.router.GET("/projects", suite.handler.ListProjects)
	suite.router.GET("/projects/:id/repo", suite.handler.GetRepoInfo)
	suite.router.POST("/projects", fakeAuth(suite.userID), suite.handler.CreateProject)
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListProjects tests listing project write-ups
func (suite *ProjectHandlerTestSuite) TestListProjects() {
	responses := []service.ProjectResponse{
		{
			ID:    uuid.New(),
			Title: "Line Follower Robot",
		},
	}

	suite.mockService.EXPECT().
		ListProjects().
		Return(responses, nil).
		Times(1)

	req, _ := http.NewRequest(http.MethodGet, "/projects", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Line Follower Robot")
}

// TestCreateProject tests publishing a project
func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	req := service.CreateProjectRequest{
		Title:       "Line Follower Robot",
		Description: "A PID-tuned line follower",
	}
	project := &models.Project{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    suite.userID,
		Title:     req.Title,
	}

	suite.mockService.EXPECT().
		CreateProject(suite.userID, gomock.Any()).
		Return(project, nil).
		Times(1)

	jsonBytes, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPost, "/projects", bytes.NewBuffer(jsonBytes))
	httpReq.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, httpReq)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Line Follower Robot")
}

// TestGetRepoInfo tests resolving project repository metadata
func (suite *ProjectHandlerTestSuite) TestGetRepoInfo() {
	projectID := uuid.New()
	info := &service.RepoInfo{
		FullName: "test/line-follower",
		Stars:    42,
	}

	suite.mockService.EXPECT().
		GetRepoInfo(gomock.Any(), projectID).
		Return(info, nil).
		Times(1)

	req, _ := http.NewRequest(http.MethodGet, "/projects/"+projectID.String()+"/repo", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "test/line-follower")
}

// TestGetRepoInfoInvalidID tests the lookup with a malformed project ID
func (suite *ProjectHandlerTestSuite) TestGetRepoInfoInvalidID() {
	req, _ := http.NewRequest(http.MethodGet, "/projects/not-a-uuid/repo", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "invalid project ID")
}

// TestGetRepoInfoProjectNotFound tests the lookup for a missing project
func (suite *ProjectHandlerTestSuite) TestGetRepoInfoProjectNotFound() {
	projectID := uuid.New()

	suite.mockService.EXPECT().
		GetRepoInfo(gomock.Any(), projectID).
		Return(nil, apperrors.ErrProjectNotFound).
		Times(1)

	req, _ := http.NewRequest(http.MethodGet, "/projects/"+projectID.String()+"/repo", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetRepoInfoNoLink tests the lookup for a project without a github link
func (suite *ProjectHandlerTestSuite) TestGetRepoInfoNoLink() {
	projectID := uuid.New()

	suite.mockService.EXPECT().
		GetRepoInfo(gomock.Any(), projectID).
		Return(nil, apperrors.ErrNoGithubLink).
		Times(1)

	req, _ := http.NewRequest(http.MethodGet, "/projects/"+projectID.String()+"/repo", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "no github link")
}

// TestGetRepoInfoUpstreamFailure tests a failed GitHub lookup
func (suite *ProjectHandlerTestSuite) TestGetRepoInfoUpstreamFailure() {
	projectID := uuid.New()

	suite.mockService.EXPECT().
		GetRepoInfo(gomock.Any(), projectID).
		Return(nil, errors.New("github: 503 service unavailable")).
		Times(1)

	req, _ := http.NewRequest(http.MethodGet, "/projects/"+projectID.String()+"/repo", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusBadGateway, recorder.Code)
}

// TestProjectHandlerTestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
