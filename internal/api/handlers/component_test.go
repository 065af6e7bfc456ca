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

// ComponentHandlerTestSuite defines the test suite for ComponentHandler
type ComponentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockComponentServiceInterface
	handler     *handlers.ComponentHandler
	router      *gin.Engine
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ComponentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockComponentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewComponentHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.router = gin.New()
	suite.router.GET("/components", suite.handler.ListComponents)
	suite.router.POST("/components", fakeAuth(suite.userID), suite.handler.CreateComponent)
}

// TearDownTest cleans up after each test
func (suite *ComponentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListComponents tests listing available components
func (suite *ComponentHandlerTestSuite) TestListComponents() {
	responses := []service.ComponentResponse{
		{
			ID:     uuid.New(),
			Title:  "Arduino Uno R3",
			Type:   models.ComponentTypeGive,
			Status: models.ComponentStatusAvailable,
		},
	}

	suite.mockService.EXPECT().
		ListAvailable().
		Return(responses, nil).
		Times(1)

	req, _ := http.NewRequest(http.MethodGet, "/components", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Arduino Uno R3")
}

// TestListComponentsError tests the 500 path for listing
func (suite *ComponentHandlerTestSuite) TestListComponentsError() {
	suite.mockService.EXPECT().
		ListAvailable().
		Return(nil, errors.New("db connection lost")).
		Times(1)

	req, _ := http.NewRequest(http.MethodGet, "/components", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "error fetching components")
}

// TestCreateComponent tests listing a new component
func (suite *ComponentHandlerTestSuite) TestCreateComponent() {
	req := service.CreateComponentRequest{
		Title: "Raspberry Pi 4",
		Type:  models.ComponentTypeGive,
	}
	component := &models.Component{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    suite.userID,
		Title:     req.Title,
		Type:      req.Type,
		Status:    models.ComponentStatusAvailable,
	}

	suite.mockService.EXPECT().
		CreateComponent(suite.userID, gomock.Any()).
		Return(component, nil).
		Times(1)

	jsonBytes, _ := json.Marshal(req)
	httpReq, _ := http.NewRequest(http.MethodPost, "/components", bytes.NewBuffer(jsonBytes))
	httpReq.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, httpReq)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "Raspberry Pi 4")
}

// TestCreateComponentInvalidType tests rejecting a type outside GIVE/TAKE
func (suite *ComponentHandlerTestSuite) TestCreateComponentInvalidType() {
	suite.mockService.EXPECT().
		CreateComponent(suite.userID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("type", "must be GIVE or TAKE")).
		Times(1)

	jsonBytes, _ := json.Marshal(service.CreateComponentRequest{
		Title: "Oscilloscope",
		Type:  models.ComponentType("SELL"),
	})
	httpReq, _ := http.NewRequest(http.MethodPost, "/components", bytes.NewBuffer(jsonBytes))
	httpReq.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, httpReq)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "must be GIVE or TAKE")
}

// TestCreateComponentUnauthenticated tests creating without auth context
func (suite *ComponentHandlerTestSuite) TestCreateComponentUnauthenticated() {
	router := gin.New()
	router.POST("/components", suite.handler.CreateComponent)

	jsonBytes, _ := json.Marshal(service.CreateComponentRequest{
		Title: "Breadboard",
		Type:  models.ComponentTypeGive,
	})
	httpReq, _ := http.NewRequest(http.MethodPost, "/components", bytes.NewBuffer(jsonBytes))
	httpReq.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httpReq)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestComponentHandlerTestSuite runs the test suite
func TestComponentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentHandlerTestSuite))
}
