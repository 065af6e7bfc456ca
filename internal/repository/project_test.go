//go:build integration
// +build integration

package repository

import (
	"testing"

	"campus-exchange-backend/internal/database/models"
	"campus-exchange-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectRepositoryTestSuite) seedOwner() *models.User {
	owner := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(owner))
	return owner
}

// TestCreate tests publishing a new project write-up
func (suite *ProjectRepositoryTestSuite) TestCreate() {
	owner := suite.seedOwner()
	project := suite.factories.Project.WithOwner(owner.ID)

	err := suite.repo.Create(project)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, project.ID)
}

// TestGetByIDRoundTripsTechStack tests the JSON-serialized tech stack column
func (suite *ProjectRepositoryTestSuite) TestGetByIDRoundTripsTechStack() {
	owner := suite.seedOwner()
	project := suite.factories.Project.WithOwner(owner.ID)
	project.TechStack = []string{"Arduino", "C++", "KiCad"}
	suite.NoError(suite.repo.Create(project))

	found, err := suite.repo.GetByID(project.ID)

	suite.NoError(err)
	suite.Equal([]string{"Arduino", "C++", "KiCad"}, found.TechStack)
}

// TestGetByIDNotFound tests retrieving a non-existent project
func (suite *ProjectRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(uuid.New())

	suite.Nil(found)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAll tests listing all projects with the owner preloaded
func (suite *ProjectRepositoryTestSuite) TestGetAll() {
	owner := suite.seedOwner()
	project := suite.factories.Project.WithOwner(owner.ID)
	suite.NoError(suite.repo.Create(project))

	projects, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(projects, 1)
	suite.Equal(owner.ID, projects[0].Owner.ID)
}

// TestGetByUserID tests fetching only one user's projects
func (suite *ProjectRepositoryTestSuite) TestGetByUserID() {
	owner := suite.seedOwner()
	other := suite.seedOwner()

	mine := suite.factories.Project.WithOwner(owner.ID)
	suite.NoError(suite.repo.Create(mine))

	theirs := suite.factories.Project.WithOwner(other.ID)
	suite.NoError(suite.repo.Create(theirs))

	projects, err := suite.repo.GetByUserID(owner.ID)

	suite.NoError(err)
	suite.Len(projects, 1)
	suite.Equal(mine.ID, projects[0].ID)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
