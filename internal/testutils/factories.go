package testutils

import (
	"time"

	"campus-exchange-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Unique email per user to satisfy the unique index
	email := "student-" + id.String()[:8] + "@campus.edu"

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "Test Student",
		Email:           email,
		Password:        "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Branch:          "ECE",
		Year:            3,
		ReputationScore: 0,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithName sets a custom name for the user
func (f *UserFactory) WithName(name string) *models.User {
	user := f.Create()
	user.Name = name
	return user
}

// ComponentFactory provides methods to create test Component data
type ComponentFactory struct{}

// NewComponentFactory creates a new ComponentFactory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{}
}

// Create creates a test Component with default values
func (f *ComponentFactory) Create() *models.Component {
	return &models.Component{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:      uuid.New(),
		Title:       "Arduino Uno R3",
		Description: "Spare board from last semester's project",
		Category:    "Microcontrollers",
		ImageURL:    "https://images.test.com/arduino.jpg",
		Type:        models.ComponentTypeGive,
		Status:      models.ComponentStatusAvailable,
	}
}

// WithOwner sets the owning user ID for the component
func (f *ComponentFactory) WithOwner(userID uuid.UUID) *models.Component {
	component := f.Create()
	component.UserID = userID
	return component
}

// WithType sets a custom listing type for the component
func (f *ComponentFactory) WithType(componentType models.ComponentType) *models.Component {
	component := f.Create()
	component.Type = componentType
	return component
}

// WithStatus sets a custom status for the component
func (f *ComponentFactory) WithStatus(status models.ComponentStatus) *models.Component {
	component := f.Create()
	component.Status = status
	return component
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:      uuid.New(),
		Title:       "Line Follower Robot",
		Description: "A PID-tuned line follower built for the annual robotics meet",
		TechStack:   []string{"Arduino", "C++"},
		GithubLink:  "https://github.com/test/line-follower",
		ImageURL:    "https://images.test.com/robot.jpg",
	}
}

// WithOwner sets the owning user ID for the project
func (f *ProjectFactory) WithOwner(userID uuid.UUID) *models.Project {
	project := f.Create()
	project.UserID = userID
	return project
}

// WithGithubLink sets a custom GitHub link for the project
func (f *ProjectFactory) WithGithubLink(link string) *models.Project {
	project := f.Create()
	project.GithubLink = link
	return project
}

// TransactionFactory provides methods to create test Transaction data
type TransactionFactory struct{}

// NewTransactionFactory creates a new TransactionFactory
func NewTransactionFactory() *TransactionFactory {
	return &TransactionFactory{}
}

// Create creates a test Transaction with default values
func (f *TransactionFactory) Create() *models.Transaction {
	return &models.Transaction{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LenderID:    uuid.New(),
		BorrowerID:  uuid.New(),
		ComponentID: uuid.New(),
		Status:      models.TransactionStatusPending,
	}
}

// WithParticipants sets the lender and borrower IDs for the transaction
func (f *TransactionFactory) WithParticipants(lenderID, borrowerID uuid.UUID) *models.Transaction {
	transaction := f.Create()
	transaction.LenderID = lenderID
	transaction.BorrowerID = borrowerID
	return transaction
}

// WithComponent sets the component ID for the transaction
func (f *TransactionFactory) WithComponent(componentID uuid.UUID) *models.Transaction {
	transaction := f.Create()
	transaction.ComponentID = componentID
	return transaction
}

// WithStatus sets a custom status for the transaction
func (f *TransactionFactory) WithStatus(status models.TransactionStatus) *models.Transaction {
	transaction := f.Create()
	transaction.Status = status
	return transaction
}

// FactorySet provides access to all factories
type FactorySet struct {
	User        *UserFactory
	Component   *ComponentFactory
	Project     *ProjectFactory
	Transaction *TransactionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        NewUserFactory(),
		Component:   NewComponentFactory(),
		Project:     NewProjectFactory(),
		Transaction: NewTransactionFactory(),
	}
}

// CreateLendingScenario creates a lender with an AVAILABLE listing, a borrower
// and a PENDING transaction tying them together
func (fs *FactorySet) CreateLendingScenario() (*models.User, *models.User, *models.Component, *models.Transaction) {
	lender := fs.User.WithName("Lender")
	borrower := fs.User.WithName("Borrower")

	component := fs.Component.WithOwner(lender.ID)

	transaction := fs.Transaction.WithParticipants(lender.ID, borrower.ID)
	transaction.ComponentID = component.ID

	return lender, borrower, component, transaction
}
