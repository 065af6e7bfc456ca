package models

// User represents a registered student
type User struct {
	BaseModel
	Name            string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email           string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password        string `json:"-" gorm:"not null;size:100"`
	Branch          string `json:"branch" gorm:"size:100"`
	Year            int    `json:"year"`
	ReputationScore int    `json:"reputation_score" gorm:"default:0"`

	// Relationships
	Components   []Component   `json:"components,omitempty" gorm:"foreignKey:UserID"`
	Projects     []Project     `json:"projects,omitempty" gorm:"foreignKey:UserID"`
	LentItems    []Transaction `json:"lent_items,omitempty" gorm:"foreignKey:LenderID"`
	BorrowedItems []Transaction `json:"borrowed_items,omitempty" gorm:"foreignKey:BorrowerID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
