package models

import "github.com/google/uuid"

// Component represents a hardware item listed on the exchange. The listing
// owner either offers it for lending (GIVE) or is looking to borrow one
// (TAKE). Status is mutated only by the transaction lifecycle.
type Component struct {
	BaseModel
	UserID      uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title       string          `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description string          `json:"description" gorm:"type:text"`
	Category    string          `json:"category" gorm:"size:100"`
	ImageURL    string          `json:"image_url" gorm:"size:500" validate:"omitempty,url,max=500"`
	Type        ComponentType   `json:"type" gorm:"type:varchar(20);not null" validate:"required"`
	Status      ComponentStatus `json:"status" gorm:"type:varchar(20);default:'AVAILABLE'"`

	// Relationships
	Owner        User          `json:"owner,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Transactions []Transaction `json:"transactions,omitempty" gorm:"foreignKey:ComponentID"`
}

// TableName returns the table name for Component
func (Component) TableName() string {
	return "components"
}
