package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents a lending agreement between two users over one
// component. Which party is lender and which is borrower is fixed at
// creation from the component's listing type. StartDate, EndDate and the
// rating fields are carried for forward compatibility; no behavior reads
// them yet.
type Transaction struct {
	BaseModel
	LenderID    uuid.UUID         `json:"lender_id" gorm:"type:uuid;not null;index" validate:"required"`
	BorrowerID  uuid.UUID         `json:"borrower_id" gorm:"type:uuid;not null;index" validate:"required"`
	ComponentID uuid.UUID         `json:"component_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status      TransactionStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`

	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	LenderRating   *int       `json:"lender_rating,omitempty" validate:"omitempty,min=1,max=5"`
	BorrowerRating *int       `json:"borrower_rating,omitempty" validate:"omitempty,min=1,max=5"`

	// Relationships
	Lender    User      `json:"lender,omitempty" gorm:"foreignKey:LenderID;constraint:OnDelete:CASCADE"`
	Borrower  User      `json:"borrower,omitempty" gorm:"foreignKey:BorrowerID;constraint:OnDelete:CASCADE"`
	Component Component `json:"component,omitempty" gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// IsParticipant reports whether the given user is the lender or borrower
func (t *Transaction) IsParticipant(userID uuid.UUID) bool {
	return t.LenderID == userID || t.BorrowerID == userID
}
