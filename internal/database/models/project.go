package models

import "github.com/google/uuid"

// Project represents a student project write-up
type Project struct {
	BaseModel
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title       string    `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description string    `json:"description" gorm:"type:text" validate:"required"`
	TechStack   []string  `json:"tech_stack" gorm:"serializer:json"`
	GithubLink  string    `json:"github_link" gorm:"size:500" validate:"omitempty,url,max=500"`
	ImageURL    string    `json:"image_url" gorm:"size:500" validate:"omitempty,url,max=500"`

	// Relationships
	Owner User `json:"owner,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
