package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// APIEndpoint is a registered API endpoint
type APIEndpoint struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Path        string    `json:"path" gorm:"not null"`
	Method      string    `json:"method" gorm:"not null"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (APIEndpoint) TableName() string {
	return "api_endpoints"
}

// BeforeCreate assigns an id to records that arrive without one.
func (e *APIEndpoint) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// EndpointInput is the body accepted by create and update.
type EndpointInput struct {
	Name        string  `json:"name" validate:"required"`
	Path        string  `json:"path" validate:"required"`
	Method      string  `json:"method" validate:"required"`
	Description *string `json:"description"`
}
