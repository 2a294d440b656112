package model

import (
	"time"

	"github.com/google/uuid"
)

// ManagerModel is the GORM-specific struct for the 'managers' table.
type ManagerModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ManagerCode    string    `gorm:"type:varchar(32);not null"`
	FirstName      string    `gorm:"type:varchar(100);not null"`
	LastName       string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(10);not null"`
	AssignedAreaID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:varchar(16);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ManagerModel) TableName() string {
	return "managers"
}
