package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OfferingModel is the GORM-specific struct for the 'services' table.
type OfferingModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name              string         `gorm:"type:varchar(255);not null"`
	Description       string         `gorm:"type:text;not null"`
	AreaID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Category          string         `gorm:"type:varchar(32);not null"`
	BasePrice         float64        `gorm:"type:numeric(12,2);not null"`
	PriceUnit         string         `gorm:"type:varchar(32);not null"`
	Active            bool           `gorm:"not null"`
	RequiredSkills    pq.StringArray `gorm:"type:text[];not null"`
	EstimatedDuration float64        `gorm:"type:numeric(8,2);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferingModel) TableName() string {
	return "services"
}
