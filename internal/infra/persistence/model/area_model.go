package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AreaModel is the GORM-specific struct for the 'areas' table.
// The point is stored as separate longitude/latitude columns.
type AreaModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text;not null"`
	Longitude   float64        `gorm:"type:double precision;not null"`
	Latitude    float64        `gorm:"type:double precision;not null"`
	Country     string         `gorm:"type:varchar(100);not null"`
	State       string         `gorm:"type:varchar(100);not null"`
	City        string         `gorm:"type:varchar(100);not null"`
	ZipCodes    pq.StringArray `gorm:"type:text[];not null"`
	Active      bool           `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AreaModel) TableName() string {
	return "areas"
}
