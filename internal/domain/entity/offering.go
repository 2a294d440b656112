package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a service offering.
type Category string

const (
	CategoryFarmMaintenance Category = "farm_maintenance"
	CategoryHomeCleaning    Category = "home_cleaning"
	CategoryHousePainting   Category = "house_painting"
	CategoryBlightRemoval   Category = "blight_removal"
	CategoryTreeServices    Category = "tree_services"
	CategoryOther           Category = "other"
)

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFarmMaintenance, CategoryHomeCleaning, CategoryHousePainting,
		CategoryBlightRemoval, CategoryTreeServices, CategoryOther:
		return true
	default:
		return false
	}
}

// PriceUnit is the unit a base price is quoted in.
type PriceUnit string

const (
	PriceUnitPerHour        PriceUnit = "per_hour"
	PriceUnitPerSquareMeter PriceUnit = "per_square_meter"
	PriceUnitPerJob         PriceUnit = "per_job"
)

// IsValid checks if the PriceUnit is a valid value.
func (u PriceUnit) IsValid() bool {
	switch u {
	case PriceUnitPerHour, PriceUnitPerSquareMeter, PriceUnitPerJob:
		return true
	default:
		return false
	}
}

// Offering is a service sold within one area. It is exposed as "service" on the API.
type Offering struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	AreaID            uuid.UUID `json:"areaId"`
	Category          Category  `json:"category"`
	BasePrice         float64   `json:"basePrice"`
	PriceUnit         PriceUnit `json:"priceUnit"`
	Active            bool      `json:"active"`
	RequiredSkills    []string  `json:"requiredSkills"`
	EstimatedDuration float64   `json:"estimatedDuration"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
