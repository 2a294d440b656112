package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Coordinate validation errors.
var (
	ErrCoordinatesShape = errors.New("coordinates must be a [longitude, latitude] pair")
	ErrLongitudeRange   = errors.New("longitude must be between -180 and 180")
	ErrLatitudeRange    = errors.New("latitude must be between -90 and 90")
)

// Area is a geographic service region managers and services are tied to.
type Area struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    Location  `json:"location"`
	Country     string    `json:"country"`
	State       string    `json:"state"`
	City        string    `json:"city"`
	ZipCodes    []string  `json:"zipCodes"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Location is the canonical point geometry of an area.
// It renders as a GeoJSON Point with [longitude, latitude] coordinates.
type Location struct {
	Point orb.Point
}

// NewLocation builds a Location from a raw [lon, lat] pair.
func NewLocation(coordinates []float64) (Location, error) {
	if len(coordinates) != 2 {
		return Location{}, ErrCoordinatesShape
	}

	lon, lat := coordinates[0], coordinates[1]
	if lon < -180 || lon > 180 {
		return Location{}, ErrLongitudeRange
	}
	if lat < -90 || lat > 90 {
		return Location{}, ErrLatitudeRange
	}

	return Location{Point: orb.Point{lon, lat}}, nil
}

// Longitude of the point.
func (l Location) Longitude() float64 {
	return l.Point.Lon()
}

// Latitude of the point.
func (l Location) Latitude() float64 {
	return l.Point.Lat()
}

// Coordinates returns the point as a [lon, lat] slice.
func (l Location) Coordinates() []float64 {
	return []float64{l.Point.Lon(), l.Point.Lat()}
}

// DistanceKm returns the great-circle distance to p in kilometres.
func (l Location) DistanceKm(p orb.Point) float64 {
	return geo.Distance(l.Point, p) / 1000
}

// MarshalJSON renders the location as a GeoJSON Point.
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal(geojson.NewGeometry(l.Point))
}

// UnmarshalJSON accepts a GeoJSON Point.
func (l *Location) UnmarshalJSON(data []byte) error {
	geometry, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return errors.Wrap(err, "invalid location geometry")
	}

	point, ok := geometry.Coordinates.(orb.Point)
	if !ok {
		return errors.Errorf("location must be a Point, got %s", geometry.Type)
	}

	loc, err := NewLocation([]float64{point.Lon(), point.Lat()})
	if err != nil {
		return err
	}
	*l = loc

	return nil
}
