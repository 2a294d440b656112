package entity

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	loc, err := NewLocation([]float64{-122.4, 37.8})
	require.NoError(t, err)
	assert.Equal(t, []float64{-122.4, 37.8}, loc.Coordinates())
	assert.InDelta(t, -122.4, loc.Longitude(), 1e-9)
	assert.InDelta(t, 37.8, loc.Latitude(), 1e-9)
}

func TestNewLocation_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		coordinates []float64
		wantErr     error
	}{
		{name: "empty", coordinates: nil, wantErr: ErrCoordinatesShape},
		{name: "three values", coordinates: []float64{1, 2, 3}, wantErr: ErrCoordinatesShape},
		{name: "longitude too small", coordinates: []float64{-180.5, 0}, wantErr: ErrLongitudeRange},
		{name: "latitude too large", coordinates: []float64{0, 90.1}, wantErr: ErrLatitudeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocation(tt.coordinates)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLocation_JSON(t *testing.T) {
	loc, err := NewLocation([]float64{-122.4, 37.8})
	require.NoError(t, err)

	data, err := json.Marshal(loc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[-122.4,37.8]}`, string(data))

	var decoded Location
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, loc, decoded)
}

func TestLocation_UnmarshalRejectsNonPoint(t *testing.T) {
	var loc Location
	err := json.Unmarshal([]byte(`{"type":"LineString","coordinates":[[0,0],[1,1]]}`), &loc)
	assert.Error(t, err)
}

func TestLocation_DistanceKm(t *testing.T) {
	downtown, err := NewLocation([]float64{-122.4, 37.8})
	require.NoError(t, err)

	assert.InDelta(t, 0, downtown.DistanceKm(orb.Point{-122.4, 37.8}), 1e-6)
	// 0.13 degrees of longitude at this latitude.
	assert.InDelta(t, 11.4, downtown.DistanceKm(orb.Point{-122.27, 37.8}), 0.5)
}
