package handler

import (
	"strconv"
	"strings"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
)

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID")
	}

	return id, nil
}

// bindQuery binds query parameters by their `query` tags and validates them.
func bindQuery(c echo.Context, query any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, query); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("query parameters are malformed")
	}

	return c.Validate(query)
}

func actorID(c echo.Context) (uuid.UUID, error) {
	id, ok := deliverycontext.GetActorID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	return id, nil
}

func optionalUUID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	// Already validated by the `uuid` tag.
	id := uuid.MustParse(raw)

	return &id
}

func optionalBool(raw string) *bool {
	if raw == "" {
		return nil
	}
	// Already validated by the `boolean` tag.
	v, _ := strconv.ParseBool(raw)

	return &v
}

// parseNear reads a "lon,lat" pair.
func parseNear(raw string) (*orb.Point, error) {
	if raw == "" {
		return nil, nil
	}

	lonText, latText, found := strings.Cut(raw, ",")
	if !found {
		return nil, domainerrors.ErrValidationFailed.WithDetails("near must be formatted as lon,lat")
	}
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(lonText), 64)
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if lonErr != nil || latErr != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("near must be formatted as lon,lat")
	}

	location, err := entity.NewLocation([]float64{lon, lat})
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return &location.Point, nil
}
