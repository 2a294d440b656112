package context

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyActorID is the key for storing the authenticated subject id.
	KeyActorID ContextKey = "actor_id"

	// KeyActorRole is the key for storing the authenticated subject role.
	KeyActorRole ContextKey = "actor_role"
)

// SetActor stores the authenticated subject in echo.Context and in the request context.
func SetActor(c echo.Context, id uuid.UUID, role entity.Role) {
	c.Set(string(KeyActorID), id)
	c.Set(string(KeyActorRole), role)

	ctx := context.WithValue(c.Request().Context(), KeyActorID, id)
	ctx = context.WithValue(ctx, KeyActorRole, role)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetActorID returns the authenticated subject id stored by the auth middleware.
func GetActorID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyActorID)).(uuid.UUID)

	return id, ok
}

// GetActorRole returns the authenticated subject role stored by the auth middleware.
func GetActorRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(string(KeyActorRole)).(entity.Role)

	return role, ok
}

// GetActorIDFromContext extracts the authenticated subject id from context.Context.
func GetActorIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyActorID).(uuid.UUID)

	return id, ok
}
