package webapi

import (
	"net/http"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/storage"
	"github.com/labstack/echo/v4"
)

type StatusController struct {
	store storage.Storage
}

func NewStatusController(store storage.Storage) *StatusController {
	return &StatusController{store: store}
}

func (c *StatusController) GetStatus(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "OK"})
}

// GetStats returns the number of live objects per entity type.
func (c *StatusController) GetStats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]int{
		"amenities": c.store.Count("Amenity"),
		"cities":    c.store.Count("City"),
		"places":    c.store.Count("Place"),
		"reviews":   c.store.Count("Review"),
		"states":    c.store.Count("State"),
		"users":     c.store.Count("User"),
	})
}
