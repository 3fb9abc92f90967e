package webapi

import (
	"net/http"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/storage"
	"github.com/labstack/echo/v4"
)

// PlaceAmenityController manages the many-to-many link between places and
// amenities. Linking twice answers 200 with the existing link; a fresh link
// answers 201; unlinking a pair that doesn't exist is a 404.
type PlaceAmenityController struct {
	store storage.Storage
}

func NewPlaceAmenityController(store storage.Storage) *PlaceAmenityController {
	return &PlaceAmenityController{store: store}
}

func (c *PlaceAmenityController) ListAmenitiesOfPlace(ctx echo.Context) error {
	m := c.store.Get("Place", ctx.Param("place_id"))
	if m == nil {
		return notFound(ctx)
	}

	amenities := []map[string]any{}
	for _, amenity := range storage.AmenitiesOfPlace(c.store, m.(*model.Place)) {
		amenities = append(amenities, amenity.AttrMap())
	}
	return ctx.JSON(http.StatusOK, amenities)
}

func (c *PlaceAmenityController) LinkAmenityToPlace(ctx echo.Context) error {
	place, amenity, err := c.linkEnds(ctx)
	if err != nil {
		return notFound(ctx)
	}

	linked, err := storage.LinkAmenity(c.store, place, amenity)
	if err != nil {
		return err
	}

	if !linked {
		return ctx.JSON(http.StatusOK, amenity.AttrMap())
	}

	if err := c.store.Save(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, amenity.AttrMap())
}

func (c *PlaceAmenityController) UnlinkAmenityFromPlace(ctx echo.Context) error {
	place, amenity, err := c.linkEnds(ctx)
	if err != nil {
		return notFound(ctx)
	}

	unlinked, err := storage.UnlinkAmenity(c.store, place, amenity)
	if err != nil {
		return err
	}

	if !unlinked {
		return notFound(ctx)
	}

	if err := c.store.Save(); err != nil {
		return err
	}

	return deleted(ctx)
}

func (c *PlaceAmenityController) linkEnds(ctx echo.Context) (*model.Place, *model.Amenity, error) {
	place := c.store.Get("Place", ctx.Param("place_id"))
	amenity := c.store.Get("Amenity", ctx.Param("amenity_id"))
	if place == nil || amenity == nil {
		return nil, nil, echo.ErrNotFound
	}

	return place.(*model.Place), amenity.(*model.Amenity), nil
}
