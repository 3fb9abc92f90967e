package webapi

import (
	"net/http"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/storage"
	"github.com/labstack/echo/v4"
)

type AmenityController struct {
	store storage.Storage
}

func NewAmenityController(store storage.Storage) *AmenityController {
	return &AmenityController{store: store}
}

func (c *AmenityController) ListAmenities(ctx echo.Context) error {
	amenities := []map[string]any{}
	for _, m := range c.store.All("Amenity") {
		amenities = append(amenities, m.AttrMap())
	}
	return ctx.JSON(http.StatusOK, amenities)
}

func (c *AmenityController) GetAmenity(ctx echo.Context) error {
	m := c.store.Get("Amenity", ctx.Param("amenity_id"))
	if m == nil {
		return notFound(ctx)
	}
	return ctx.JSON(http.StatusOK, m.AttrMap())
}

func (c *AmenityController) DeleteAmenity(ctx echo.Context) error {
	m := c.store.Get("Amenity", ctx.Param("amenity_id"))
	if m == nil {
		return notFound(ctx)
	}

	c.store.Delete(m)
	if err := c.store.Save(); err != nil {
		return err
	}

	return deleted(ctx)
}

func (c *AmenityController) CreateAmenity(ctx echo.Context) error {
	attrs, ok := decodeAttrs(ctx)
	if !ok {
		return notAJSON(ctx)
	}

	if _, ok := requireString(attrs, "name"); !ok {
		return missingField(ctx, "name")
	}

	amenity, err := model.NewAmenity()
	if err != nil {
		return err
	}
	amenity.Apply(attrs)

	c.store.New(amenity)
	if err := c.store.Save(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, amenity.AttrMap())
}

func (c *AmenityController) UpdateAmenity(ctx echo.Context) error {
	m := c.store.Get("Amenity", ctx.Param("amenity_id"))
	if m == nil {
		return notFound(ctx)
	}

	attrs, ok := decodeAttrs(ctx)
	if !ok {
		return notAJSON(ctx)
	}

	m.Apply(attrs)
	m.GetBase().Touch()

	c.store.New(m)
	if err := c.store.Save(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, m.AttrMap())
}
