package webapi

import (
	"net/http"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/storage"
	"github.com/labstack/echo/v4"
)

type PlaceController struct {
	store storage.Storage
}

func NewPlaceController(store storage.Storage) *PlaceController {
	return &PlaceController{store: store}
}

func (c *PlaceController) ListPlacesOfCity(ctx echo.Context) error {
	city := c.store.Get("City", ctx.Param("city_id"))
	if city == nil {
		return notFound(ctx)
	}

	places := []map[string]any{}
	for _, place := range storage.PlacesOfCity(c.store, city.GetID()) {
		places = append(places, place.AttrMap())
	}
	return ctx.JSON(http.StatusOK, places)
}

func (c *PlaceController) GetPlace(ctx echo.Context) error {
	m := c.store.Get("Place", ctx.Param("place_id"))
	if m == nil {
		return notFound(ctx)
	}
	return ctx.JSON(http.StatusOK, m.AttrMap())
}

func (c *PlaceController) DeletePlace(ctx echo.Context) error {
	m := c.store.Get("Place", ctx.Param("place_id"))
	if m == nil {
		return notFound(ctx)
	}

	c.store.Delete(m)
	if err := c.store.Save(); err != nil {
		return err
	}

	return deleted(ctx)
}

// CreatePlaceInCity creates a place under the city. The owning user must be
// named in the body and exist; the parent city comes from the path.
func (c *PlaceController) CreatePlaceInCity(ctx echo.Context) error {
	city := c.store.Get("City", ctx.Param("city_id"))
	if city == nil {
		return notFound(ctx)
	}

	attrs, ok := decodeAttrs(ctx)
	if !ok {
		return notAJSON(ctx)
	}

	userID, ok := requireString(attrs, "user_id")
	if !ok {
		return missingField(ctx, "user_id")
	}

	if c.store.Get("User", userID) == nil {
		return notFound(ctx)
	}

	if _, ok := requireString(attrs, "name"); !ok {
		return missingField(ctx, "name")
	}

	place, err := model.NewPlace()
	if err != nil {
		return err
	}
	attrs["city_id"] = city.GetID()
	place.Apply(attrs)

	c.store.New(place)
	if err := c.store.Save(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, place.AttrMap())
}

func (c *PlaceController) UpdatePlace(ctx echo.Context) error {
	m := c.store.Get("Place", ctx.Param("place_id"))
	if m == nil {
		return notFound(ctx)
	}

	attrs, ok := decodeAttrs(ctx)
	if !ok {
		return notAJSON(ctx)
	}

	// The owner and the parent city are immutable through this endpoint.
	delete(attrs, "user_id")
	delete(attrs, "city_id")

	m.Apply(attrs)
	m.GetBase().Touch()

	c.store.New(m)
	if err := c.store.Save(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, m.AttrMap())
}
