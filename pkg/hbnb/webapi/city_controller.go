package webapi

import (
	"net/http"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/storage"
	"github.com/labstack/echo/v4"
)

type CityController struct {
	store storage.Storage
}

func NewCityController(store storage.Storage) *CityController {
	return &CityController{store: store}
}

func (c *CityController) ListCitiesOfState(ctx echo.Context) error {
	state := c.store.Get("State", ctx.Param("state_id"))
	if state == nil {
		return notFound(ctx)
	}

	cities := []map[string]any{}
	for _, city := range storage.CitiesOfState(c.store, state.GetID()) {
		cities = append(cities, city.AttrMap())
	}
	return ctx.JSON(http.StatusOK, cities)
}

func (c *CityController) GetCity(ctx echo.Context) error {
	m := c.store.Get("City", ctx.Param("city_id"))
	if m == nil {
		return notFound(ctx)
	}
	return ctx.JSON(http.StatusOK, m.AttrMap())
}

func (c *CityController) DeleteCity(ctx echo.Context) error {
	m := c.store.Get("City", ctx.Param("city_id"))
	if m == nil {
		return notFound(ctx)
	}

	c.store.Delete(m)
	if err := c.store.Save(); err != nil {
		return err
	}

	return deleted(ctx)
}

func (c *CityController) CreateCityInState(ctx echo.Context) error {
	state := c.store.Get("State", ctx.Param("state_id"))
	if state == nil {
		return notFound(ctx)
	}

	attrs, ok := decodeAttrs(ctx)
	if !ok {
		return notAJSON(ctx)
	}

	if _, ok := requireString(attrs, "name"); !ok {
		return missingField(ctx, "name")
	}

	city, err := model.NewCity()
	if err != nil {
		return err
	}
	attrs["state_id"] = state.GetID()
	city.Apply(attrs)

	c.store.New(city)
	if err := c.store.Save(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, city.AttrMap())
}

func (c *CityController) UpdateCity(ctx echo.Context) error {
	m := c.store.Get("City", ctx.Param("city_id"))
	if m == nil {
		return notFound(ctx)
	}

	attrs, ok := decodeAttrs(ctx)
	if !ok {
		return notAJSON(ctx)
	}

	// The parent state is immutable through this endpoint.
	delete(attrs, "state_id")

	m.Apply(attrs)
	m.GetBase().Touch()

	c.store.New(m)
	if err := c.store.Save(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, m.AttrMap())
}
