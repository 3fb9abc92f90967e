package webapi

import (
	"net/http"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/storage"
	"github.com/labstack/echo/v4"
)

type StateController struct {
	store storage.Storage
}

func NewStateController(store storage.Storage) *StateController {
	return &StateController{store: store}
}

func (c *StateController) ListStates(ctx echo.Context) error {
	states := []map[string]any{}
	for _, m := range c.store.All("State") {
		states = append(states, m.AttrMap())
	}
	return ctx.JSON(http.StatusOK, states)
}

func (c *StateController) GetState(ctx echo.Context) error {
	m := c.store.Get("State", ctx.Param("state_id"))
	if m == nil {
		return notFound(ctx)
	}
	return ctx.JSON(http.StatusOK, m.AttrMap())
}

func (c *StateController) DeleteState(ctx echo.Context) error {
	m := c.store.Get("State", ctx.Param("state_id"))
	if m == nil {
		return notFound(ctx)
	}

	c.store.Delete(m)
	if err := c.store.Save(); err != nil {
		return err
	}

	return deleted(ctx)
}

func (c *StateController) CreateState(ctx echo.Context) error {
	attrs, ok := decodeAttrs(ctx)
	if !ok {
		return notAJSON(ctx)
	}

	if _, ok := requireString(attrs, "name"); !ok {
		return missingField(ctx, "name")
	}

	state, err := model.NewState()
	if err != nil {
		return err
	}
	state.Apply(attrs)

	c.store.New(state)
	if err := c.store.Save(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, state.AttrMap())
}

func (c *StateController) UpdateState(ctx echo.Context) error {
	m := c.store.Get("State", ctx.Param("state_id"))
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
