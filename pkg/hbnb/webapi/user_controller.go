package webapi

import (
	"net/http"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/storage"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	store storage.Storage
}

func NewUserController(store storage.Storage) *UserController {
	return &UserController{store: store}
}

func (c *UserController) ListUsers(ctx echo.Context) error {
	users := []map[string]any{}
	for _, m := range c.store.All("User") {
		users = append(users, m.AttrMap())
	}
	return ctx.JSON(http.StatusOK, users)
}

func (c *UserController) GetUser(ctx echo.Context) error {
	m := c.store.Get("User", ctx.Param("user_id"))
	if m == nil {
		return notFound(ctx)
	}
	return ctx.JSON(http.StatusOK, m.AttrMap())
}

func (c *UserController) DeleteUser(ctx echo.Context) error {
	m := c.store.Get("User", ctx.Param("user_id"))
	if m == nil {
		return notFound(ctx)
	}

	c.store.Delete(m)
	if err := c.store.Save(); err != nil {
		return err
	}

	return deleted(ctx)
}

func (c *UserController) CreateUser(ctx echo.Context) error {
	attrs, ok := decodeAttrs(ctx)
	if !ok {
		return notAJSON(ctx)
	}

	if _, ok := requireString(attrs, "email"); !ok {
		return missingField(ctx, "email")
	}

	if _, ok := requireString(attrs, "password"); !ok {
		return missingField(ctx, "password")
	}

	user, err := model.NewUser()
	if err != nil {
		return err
	}
	user.Apply(attrs)

	c.store.New(user)
	if err := c.store.Save(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, user.AttrMap())
}

func (c *UserController) UpdateUser(ctx echo.Context) error {
	m := c.store.Get("User", ctx.Param("user_id"))
	if m == nil {
		return notFound(ctx)
	}

	attrs, ok := decodeAttrs(ctx)
	if !ok {
		return notAJSON(ctx)
	}

	// Email is immutable through this endpoint.
	delete(attrs, "email")

	m.Apply(attrs)
	m.GetBase().Touch()

	c.store.New(m)
	if err := c.store.Save(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, m.AttrMap())
}
