package webapi

import (
	"net/http"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/storage"
	"github.com/labstack/echo/v4"
)

type ReviewController struct {
	store storage.Storage
}

func NewReviewController(store storage.Storage) *ReviewController {
	return &ReviewController{store: store}
}

func (c *ReviewController) ListReviewsOfPlace(ctx echo.Context) error {
	place := c.store.Get("Place", ctx.Param("place_id"))
	if place == nil {
		return notFound(ctx)
	}

	reviews := []map[string]any{}
	for _, review := range storage.ReviewsOfPlace(c.store, place.GetID()) {
		reviews = append(reviews, review.AttrMap())
	}
	return ctx.JSON(http.StatusOK, reviews)
}

func (c *ReviewController) GetReview(ctx echo.Context) error {
	m := c.store.Get("Review", ctx.Param("review_id"))
	if m == nil {
		return notFound(ctx)
	}
	return ctx.JSON(http.StatusOK, m.AttrMap())
}

func (c *ReviewController) DeleteReview(ctx echo.Context) error {
	m := c.store.Get("Review", ctx.Param("review_id"))
	if m == nil {
		return notFound(ctx)
	}

	c.store.Delete(m)
	if err := c.store.Save(); err != nil {
		return err
	}

	return deleted(ctx)
}

func (c *ReviewController) CreateReviewForPlace(ctx echo.Context) error {
	place := c.store.Get("Place", ctx.Param("place_id"))
	if place == nil {
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

	if _, ok := requireString(attrs, "text"); !ok {
		return missingField(ctx, "text")
	}

	review, err := model.NewReview()
	if err != nil {
		return err
	}
	attrs["place_id"] = place.GetID()
	review.Apply(attrs)

	c.store.New(review)
	if err := c.store.Save(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, review.AttrMap())
}

func (c *ReviewController) UpdateReview(ctx echo.Context) error {
	m := c.store.Get("Review", ctx.Param("review_id"))
	if m == nil {
		return notFound(ctx)
	}

	attrs, ok := decodeAttrs(ctx)
	if !ok {
		return notAJSON(ctx)
	}

	// The author and the reviewed place are immutable through this endpoint.
	delete(attrs, "user_id")
	delete(attrs, "place_id")

	m.Apply(attrs)
	m.GetBase().Touch()

	c.store.New(m)
	if err := c.store.Save(); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, m.AttrMap())
}
