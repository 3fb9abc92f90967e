package cmd

import (
	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/storage"
	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/webapi"
	"github.com/labstack/echo/v4"
)

type RouteOpts struct {
	store storage.Storage
}

func setupRoutes(e *echo.Echo, opts RouteOpts) {
	g := e.Group("/api/v1")

	statusController := webapi.NewStatusController(opts.store)
	g.GET("/status", statusController.GetStatus)
	g.GET("/stats", statusController.GetStats)

	stateController := webapi.NewStateController(opts.store)
	g.GET("/states", stateController.ListStates)
	g.POST("/states", stateController.CreateState)
	g.GET("/states/:state_id", stateController.GetState)
	g.PUT("/states/:state_id", stateController.UpdateState)
	g.DELETE("/states/:state_id", stateController.DeleteState)

	cityController := webapi.NewCityController(opts.store)
	g.GET("/states/:state_id/cities", cityController.ListCitiesOfState)
	g.POST("/states/:state_id/cities", cityController.CreateCityInState)
	g.GET("/cities/:city_id", cityController.GetCity)
	g.PUT("/cities/:city_id", cityController.UpdateCity)
	g.DELETE("/cities/:city_id", cityController.DeleteCity)

	amenityController := webapi.NewAmenityController(opts.store)
	g.GET("/amenities", amenityController.ListAmenities)
	g.POST("/amenities", amenityController.CreateAmenity)
	g.GET("/amenities/:amenity_id", amenityController.GetAmenity)
	g.PUT("/amenities/:amenity_id", amenityController.UpdateAmenity)
	g.DELETE("/amenities/:amenity_id", amenityController.DeleteAmenity)

	userController := webapi.NewUserController(opts.store)
	g.GET("/users", userController.ListUsers)
	g.POST("/users", userController.CreateUser)
	g.GET("/users/:user_id", userController.GetUser)
	g.PUT("/users/:user_id", userController.UpdateUser)
	g.DELETE("/users/:user_id", userController.DeleteUser)

	placeController := webapi.NewPlaceController(opts.store)
	g.GET("/cities/:city_id/places", placeController.ListPlacesOfCity)
	g.POST("/cities/:city_id/places", placeController.CreatePlaceInCity)
	g.GET("/places/:place_id", placeController.GetPlace)
	g.PUT("/places/:place_id", placeController.UpdatePlace)
	g.DELETE("/places/:place_id", placeController.DeletePlace)

	reviewController := webapi.NewReviewController(opts.store)
	g.GET("/places/:place_id/reviews", reviewController.ListReviewsOfPlace)
	g.POST("/places/:place_id/reviews", reviewController.CreateReviewForPlace)
	g.GET("/reviews/:review_id", reviewController.GetReview)
	g.PUT("/reviews/:review_id", reviewController.UpdateReview)
	g.DELETE("/reviews/:review_id", reviewController.DeleteReview)

	placeAmenityController := webapi.NewPlaceAmenityController(opts.store)
	g.GET("/places/:place_id/amenities", placeAmenityController.ListAmenitiesOfPlace)
	g.POST("/places/:place_id/amenities/:amenity_id", placeAmenityController.LinkAmenityToPlace)
	g.DELETE("/places/:place_id/amenities/:amenity_id", placeAmenityController.UnlinkAmenityFromPlace)
}
