package webapi

import (
	"net/http"
	"testing"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedPlaceAndAmenity saves a minimal graph and returns the place and an
// unlinked amenity.
func seedPlaceAndAmenity(t *testing.T, store storage.Storage) (*model.Place, *model.Amenity) {
	t.Helper()

	state, err := model.NewState()
	require.NoError(t, err)
	state.Name = "California"

	city, err := model.NewCity()
	require.NoError(t, err)
	city.StateID = state.ID
	city.Name = "San Francisco"

	user, err := model.NewUser()
	require.NoError(t, err)
	user.Email = "guest@hbnb.io"
	user.Password = "pwd"

	place, err := model.NewPlace()
	require.NoError(t, err)
	place.CityID = city.ID
	place.UserID = user.ID
	place.Name = "Lovely loft"

	amenity, err := model.NewAmenity()
	require.NoError(t, err)
	amenity.Name = "Wifi"

	for _, m := range []model.Model{state, city, user, place, amenity} {
		store.New(m)
	}
	require.NoError(t, store.Save())

	return place, amenity
}

func TestPlaceAmenityLinkFlow(t *testing.T) {
	store := newTestStore(t)
	controller := NewPlaceAmenityController(store)
	place, amenity := seedPlaceAndAmenity(t, store)

	params := map[string]string{"place_id": place.ID, "amenity_id": amenity.ID}
	target := "/api/v1/places/" + place.ID + "/amenities/" + amenity.ID

	t.Run("FirstLinkCreates", func(t *testing.T) {
		ctx, rec := setupEchoContext(t, http.MethodPost, target, nil, params)
		require.NoError(t, controller.LinkAmenityToPlace(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, amenity.ID, decodeBody(t, rec)["id"])
	})

	t.Run("SecondLinkAnswersOK", func(t *testing.T) {
		ctx, rec := setupEchoContext(t, http.MethodPost, target, nil, params)
		require.NoError(t, controller.LinkAmenityToPlace(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("ListShowsTheLink", func(t *testing.T) {
		ctx, rec := setupEchoContext(t, http.MethodGet,
			"/api/v1/places/"+place.ID+"/amenities", nil,
			map[string]string{"place_id": place.ID})
		require.NoError(t, controller.ListAmenitiesOfPlace(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), amenity.ID)
	})

	t.Run("UnlinkRemoves", func(t *testing.T) {
		ctx, rec := setupEchoContext(t, http.MethodDelete, target, nil, params)
		require.NoError(t, controller.UnlinkAmenityFromPlace(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)

		reloaded := store.Get("Place", place.ID).AttrMap()
		assert.Empty(t, reloaded["amenity_ids"])
	})

	t.Run("UnlinkAgainIsNotFound", func(t *testing.T) {
		ctx, rec := setupEchoContext(t, http.MethodDelete, target, nil, params)
		require.NoError(t, controller.UnlinkAmenityFromPlace(ctx))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("UnknownAmenityIsNotFound", func(t *testing.T) {
		ctx, rec := setupEchoContext(t, http.MethodPost, target, nil,
			map[string]string{"place_id": place.ID, "amenity_id": "nope"})
		require.NoError(t, controller.LinkAmenityToPlace(ctx))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStatusAndStats(t *testing.T) {
	store := newTestStore(t)
	controller := NewStatusController(store)
	seedPlaceAndAmenity(t, store)

	ctx, rec := setupEchoContext(t, http.MethodGet, "/api/v1/status", nil, nil)
	require.NoError(t, controller.GetStatus(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decodeBody(t, rec)["status"])

	ctx, rec = setupEchoContext(t, http.MethodGet, "/api/v1/stats", nil, nil)
	require.NoError(t, controller.GetStats(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	stats := decodeBody(t, rec)
	assert.Equal(t, float64(1), stats["states"])
	assert.Equal(t, float64(1), stats["cities"])
	assert.Equal(t, float64(1), stats["places"])
	assert.Equal(t, float64(1), stats["amenities"])
	assert.Equal(t, float64(1), stats["users"])
	assert.Equal(t, float64(0), stats["reviews"])
}
