package storage

import (
	"testing"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
	"github.com/stretchr/testify/require"
)

func mustState(t *testing.T, name string) *model.State {
	t.Helper()
	state, err := model.NewState()
	require.NoError(t, err)
	state.Name = name
	return state
}

func mustCity(t *testing.T, stateID, name string) *model.City {
	t.Helper()
	city, err := model.NewCity()
	require.NoError(t, err)
	city.StateID = stateID
	city.Name = name
	return city
}

func mustAmenity(t *testing.T, name string) *model.Amenity {
	t.Helper()
	amenity, err := model.NewAmenity()
	require.NoError(t, err)
	amenity.Name = name
	return amenity
}

func mustUser(t *testing.T, email string) *model.User {
	t.Helper()
	user, err := model.NewUser()
	require.NoError(t, err)
	user.Email = email
	user.Password = "pwd"
	return user
}

func mustPlace(t *testing.T, cityID, userID, name string) *model.Place {
	t.Helper()
	place, err := model.NewPlace()
	require.NoError(t, err)
	place.CityID = cityID
	place.UserID = userID
	place.Name = name
	return place
}

func mustReview(t *testing.T, placeID, userID, text string) *model.Review {
	t.Helper()
	review, err := model.NewReview()
	require.NoError(t, err)
	review.PlaceID = placeID
	review.UserID = userID
	review.Text = text
	return review
}

// seedGraph saves a small object graph: one state with one city, one user,
// one place in the city owned by the user, and one review of the place.
func seedGraph(t *testing.T, s Storage) (*model.State, *model.City, *model.User, *model.Place, *model.Review) {
	t.Helper()

	state := mustState(t, "California")
	city := mustCity(t, state.ID, "San Francisco")
	user := mustUser(t, "guest@hbnb.io")
	place := mustPlace(t, city.ID, user.ID, "Lovely loft")
	review := mustReview(t, place.ID, user.ID, "Great stay")

	for _, m := range []model.Model{state, city, user, place, review} {
		s.New(m)
	}
	require.NoError(t, s.Save())

	return state, city, user, place, review
}
