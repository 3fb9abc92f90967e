package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateIssuesIdentityAndTimestamps(t *testing.T) {
	s1, err := NewState()
	require.NoError(t, err)
	s2, err := NewState()
	require.NoError(t, err)

	assert.NotEmpty(t, s1.ID)
	assert.NotEqual(t, s1.ID, s2.ID)
	assert.True(t, s1.CreatedAt.Equal(s1.UpdatedAt))
}

func TestTouchRefreshesUpdatedAtOnly(t *testing.T) {
	state, err := NewState()
	require.NoError(t, err)

	createdAt := state.CreatedAt
	time.Sleep(5 * time.Millisecond)
	state.Touch()

	assert.True(t, state.UpdatedAt.After(state.CreatedAt))
	assert.True(t, state.CreatedAt.Equal(createdAt))
}

func TestAttrMapShape(t *testing.T) {
	t.Run("StateCarriesDiscriminator", func(t *testing.T) {
		state, err := NewState()
		require.NoError(t, err)
		state.Name = "California"

		attrs := state.AttrMap()
		assert.Equal(t, "State", attrs["__class__"])
		assert.Equal(t, state.ID, attrs["id"])
		assert.Equal(t, "California", attrs["name"])
		assert.Equal(t, state.CreatedAt.Format(TimeLayout), attrs["created_at"])
	})

	t.Run("UserNeverExposesPassword", func(t *testing.T) {
		user, err := NewUser()
		require.NoError(t, err)
		user.Email = "a@b.co"
		user.Password = "secret"

		attrs := user.AttrMap()
		assert.NotContains(t, attrs, "password")
		assert.Equal(t, "a@b.co", attrs["email"])
	})

	t.Run("PlaceIncludesAmenityIDs", func(t *testing.T) {
		place, err := NewPlace()
		require.NoError(t, err)
		place.AddAmenity("a1")
		place.AddAmenity("a2")

		attrs := place.AttrMap()
		assert.Equal(t, []string{"a1", "a2"}, attrs["amenity_ids"])
	})
}

func TestApplyIsBounded(t *testing.T) {
	state, err := NewState()
	require.NoError(t, err)
	originalID := state.ID
	originalCreatedAt := state.CreatedAt

	state.Apply(map[string]any{
		"id":         "hijacked",
		"created_at": "2001-01-01T00:00:00.000000",
		"name":       "Cali",
		"bogus":      42,
	})

	assert.Equal(t, originalID, state.ID)
	assert.True(t, state.CreatedAt.Equal(originalCreatedAt))
	assert.Equal(t, "Cali", state.Name)
}

func TestApplyCoercesJSONNumbers(t *testing.T) {
	place, err := NewPlace()
	require.NoError(t, err)

	// Decoded JSON hands every number over as float64.
	place.Apply(map[string]any{
		"number_rooms":   float64(3),
		"max_guest":      float64(6),
		"price_by_night": float64(120),
		"latitude":       37.77,
		"amenity_ids":    []any{"a1", "a2"},
	})

	assert.Equal(t, 3, place.NumberRooms)
	assert.Equal(t, 6, place.MaxGuest)
	assert.Equal(t, 120, place.PriceByNight)
	assert.Equal(t, 37.77, place.Latitude)
	assert.Equal(t, []string{"a1", "a2"}, place.AmenityIDs)
}

func TestFromAttrMapRoundTrip(t *testing.T) {
	place, err := NewPlace()
	require.NoError(t, err)
	place.CityID = "c1"
	place.UserID = "u1"
	place.Name = "Loft"
	place.NumberRooms = 2
	place.Latitude = 48.85
	place.AddAmenity("a1")

	rehydrated, err := FromAttrMap(place.AttrMap())
	require.NoError(t, err)

	assert.Equal(t, place.AttrMap(), rehydrated.AttrMap())

	restored := rehydrated.(*Place)
	assert.True(t, restored.CreatedAt.Equal(place.CreatedAt))
	assert.True(t, restored.UpdatedAt.Equal(place.UpdatedAt))
}

func TestFromAttrMapRejectsUnknownClass(t *testing.T) {
	_, err := FromAttrMap(map[string]any{"__class__": "Spaceship"})
	require.Error(t, err)

	_, err = FromAttrMap(map[string]any{"name": "no discriminator"})
	require.Error(t, err)
}

func TestUserSnapshotKeepsPassword(t *testing.T) {
	user, err := NewUser()
	require.NoError(t, err)
	user.Email = "a@b.co"
	user.Password = "secret"

	snapshot := user.SnapshotMap()
	assert.Equal(t, "secret", snapshot["password"])

	rehydrated, err := FromAttrMap(snapshot)
	require.NoError(t, err)
	assert.Equal(t, "secret", rehydrated.(*User).Password)
}
