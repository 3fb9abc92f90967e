package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T) *FileStorage {
	t.Helper()
	return NewFileStorage(filepath.Join(t.TempDir(), "file.json"))
}

func TestFileStorageSaveReloadRoundTrip(t *testing.T) {
	s := newFileStore(t)
	state, city, user, place, review := seedGraph(t, s)

	before := map[string]map[string]any{}
	for key, m := range s.All("") {
		before[key] = snapshotRecord(m)
	}

	require.NoError(t, s.Reload())

	after := map[string]map[string]any{}
	for key, m := range s.All("") {
		after[key] = snapshotRecord(m)
	}

	assert.Equal(t, before, after)

	for _, m := range []struct{ typeName, id string }{
		{"State", state.ID},
		{"City", city.ID},
		{"User", user.ID},
		{"Place", place.ID},
		{"Review", review.ID},
	} {
		assert.NotNil(t, s.Get(m.typeName, m.id), "missing %s after reload", m.typeName)
	}
}

func TestFileStorageGetMissingReturnsNil(t *testing.T) {
	s := newFileStore(t)
	assert.Nil(t, s.Get("State", "no-such-id"))
}

func TestFileStorageDeleteThenReload(t *testing.T) {
	s := newFileStore(t)
	state, _, _, _, _ := seedGraph(t, s)

	s.Delete(s.Get("State", state.ID))
	require.NoError(t, s.Save())
	require.NoError(t, s.Reload())

	assert.Nil(t, s.Get("State", state.ID))
}

func TestFileStorageDeleteIsNoOpWhenAbsent(t *testing.T) {
	s := newFileStore(t)
	state := mustState(t, "Nevada")

	// Never registered, so nothing to do.
	s.Delete(state)
	assert.Equal(t, 0, s.Count(""))
}

func TestFileStorageStateDeleteCascades(t *testing.T) {
	s := newFileStore(t)
	state, city, user, place, review := seedGraph(t, s)

	s.Delete(s.Get("State", state.ID))
	require.NoError(t, s.Save())
	require.NoError(t, s.Reload())

	assert.Nil(t, s.Get("City", city.ID))
	assert.Nil(t, s.Get("Place", place.ID))
	assert.Nil(t, s.Get("Review", review.ID))
	assert.NotNil(t, s.Get("User", user.ID))
}

func TestFileStorageCountSumsPerType(t *testing.T) {
	s := newFileStore(t)
	seedGraph(t, s)

	total := 0
	for _, typeName := range []string{"Amenity", "City", "Place", "Review", "State", "User"} {
		total += s.Count(typeName)
	}

	assert.Equal(t, s.Count(""), total)
	assert.Equal(t, 5, s.Count(""))
}

func TestFileStorageAmenityLinking(t *testing.T) {
	s := newFileStore(t)
	_, _, _, place, _ := seedGraph(t, s)

	amenity := mustAmenity(t, "Wifi")
	s.New(amenity)
	require.NoError(t, s.Save())

	linked, err := LinkAmenity(s, place, amenity)
	require.NoError(t, err)
	assert.True(t, linked)

	// Linking twice never duplicates the pair.
	linked, err = LinkAmenity(s, place, amenity)
	require.NoError(t, err)
	assert.False(t, linked)
	assert.Equal(t, []string{amenity.ID}, place.AmenityIDs)

	require.NoError(t, s.Save())
	require.NoError(t, s.Reload())

	reloaded := s.Get("Place", place.ID).AttrMap()
	assert.Equal(t, []string{amenity.ID}, reloaded["amenity_ids"])

	unlinked, err := UnlinkAmenity(s, place, amenity)
	require.NoError(t, err)
	assert.True(t, unlinked)
	require.NoError(t, s.Save())
	require.NoError(t, s.Reload())

	reloaded = s.Get("Place", place.ID).AttrMap()
	assert.Empty(t, reloaded["amenity_ids"])
}

func TestFileStorageAmenityDeleteClearsLinks(t *testing.T) {
	s := newFileStore(t)
	_, _, _, place, _ := seedGraph(t, s)

	amenity := mustAmenity(t, "Pool")
	s.New(amenity)
	require.NoError(t, s.Save())

	_, err := LinkAmenity(s, place, amenity)
	require.NoError(t, err)
	require.NoError(t, s.Save())

	s.Delete(amenity)
	require.NoError(t, s.Save())
	require.NoError(t, s.Reload())

	reloaded := s.Get("Place", place.ID).AttrMap()
	assert.Empty(t, reloaded["amenity_ids"])
}

func TestFileStorageReloadMissingSnapshotIsSilent(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "never-written.json"))
	require.NoError(t, s.Reload())
	assert.Equal(t, 0, s.Count(""))
}

func TestFileStorageReloadCorruptSnapshotIsSilent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := NewFileStorage(path)
	require.NoError(t, s.Reload())
	assert.Equal(t, 0, s.Count(""))
}

func TestFileStorageSaveIsIdempotent(t *testing.T) {
	s := newFileStore(t)
	state, _, _, _, _ := seedGraph(t, s)

	require.NoError(t, s.Save())
	require.NoError(t, s.Save())
	require.NoError(t, s.Reload())
	assert.NotNil(t, s.Get("State", state.ID))
}

func TestFileStoragePasswordSurvivesReload(t *testing.T) {
	s := newFileStore(t)
	user := mustUser(t, "a@b.co")
	user.Password = "secret"

	s.New(user)
	require.NoError(t, s.Save())
	require.NoError(t, s.Reload())

	reloaded := s.Get("User", user.ID)
	require.NotNil(t, reloaded)
	assert.Equal(t, "secret", snapshotRecord(reloaded)["password"])
}

func TestFileStorageUpdateLifecycle(t *testing.T) {
	s := newFileStore(t)

	state := mustState(t, "California")
	s.New(state)
	require.NoError(t, s.Save())
	assert.True(t, state.CreatedAt.Equal(state.UpdatedAt))

	time.Sleep(5 * time.Millisecond)
	state.Apply(map[string]any{"name": "Cali"})
	state.Touch()
	s.New(state)
	require.NoError(t, s.Save())
	assert.True(t, state.UpdatedAt.After(state.CreatedAt))

	require.NoError(t, s.Reload())
	reloaded := s.Get("State", state.ID)
	require.NotNil(t, reloaded)
	assert.Equal(t, "Cali", reloaded.AttrMap()["name"])

	s.Delete(reloaded)
	require.NoError(t, s.Save())
	require.NoError(t, s.Reload())
	assert.Nil(t, s.Get("State", state.ID))
}
