package storage

import (
	"encoding/json"
	"os"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
	"github.com/pkg/errors"
)

// FileStorage keeps the whole object universe in memory and persists it as
// a single JSON snapshot: one object per entry, keyed "Type.id", each entry
// an attribute map carrying the __class__ discriminator. Place-amenity
// links live inline on each place as amenity_ids.
type FileStorage struct {
	path    string
	objects map[string]model.Model
}

// snapshotter lets an entity contribute extra fields to its snapshot record
// beyond the transport attribute map (User adds its write-only password).
type snapshotter interface {
	SnapshotMap() map[string]any
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{
		path:    path,
		objects: make(map[string]model.Model),
	}
}

func (s *FileStorage) All(typeName string) map[string]model.Model {
	objects := make(map[string]model.Model)
	for key, m := range s.objects {
		if typeName == "" || m.TypeName() == typeName {
			objects[key] = m
		}
	}
	return objects
}

func (s *FileStorage) Get(typeName, id string) model.Model {
	m, ok := s.objects[ObjKey(typeName, id)]
	if !ok {
		return nil
	}
	return m
}

func (s *FileStorage) New(m model.Model) {
	s.objects[ObjKey(m.TypeName(), m.GetID())] = m
}

// Save serializes the live set and replaces the snapshot. The write goes to
// a temporary file first and is moved into place with a rename, so a failed
// write never corrupts the previous snapshot.
func (s *FileStorage) Save() error {
	records := make(map[string]map[string]any, len(s.objects))
	for key, m := range s.objects {
		records[key] = snapshotRecord(m)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "failed to serialize snapshot")
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write snapshot %s", tmpPath)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return errors.Wrapf(err, "failed to replace snapshot %s", s.path)
	}

	return nil
}

// Delete removes the object and, through the shared cascade, everything it
// owns. Deleting an amenity also clears its id from every place's link set.
// No-op when the object isn't live.
func (s *FileStorage) Delete(m model.Model) {
	if m == nil {
		return
	}

	key := ObjKey(m.TypeName(), m.GetID())
	if _, ok := s.objects[key]; !ok {
		return
	}

	for _, dep := range dependentsOf(s, m) {
		delete(s.objects, ObjKey(dep.TypeName(), dep.GetID()))
	}
	delete(s.objects, key)

	if amenity, ok := m.(*model.Amenity); ok {
		for _, obj := range s.objects {
			if place, ok := obj.(*model.Place); ok {
				place.RemoveAmenity(amenity.ID)
			}
		}
	}
}

// Reload rebuilds the live set from the snapshot, discarding unsaved
// in-memory state. An absent or unreadable snapshot means an empty live
// set, never an error.
func (s *FileStorage) Reload() error {
	s.objects = make(map[string]model.Model)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var records map[string]map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}

	for key, attrs := range records {
		m, err := model.FromAttrMap(attrs)
		if err != nil {
			continue
		}
		s.objects[key] = m
	}

	return nil
}

func (s *FileStorage) Count(typeName string) int {
	return len(s.All(typeName))
}

// Close discards unsaved state, same teardown the service has always done.
func (s *FileStorage) Close() {
	_ = s.Reload()
}

func snapshotRecord(m model.Model) map[string]any {
	if sn, ok := m.(snapshotter); ok {
		return sn.SnapshotMap()
	}
	return m.AttrMap()
}
