package storage

import (
	"time"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
	"github.com/apex/log"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const maxDBRetries = 5

// DBStorage maps each entity type to a table and the place-amenity link to
// the place_amenity junction table. Reads translate to row queries; New and
// Delete queue work that Save flushes in one retried transaction.
// Referential integrity is the schema's job: foreign keys carry ON DELETE
// CASCADE and a violating write surfaces as a constraint error.
type DBStorage struct {
	dialector gorm.Dialector
	txRetry   int
	db        *gorm.DB

	// pending holds created or mutated objects awaiting Save. deletedKeys
	// hides queued deletions (roots and their cascade) from reads until the
	// flush; deletedRoots is what Save actually issues row removals for.
	pending      map[string]model.Model
	deletedKeys  map[string]bool
	deletedRoots []model.Model
}

func NewDBStorage(dialector gorm.Dialector, txRetry int) *DBStorage {
	return &DBStorage{
		dialector:   dialector,
		txRetry:     txRetry,
		pending:     make(map[string]model.Model),
		deletedKeys: make(map[string]bool),
	}
}

// NewDBStorageWithDB wraps an already-open connection. Used by tests.
func NewDBStorageWithDB(db *gorm.DB, txRetry int) *DBStorage {
	s := NewDBStorage(nil, txRetry)
	s.db = db
	return s
}

// Reload establishes the connection (bounded retries, then fatal to the
// caller), creates the schema if absent, and discards unsaved state.
// AutoMigrate is idempotent, so reloading against an initialized schema is
// safe.
func (s *DBStorage) Reload() error {
	if s.db == nil {
		db, err := s.connect()
		if err != nil {
			return err
		}
		s.db = db
	}

	if s.db.Dialector.Name() == "sqlite" {
		s.db.Exec("PRAGMA foreign_keys = ON")
	}

	if err := s.db.AutoMigrate(
		&model.State{},
		&model.Amenity{},
		&model.User{},
		&model.City{},
		&model.Place{},
		&model.Review{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	s.pending = make(map[string]model.Model)
	s.deletedKeys = make(map[string]bool)
	s.deletedRoots = nil

	return nil
}

func (s *DBStorage) connect() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var (
		db  *gorm.DB
		err error
	)

	for retryCount := 1; ; retryCount++ {
		db, err = gorm.Open(s.dialector, gormConfig)
		switch {
		case err == nil:
			return db, nil
		case retryCount >= maxDBRetries:
			return nil, errors.Wrap(err, "failed to open db")
		default:
			time.Sleep(3 * time.Second)
		}
	}
}

func (s *DBStorage) All(typeName string) map[string]model.Model {
	if typeName == "" {
		objects := make(map[string]model.Model)
		for _, name := range model.TypeNames() {
			for key, m := range s.All(name) {
				objects[key] = m
			}
		}
		return objects
	}

	objects := make(map[string]model.Model)
	for _, m := range s.queryAll(typeName) {
		objects[ObjKey(typeName, m.GetID())] = m
	}

	for key, m := range s.pending {
		if m.TypeName() == typeName {
			objects[key] = m
		}
	}

	for key := range s.deletedKeys {
		delete(objects, key)
	}

	return objects
}

func (s *DBStorage) queryAll(typeName string) []model.Model {
	var objects []model.Model

	add := func(m model.Model) {
		objects = append(objects, m)
	}

	var err error
	switch typeName {
	case "State":
		var rows []model.State
		err = s.db.Find(&rows).Error
		for i := range rows {
			add(&rows[i])
		}
	case "City":
		var rows []model.City
		err = s.db.Find(&rows).Error
		for i := range rows {
			add(&rows[i])
		}
	case "Amenity":
		var rows []model.Amenity
		err = s.db.Find(&rows).Error
		for i := range rows {
			add(&rows[i])
		}
	case "User":
		var rows []model.User
		err = s.db.Find(&rows).Error
		for i := range rows {
			add(&rows[i])
		}
	case "Place":
		var rows []model.Place
		err = s.db.Find(&rows).Error
		for i := range rows {
			s.hydratePlaceLinks(&rows[i])
			add(&rows[i])
		}
	case "Review":
		var rows []model.Review
		err = s.db.Find(&rows).Error
		for i := range rows {
			add(&rows[i])
		}
	}

	if err != nil {
		log.Errorf("query for %s rows failed: %s", typeName, err)
	}

	return objects
}

func (s *DBStorage) Get(typeName, id string) model.Model {
	key := ObjKey(typeName, id)

	if s.deletedKeys[key] {
		return nil
	}

	if m, ok := s.pending[key]; ok {
		return m
	}

	m, err := model.NewByTypeName(typeName)
	if err != nil {
		return nil
	}

	if err := s.db.First(m, "id = ?", id).Error; err != nil {
		return nil
	}

	if place, ok := m.(*model.Place); ok {
		s.hydratePlaceLinks(place)
	}

	return m
}

func (s *DBStorage) New(m model.Model) {
	key := ObjKey(m.TypeName(), m.GetID())
	s.pending[key] = m
	delete(s.deletedKeys, key)
}

// Save flushes queued deletions and pending objects in one transaction.
// Objects are written parents first so intra-batch references resolve;
// place link sets replace their junction rows. Safe to call with nothing
// pending.
func (s *DBStorage) Save() error {
	if len(s.pending) == 0 && len(s.deletedRoots) == 0 {
		return nil
	}

	err := WithTxRetry(s.db, s.txRetry, func(tx *gorm.DB) error {
		for _, m := range s.deletedRoots {
			if err := tx.Delete(m).Error; err != nil {
				return err
			}
		}

		for _, typeName := range model.TypeNames() {
			for _, m := range s.pending {
				if m.TypeName() != typeName {
					continue
				}

				if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Omit(clause.Associations).Create(m).Error; err != nil {
					return err
				}

				if place, ok := m.(*model.Place); ok {
					if err := replacePlaceLinks(tx, place); err != nil {
						return err
					}
				}
			}
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to flush pending objects")
	}

	s.pending = make(map[string]model.Model)
	s.deletedKeys = make(map[string]bool)
	s.deletedRoots = nil

	return nil
}

// Delete queues a row removal for the object and hides it, and everything
// it owns, from reads until the next Save. The database propagates the row
// removal to dependents through ON DELETE CASCADE.
func (s *DBStorage) Delete(m model.Model) {
	if m == nil {
		return
	}

	key := ObjKey(m.TypeName(), m.GetID())
	if s.deletedKeys[key] {
		return
	}
	if s.Get(m.TypeName(), m.GetID()) == nil {
		return
	}

	for _, dep := range dependentsOf(s, m) {
		depKey := ObjKey(dep.TypeName(), dep.GetID())
		s.deletedKeys[depKey] = true
		delete(s.pending, depKey)
	}

	s.deletedKeys[key] = true
	delete(s.pending, key)
	s.deletedRoots = append(s.deletedRoots, m)

	if amenity, ok := m.(*model.Amenity); ok {
		for _, obj := range s.pending {
			if place, ok := obj.(*model.Place); ok {
				place.RemoveAmenity(amenity.ID)
			}
		}
	}
}

func (s *DBStorage) Count(typeName string) int {
	return len(s.All(typeName))
}

func (s *DBStorage) Close() {
	if s.db == nil {
		return
	}

	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	s.db = nil
}

// hydratePlaceLinks fills AmenityIDs from the junction rows so attribute
// maps look the same as the file backend's.
func (s *DBStorage) hydratePlaceLinks(place *model.Place) {
	var ids []string
	if err := s.db.Table("place_amenity").Where("place_id = ?", place.ID).
		Order("amenity_id").Pluck("amenity_id", &ids).Error; err != nil {
		log.Errorf("query for place %s amenity links failed: %s", place.ID, err)
		return
	}
	place.AmenityIDs = ids
}

func replacePlaceLinks(tx *gorm.DB, place *model.Place) error {
	if err := tx.Exec("DELETE FROM place_amenity WHERE place_id = ?", place.ID).Error; err != nil {
		return err
	}

	for _, amenityID := range place.AmenityIDs {
		err := tx.Exec("INSERT INTO place_amenity (place_id, amenity_id) VALUES (?, ?)",
			place.ID, amenityID).Error
		if err != nil {
			return err
		}
	}

	return nil
}
