// Package storage holds the object persistence layer: one Storage facade
// with two interchangeable backends, a JSON snapshot on disk (FileStorage)
// and a relational database through gorm (DBStorage). Callers go through
// the facade only; which backend is live is decided once at process start
// from configuration.
//
// The layer itself does no locking. The HTTP layer above it is responsible
// for serializing or safely parallelizing access, the same contract the
// service has always had.
package storage

import (
	"fmt"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/config"
	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/hbnb/model"
	"gorm.io/driver/mysql"
)

// Storage is the persistence contract both backends implement. Get returns
// nil for a missing id rather than an error; Save and Reload are the only
// operations that touch durable media.
type Storage interface {
	// All returns the live objects of the named type keyed by "Type.id".
	// An empty type name returns every live object of every type.
	All(typeName string) map[string]model.Model
	// Get returns the matching entity or nil.
	Get(typeName, id string) model.Model
	// New registers an object (fresh or mutated) as pending for the next
	// Save.
	New(m model.Model)
	// Save flushes pending state to durable storage. Idempotent.
	Save() error
	// Delete removes the object and its dependents from the live set; the
	// removal becomes durable on the next Save. No-op when absent.
	Delete(m model.Model)
	// Reload (re)initializes the live set from durable storage, discarding
	// unsaved in-memory state.
	Reload() error
	// Count returns the number of live objects, optionally of one type.
	Count(typeName string) int
	// Close releases the backend's resources.
	Close()
}

// ObjKey is the composite key objects are filed under.
func ObjKey(typeName, id string) string {
	return fmt.Sprintf("%s.%s", typeName, id)
}

// NewFromConfig selects the backend from HBNB_TYPE_STORAGE: "db" gives the
// database backend, anything else the file backend.
func NewFromConfig(c config.Configer) Storage {
	if c.GetKey(config.StorageTypeKey) == "db" {
		return NewDBStorage(mysql.Open(config.MakeMySQLDSN(c)), config.GetTxRetry(c))
	}

	return NewFileStorage(c.GetKeyWithDefault(config.FilePathKey, "file.json"))
}
