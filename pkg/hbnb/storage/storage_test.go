package storage

import (
	"testing"

	"github.com/Z-ajamy/AirBnB-clone-v3/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestNewFromConfigSelectsBackend(t *testing.T) {
	t.Run("DBStorage", func(t *testing.T) {
		c := config.NewMapConfig(map[string]string{
			"HBNB_TYPE_STORAGE": "db",
			"HBNB_MYSQL_USER":   "hbnb",
			"HBNB_MYSQL_PWD":    "hbnb",
			"HBNB_MYSQL_HOST":   "localhost",
			"HBNB_MYSQL_DB":     "hbnb",
		})

		_, ok := NewFromConfig(c).(*DBStorage)
		assert.True(t, ok)
	})

	t.Run("FileStorageIsTheDefault", func(t *testing.T) {
		c := config.NewMapConfig(map[string]string{})

		_, ok := NewFromConfig(c).(*FileStorage)
		assert.True(t, ok)
	})
}

func TestObjKey(t *testing.T) {
	assert.Equal(t, "State.abc", ObjKey("State", "abc"))
}
