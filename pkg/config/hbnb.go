package config

import "fmt"

// Configuration keys recognized by hbnbd.
const (
	StorageTypeKey = "HBNB_TYPE_STORAGE" // "db" or "file"
	FilePathKey    = "HBNB_FILE_PATH"
	MySQLUserKey   = "HBNB_MYSQL_USER"
	MySQLPwdKey    = "HBNB_MYSQL_PWD"
	MySQLHostKey   = "HBNB_MYSQL_HOST"
	MySQLDBKey     = "HBNB_MYSQL_DB"
	APIHostKey     = "HBNB_API_HOST"
	APIPortKey     = "HBNB_API_PORT"
	TxRetryKey     = "HBNB_TX_RETRY"
)

// MustLoadFromDotenv loads .env into the environment and returns the package
// configer. The daemon calls this once before anything reads a key.
func MustLoadFromDotenv() Configer {
	c := NewDotenvConfig(".env")
	_ = c.Load()
	SetConfig(c)
	return c
}

// MakeMySQLDSN builds the gorm MySQL DSN from the HBNB_MYSQL_* keys.
func MakeMySQLDSN(c Configer) string {
	return fmt.Sprintf("%s:%s@tcp(%s:3306)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.MustGetKey(MySQLUserKey),
		c.GetKey(MySQLPwdKey),
		c.MustGetKey(MySQLHostKey),
		c.MustGetKey(MySQLDBKey))
}

// GetTxRetry returns the transaction retry count, never less than 3.
func GetTxRetry(c Configer) int {
	retry := c.GetIntKeyWithDefault(TxRetryKey, 3)
	if retry < 3 {
		retry = 3
	}

	return retry
}
