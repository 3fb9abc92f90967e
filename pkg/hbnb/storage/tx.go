package storage

import "gorm.io/gorm"

// WithTxRetry runs fn in a transaction, retrying the whole transaction on
// failure. retryCount is never allowed below 3.
func WithTxRetry(db *gorm.DB, retryCount int, fn func(tx *gorm.DB) error) error {
	var err error

	if retryCount < 3 {
		retryCount = 3
	}

	for i := 0; i < retryCount; i++ {
		err = db.Transaction(fn)
		if err == nil {
			break
		}
	}

	return err
}
