package repository

import (
	"errors"

	"gorm.io/gorm"
)

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// affected turns a zero-row write into sentinel.
func affected(tx *gorm.DB, sentinel error) error {
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return sentinel
	}
	return nil
}
