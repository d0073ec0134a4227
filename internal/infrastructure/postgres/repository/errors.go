package repository

import (
	"errors"

	"gorm.io/gorm"
)

func translate(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
