package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/thereayou/devconnector/internal/services"
)

// Database реализация services.DatabaseService поверх gorm (postgres или sqlite)
type Database struct {
	db *gorm.DB
}

var _ services.DatabaseService = (*Database)(nil)

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

// translate приводит ошибки gorm к ошибкам сервисного слоя
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return services.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "UNIQUE constraint failed"),
		strings.Contains(err.Error(), "duplicate key value"):
		return fmt.Errorf("%w: %v", services.ErrDuplicate, err)
	}
	return err
}

// updateAll обновляет все колонки существующей строки по первичному ключу.
// В отличие от Save не вставляет строку, если ее уже нет.
func (d *Database) updateAll(ctx context.Context, value interface{}) error {
	res := d.db.WithContext(ctx).Model(value).Select("*").Updates(value)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return services.ErrNotFound
	}
	return nil
}
