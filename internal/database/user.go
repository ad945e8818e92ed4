package database

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/thereayou/devconnector/internal/models"
)

func (d *Database) SaveUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = models.NewID()
	}
	if user.Date.IsZero() {
		user.Date = time.Now()
	}
	return translate(d.db.WithContext(ctx).Create(user).Error)
}

func (d *Database) GetUser(ctx context.Context, id string) (*models.User, error) {
	user := models.User{}
	if err := d.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (d *Database) GetUsers(ctx context.Context, ids []string) ([]models.User, error) {
	users := []models.User{}
	if len(ids) == 0 {
		return users, nil
	}
	if err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (d *Database) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := models.User{}
	if err := d.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (d *Database) DeleteAccount(ctx context.Context, userID string) error {
	return translate(d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Profile{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", userID).Error
	}))
}
