package database

import (
	"context"
	"time"

	"github.com/thereayou/devconnector/internal/models"
)

func (d *Database) SaveProfile(ctx context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = models.NewID()
	}
	if profile.Date.IsZero() {
		profile.Date = time.Now()
	}
	profile.EnsureLists()
	return translate(d.db.WithContext(ctx).Create(profile).Error)
}

// UpdateProfile перезаписывает документ профиля целиком
func (d *Database) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	profile.EnsureLists()
	return d.updateAll(ctx, profile)
}

func (d *Database) GetProfileByUser(ctx context.Context, userID string) (*models.Profile, error) {
	return d.findProfile(ctx, "user_id = ?", userID)
}

func (d *Database) GetProfileByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	return d.findProfile(ctx, "handle = ?", handle)
}

func (d *Database) GetProfiles(ctx context.Context) ([]models.Profile, error) {
	profiles := []models.Profile{}
	if err := d.db.WithContext(ctx).Order("date ASC").Find(&profiles).Error; err != nil {
		return nil, translate(err)
	}
	for i := range profiles {
		profiles[i].EnsureLists()
	}
	return profiles, nil
}

func (d *Database) findProfile(ctx context.Context, query string, arg string) (*models.Profile, error) {
	profile := models.Profile{}
	if err := d.db.WithContext(ctx).Where(query, arg).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	profile.EnsureLists()
	return &profile, nil
}
