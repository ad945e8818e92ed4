package services

import (
	"context"
	"errors"

	"github.com/thereayou/devconnector/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// DatabaseService хранилище пользователей, профилей и постов.
// Реализации: internal/mongodb (документная БД) и internal/database (gorm).
type DatabaseService interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	SaveUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUsers(ctx context.Context, ids []string) ([]models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	// DeleteAccount удаляет профиль пользователя и его самого
	DeleteAccount(ctx context.Context, userID string) error

	SaveProfile(ctx context.Context, profile *models.Profile) error
	UpdateProfile(ctx context.Context, profile *models.Profile) error
	GetProfileByUser(ctx context.Context, userID string) (*models.Profile, error)
	GetProfileByHandle(ctx context.Context, handle string) (*models.Profile, error)
	GetProfiles(ctx context.Context) ([]models.Profile, error)

	SavePost(ctx context.Context, post *models.Post) error
	UpdatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, id string) (*models.Post, error)
	// GetPosts возвращает посты от новых к старым
	GetPosts(ctx context.Context) ([]models.Post, error)
	DeletePost(ctx context.Context, id string) error
}
