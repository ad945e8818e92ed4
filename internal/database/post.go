package database

import (
	"context"
	"time"

	"github.com/thereayou/devconnector/internal/models"
	"github.com/thereayou/devconnector/internal/services"
)

func (d *Database) SavePost(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = models.NewID()
	}
	if post.Date.IsZero() {
		post.Date = time.Now()
	}
	post.EnsureLists()
	return translate(d.db.WithContext(ctx).Create(post).Error)
}

// UpdatePost сохраняет пост вместе с лайками и комментариями;
// удаленный пост не воскрешается, вместо этого ErrNotFound
func (d *Database) UpdatePost(ctx context.Context, post *models.Post) error {
	post.EnsureLists()
	return d.updateAll(ctx, post)
}

func (d *Database) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := d.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	post.EnsureLists()
	return &post, nil
}

func (d *Database) GetPosts(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	if err := d.db.WithContext(ctx).Order("date DESC").Find(&posts).Error; err != nil {
		return nil, translate(err)
	}
	for i := range posts {
		posts[i].EnsureLists()
	}
	return posts, nil
}

func (d *Database) DeletePost(ctx context.Context, id string) error {
	res := d.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return services.ErrNotFound
	}
	return nil
}
