package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thereayou/devconnector/internal/models"
	"github.com/thereayou/devconnector/internal/services"
)

func (s *Store) SavePost(ctx context.Context, post *models.Post) error {
	if post.ID == "" {
		post.ID = models.NewID()
	}
	if post.Date.IsZero() {
		post.Date = time.Now()
	}
	post.EnsureLists()
	_, err := s.db.Collection(postsCollection).InsertOne(ctx, post)
	return translate(err)
}

func (s *Store) UpdatePost(ctx context.Context, post *models.Post) error {
	post.EnsureLists()
	return s.replaceByID(ctx, postsCollection, post.ID, post)
}

func (s *Store) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := s.db.Collection(postsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, translate(err)
	}
	post.EnsureLists()
	return &post, nil
}

func (s *Store) GetPosts(ctx context.Context) ([]models.Post, error) {
	cur, err := s.db.Collection(postsCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, translate(err)
	}

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].EnsureLists()
	}
	return posts, nil
}

func (s *Store) DeletePost(ctx context.Context, id string) error {
	res, err := s.db.Collection(postsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}
