package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/thereayou/devconnector/internal/models"
	"github.com/thereayou/devconnector/internal/services"
)

func TestUsers(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()
	ctx := context.Background()

	mt.Run("save assigns id", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &models.User{Name: "John", Email: "john@example.com", Password: "hash"}
		require.NoError(mt, s.SaveUser(ctx, user))
		assert.NotEmpty(mt, user.ID)
		assert.False(mt, user.Date.IsZero())
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		err := s.SaveUser(ctx, &models.User{Email: "john@example.com"})
		assert.ErrorIs(mt, err, services.ErrDuplicate)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "devconnector.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u1"},
			{Key: "name", Value: "John"},
			{Key: "email", Value: "john@example.com"},
			{Key: "password", Value: "hash"},
		}))

		user, err := s.FindUserByEmail(ctx, "john@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, "u1", user.ID)
		assert.Equal(mt, "hash", user.Password)
	})

	mt.Run("not found", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "devconnector.users", mtest.FirstBatch))

		_, err := s.GetUser(ctx, "missing")
		assert.ErrorIs(mt, err, services.ErrNotFound)
	})

	mt.Run("get users by ids", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "devconnector.users", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "u1"}, {Key: "name", Value: "John"}},
			bson.D{{Key: "_id", Value: "u2"}, {Key: "name", Value: "Jane"}},
		))

		users, err := s.GetUsers(ctx, []string{"u1", "u2"})
		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, "Jane", users[1].Name)
	})
}

func TestProfiles(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()
	ctx := context.Background()

	mt.Run("get by handle fills empty lists", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "devconnector.profiles", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "p1"},
			{Key: "user", Value: "u1"},
			{Key: "handle", Value: "john"},
			{Key: "skills", Value: bson.A{"go", "mongodb"}},
			{Key: "social", Value: bson.D{{Key: "twitter", Value: "https://twitter.com/john"}}},
		}))

		profile, err := s.GetProfileByHandle(ctx, "john")
		require.NoError(mt, err)
		assert.Equal(mt, "u1", profile.UserID)
		assert.Equal(mt, []string{"go", "mongodb"}, profile.Skills)
		assert.Equal(mt, "https://twitter.com/john", profile.Social.Twitter)
		assert.NotNil(mt, profile.Experience)
		assert.NotNil(mt, profile.Education)
	})

	mt.Run("update missing profile", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := s.UpdateProfile(ctx, &models.Profile{ID: "p1"})
		assert.ErrorIs(mt, err, services.ErrNotFound)
	})

	mt.Run("update existing profile", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		require.NoError(mt, s.UpdateProfile(ctx, &models.Profile{ID: "p1", Handle: "john"}))
	})
}

func TestPosts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()
	ctx := context.Background()

	mt.Run("list", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "devconnector.posts", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "p2"},
				{Key: "user", Value: "u1"},
				{Key: "text", Value: "newest post text"},
				{Key: "likes", Value: bson.A{bson.D{{Key: "_id", Value: "l1"}, {Key: "user", Value: "u2"}}}},
			},
			bson.D{{Key: "_id", Value: "p1"}, {Key: "user", Value: "u1"}, {Key: "text", Value: "older post text"}},
		))

		posts, err := s.GetPosts(ctx)
		require.NoError(mt, err)
		require.Len(mt, posts, 2)
		assert.True(mt, posts[0].LikedBy("u2"))
		assert.NotNil(mt, posts[1].Comments)
	})

	mt.Run("delete", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)

		require.NoError(mt, s.DeletePost(ctx, "p1"))
		assert.ErrorIs(mt, s.DeletePost(ctx, "p1"), services.ErrNotFound)
	})

	mt.Run("save", func(mt *mtest.T) {
		s := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		post := &models.Post{UserID: "u1", Text: "hello there world"}
		require.NoError(mt, s.SavePost(ctx, post))
		assert.NotEmpty(mt, post.ID)
		assert.NotNil(mt, post.Likes)
	})
}
