package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/devconnector/internal/handlers/dto"
	"github.com/thereayou/devconnector/internal/middleware"
	"github.com/thereayou/devconnector/internal/models"
	"github.com/thereayou/devconnector/internal/services"
	"github.com/thereayou/devconnector/internal/validation"
	ws "github.com/thereayou/devconnector/internal/websocket"
)

type PostHandler struct {
	db  services.DatabaseService
	hub *ws.Hub
}

func NewPostHandler(db services.DatabaseService, hub *ws.Hub) *PostHandler {
	return &PostHandler{db: db, hub: hub}
}

func (h *PostHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Posts Works"})
}

// List все посты от новых к старым
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.db.GetPosts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusNotFound, gin.H{"nopostsfound": "No posts found"})
		return
	}
	for i := range posts {
		posts[i].EnsureLists()
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.db.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"nopostfound": "No post found with that ID"})
			return
		}
		internalError(c, "posts: get", err)
		return
	}
	post.EnsureLists()
	c.JSON(http.StatusOK, post)
}

// Create имя и аватар берутся из тела, а если их нет, то из токена
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.PostRequest
	if !bind(c, &req) {
		return
	}

	errs, ok := validation.Post(req)
	if !ok {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	me := middleware.CurrentUser(c)
	post := &models.Post{
		UserID: me.ID,
		Text:   req.Text,
		Name:   firstNonEmpty(req.Name, me.Name),
		Avatar: firstNonEmpty(req.Avatar, me.Avatar),
		Date:   time.Now(),
	}

	if err := h.db.SavePost(c.Request.Context(), post); err != nil {
		internalError(c, "posts: save", err)
		return
	}

	h.hub.Publish(ws.TypePostCreated, post.ID, me.ID, post)
	c.JSON(http.StatusOK, post)
}

// Delete удалить пост может только автор
func (h *PostHandler) Delete(c *gin.Context) {
	me := middleware.CurrentUser(c)
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	if post.UserID != me.ID {
		c.JSON(http.StatusUnauthorized, gin.H{"notauthorized": "User not authorized"})
		return
	}

	if err := h.db.DeletePost(c.Request.Context(), post.ID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"postnotfound": "No post found"})
			return
		}
		internalError(c, "posts: delete", err)
		return
	}

	h.hub.Publish(ws.TypePostDeleted, post.ID, me.ID, nil)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PostHandler) Like(c *gin.Context) {
	me := middleware.CurrentUser(c)
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	if !post.Like(me.ID) {
		c.JSON(http.StatusBadRequest, gin.H{"alreadyliked": "User already liked this post"})
		return
	}

	if h.savePost(c, post) {
		h.hub.Publish(ws.TypePostLiked, post.ID, me.ID, post.Likes)
	}
}

func (h *PostHandler) Unlike(c *gin.Context) {
	me := middleware.CurrentUser(c)
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	if !post.Unlike(me.ID) {
		c.JSON(http.StatusBadRequest, gin.H{"notliked": "You have not yet liked this post"})
		return
	}

	if h.savePost(c, post) {
		h.hub.Publish(ws.TypePostUnliked, post.ID, me.ID, post.Likes)
	}
}

func (h *PostHandler) Comment(c *gin.Context) {
	var req dto.PostRequest
	if !bind(c, &req) {
		return
	}

	errs, ok := validation.Post(req)
	if !ok {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	me := middleware.CurrentUser(c)
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	comment := models.Comment{
		ID:     models.NewID(),
		UserID: me.ID,
		Text:   req.Text,
		Name:   firstNonEmpty(req.Name, me.Name),
		Avatar: firstNonEmpty(req.Avatar, me.Avatar),
		Date:   time.Now(),
	}
	post.AddComment(comment)

	if h.savePost(c, post) {
		h.hub.Publish(ws.TypeCommentAdded, post.ID, me.ID, comment)
	}
}

// DeleteComment комментарий может удалить его автор или владелец поста
func (h *PostHandler) DeleteComment(c *gin.Context) {
	me := middleware.CurrentUser(c)
	post, ok := h.loadPost(c)
	if !ok {
		return
	}

	commentID := c.Param("comment_id")
	comment := post.FindComment(commentID)
	if comment == nil {
		c.JSON(http.StatusNotFound, gin.H{"commentnotexists": "Comment does not exist"})
		return
	}
	if comment.UserID != me.ID && post.UserID != me.ID {
		c.JSON(http.StatusUnauthorized, gin.H{"notauthorized": "User not authorized"})
		return
	}
	post.RemoveComment(commentID)

	if h.savePost(c, post) {
		h.hub.Publish(ws.TypeCommentRemoved, post.ID, me.ID, gin.H{"_id": commentID})
	}
}

func (h *PostHandler) loadPost(c *gin.Context) (*models.Post, bool) {
	post, err := h.db.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"postnotfound": "No post found"})
			return nil, false
		}
		internalError(c, "posts: get", err)
		return nil, false
	}
	return post, true
}

// savePost сохраняет изменённый пост и отвечает им же
func (h *PostHandler) savePost(c *gin.Context, post *models.Post) bool {
	if err := h.db.UpdatePost(c.Request.Context(), post); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"postnotfound": "No post found"})
			return false
		}
		internalError(c, "posts: update", err)
		return false
	}
	c.JSON(http.StatusOK, post)
	return true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
