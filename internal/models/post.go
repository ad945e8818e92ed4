package models

import "time"

type Like struct {
	ID     string `json:"_id" bson:"_id"`
	UserID string `json:"user" bson:"user"`
}

type Comment struct {
	ID     string    `json:"_id" bson:"_id"`
	UserID string    `json:"user" bson:"user"`
	Text   string    `json:"text" bson:"text"`
	Name   string    `json:"name" bson:"name"`
	Avatar string    `json:"avatar" bson:"avatar"`
	Date   time.Time `json:"date" bson:"date"`
}

type Post struct {
	ID       string    `json:"_id" bson:"_id" gorm:"type:varchar(36);primaryKey"`
	UserID   string    `json:"user" bson:"user" gorm:"type:varchar(36);index;not null"`
	Text     string    `json:"text" bson:"text" gorm:"not null"`
	Name     string    `json:"name" bson:"name"`
	Avatar   string    `json:"avatar" bson:"avatar"`
	Likes    []Like    `json:"likes" bson:"likes" gorm:"type:text;serializer:json"`
	Comments []Comment `json:"comments" bson:"comments" gorm:"type:text;serializer:json"`
	Date     time.Time `json:"date" bson:"date" gorm:"index"`
}

func (p *Post) LikedBy(userID string) bool {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

// Like ставит лайк от пользователя, false если лайк уже есть
func (p *Post) Like(userID string) bool {
	if p.LikedBy(userID) {
		return false
	}
	p.Likes = append([]Like{{ID: NewID(), UserID: userID}}, p.Likes...)
	return true
}

// Unlike снимает лайк пользователя, false если лайка не было
func (p *Post) Unlike(userID string) bool {
	for i, like := range p.Likes {
		if like.UserID == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Post) AddComment(comment Comment) {
	p.Comments = append([]Comment{comment}, p.Comments...)
}

// FindComment возвращает комментарий по id или nil
func (p *Post) FindComment(id string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == id {
			return &p.Comments[i]
		}
	}
	return nil
}

func (p *Post) RemoveComment(id string) bool {
	for i, comment := range p.Comments {
		if comment.ID == id {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Post) EnsureLists() {
	if p.Likes == nil {
		p.Likes = []Like{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}
