package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       string    `json:"_id" bson:"_id" gorm:"type:varchar(36);primaryKey"`
	Name     string    `json:"name" bson:"name" gorm:"not null"`
	Email    string    `json:"email" bson:"email" gorm:"uniqueIndex;not null"`
	Password string    `json:"-" bson:"password" gorm:"not null"`
	Avatar   string    `json:"avatar" bson:"avatar"`
	Date     time.Time `json:"date" bson:"date"`
}

// NewID генерирует идентификатор для документов и вложенных записей
func NewID() string {
	return uuid.NewString()
}
