package dto

import "github.com/thereayou/devconnector/internal/models"

// ProfileRequest поля формы профиля, skills приходит строкой через запятую
type ProfileRequest struct {
	Handle         string `json:"handle" form:"handle"`
	Company        string `json:"company" form:"company"`
	Website        string `json:"website" form:"website"`
	Location       string `json:"location" form:"location"`
	Status         string `json:"status" form:"status"`
	Skills         string `json:"skills" form:"skills"`
	Bio            string `json:"bio" form:"bio"`
	GithubUsername string `json:"githubusername" form:"githubusername"`

	YouTube   string `json:"youtube" form:"youtube"`
	Twitter   string `json:"twitter" form:"twitter"`
	Facebook  string `json:"facebook" form:"facebook"`
	LinkedIn  string `json:"linkedin" form:"linkedin"`
	Instagram string `json:"instagram" form:"instagram"`
}

type ExperienceRequest struct {
	Title       string `json:"title" form:"title"`
	Company     string `json:"company" form:"company"`
	Location    string `json:"location" form:"location"`
	From        string `json:"from" form:"from"`
	To          string `json:"to" form:"to"`
	Current     bool   `json:"current" form:"current"`
	Description string `json:"description" form:"description"`
}

type EducationRequest struct {
	School       string `json:"school" form:"school"`
	Degree       string `json:"degree" form:"degree"`
	FieldOfStudy string `json:"fieldofstudy" form:"fieldofstudy"`
	From         string `json:"from" form:"from"`
	To           string `json:"to" form:"to"`
	Current      bool   `json:"current" form:"current"`
	Description  string `json:"description" form:"description"`
}

// UserInfo краткая информация о владельце профиля
type UserInfo struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ProfileResponse профиль с подставленным пользователем вместо его id
type ProfileResponse struct {
	*models.Profile
	User *UserInfo `json:"user"`
}
