package models

import "time"

type Social struct {
	YouTube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
}

type Experience struct {
	ID          string     `json:"_id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Company     string     `json:"company" bson:"company"`
	Location    string     `json:"location,omitempty" bson:"location,omitempty"`
	From        time.Time  `json:"from" bson:"from"`
	To          *time.Time `json:"to,omitempty" bson:"to,omitempty"`
	Current     bool       `json:"current" bson:"current"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
}

type Education struct {
	ID           string     `json:"_id" bson:"_id"`
	School       string     `json:"school" bson:"school"`
	Degree       string     `json:"degree" bson:"degree"`
	FieldOfStudy string     `json:"fieldofstudy" bson:"fieldofstudy"`
	From         time.Time  `json:"from" bson:"from"`
	To           *time.Time `json:"to,omitempty" bson:"to,omitempty"`
	Current      bool       `json:"current" bson:"current"`
	Description  string     `json:"description,omitempty" bson:"description,omitempty"`
}

// Profile хранит вложенные списки опыта и образования прямо в документе,
// для gorm они сериализуются в JSON колонки.
type Profile struct {
	ID             string       `json:"_id" bson:"_id" gorm:"type:varchar(36);primaryKey"`
	UserID         string       `json:"user" bson:"user" gorm:"type:varchar(36);uniqueIndex;not null"`
	Handle         string       `json:"handle" bson:"handle" gorm:"uniqueIndex;not null"`
	Company        string       `json:"company,omitempty" bson:"company,omitempty"`
	Website        string       `json:"website,omitempty" bson:"website,omitempty"`
	Location       string       `json:"location,omitempty" bson:"location,omitempty"`
	Status         string       `json:"status" bson:"status" gorm:"not null"`
	Skills         []string     `json:"skills" bson:"skills" gorm:"type:text;serializer:json"`
	Bio            string       `json:"bio,omitempty" bson:"bio,omitempty"`
	GithubUsername string       `json:"githubusername,omitempty" bson:"githubusername,omitempty"`
	Social         Social       `json:"social" bson:"social" gorm:"embedded;embeddedPrefix:social_"`
	Experience     []Experience `json:"experience" bson:"experience" gorm:"type:text;serializer:json"`
	Education      []Education  `json:"education" bson:"education" gorm:"type:text;serializer:json"`
	Date           time.Time    `json:"date" bson:"date"`
}

// AddExperience добавляет запись в начало списка
func (p *Profile) AddExperience(exp Experience) {
	p.Experience = append([]Experience{exp}, p.Experience...)
}

// RemoveExperience удаляет запись по id, false если такой нет
func (p *Profile) RemoveExperience(id string) bool {
	for i, exp := range p.Experience {
		if exp.ID == id {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Profile) AddEducation(edu Education) {
	p.Education = append([]Education{edu}, p.Education...)
}

func (p *Profile) RemoveEducation(id string) bool {
	for i, edu := range p.Education {
		if edu.ID == id {
			p.Education = append(p.Education[:i], p.Education[i+1:]...)
			return true
		}
	}
	return false
}

// EnsureLists заменяет nil списки пустыми, чтобы в JSON уходили [] а не null
func (p *Profile) EnsureLists() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
}
