package domain

import (
	"time"

	"devconnector-backend/pkg/document"
)

// Owner is the slice of the user record shown alongside a profile.
type Owner struct {
	ID     string `json:"_id" gorm:"primaryKey"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// TableName points Owner at the users table
func (Owner) TableName() string {
	return "users"
}

type Social struct {
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Experience struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

func (e Experience) GetID() string { return e.ID }

type Education struct {
	ID           string     `json:"_id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

func (e Education) GetID() string { return e.ID }

// Profile is owned by exactly one user; UserID never changes after creation.
type Profile struct {
	ID             string                    `json:"_id" gorm:"primaryKey"`
	UserID         string                    `json:"-" gorm:"uniqueIndex;not null"`
	User           *Owner                    `json:"user" gorm:"foreignKey:UserID;references:ID"`
	Company        string                    `json:"company,omitempty"`
	Website        string                    `json:"website,omitempty"`
	Location       string                    `json:"location,omitempty"`
	Status         string                    `json:"status" gorm:"not null"`
	Skills         document.List[string]     `json:"skills" gorm:"type:jsonb"`
	Bio            string                    `json:"bio,omitempty"`
	GitHubUsername string                    `json:"githubusername,omitempty"`
	Social         Social                    `json:"social" gorm:"embedded;embeddedPrefix:social_"`
	Experience     document.List[Experience] `json:"experience" gorm:"type:jsonb"`
	Education      document.List[Education]  `json:"education" gorm:"type:jsonb"`
	Date           time.Time                 `json:"date"`
}

// Clone returns a deep copy so stored profiles never share lists with callers.
func (p *Profile) Clone() *Profile {
	out := *p
	out.Skills = p.Skills.Clone()
	out.Experience = p.Experience.Clone()
	out.Education = p.Education.Clone()
	if p.User != nil {
		owner := *p.User
		out.User = &owner
	}
	return &out
}
