package domain

import (
	"time"

	"devconnector-backend/pkg/document"
)

// Author is the name and avatar copied onto posts and comments at write time.
type Author struct {
	ID     string
	Name   string
	Avatar string
}

type Like struct {
	ID   string `json:"_id"`
	User string `json:"user"`
}

func (l Like) GetID() string      { return l.ID }
func (l Like) GetOwnerID() string { return l.User }

type Comment struct {
	ID     string    `json:"_id"`
	User   string    `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

func (c Comment) GetID() string      { return c.ID }
func (c Comment) GetOwnerID() string { return c.User }

// Post is a feed entry. Likes and comments are newest-first.
type Post struct {
	ID       string                 `json:"_id" gorm:"primaryKey"`
	UserID   string                 `json:"user" gorm:"not null;index"`
	Text     string                 `json:"text" gorm:"not null"`
	Name     string                 `json:"name"`
	Avatar   string                 `json:"avatar"`
	Likes    document.List[Like]    `json:"likes" gorm:"type:jsonb"`
	Comments document.List[Comment] `json:"comments" gorm:"type:jsonb"`
	Date     time.Time              `json:"date"`
}

// Clone copies the post so its lists do not share backing arrays with p.
func (p *Post) Clone() *Post {
	out := *p
	out.Likes = p.Likes.Clone()
	out.Comments = p.Comments.Clone()
	return &out
}
