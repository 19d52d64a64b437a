package domain

import "time"

type User struct {
	ID       string    `json:"_id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"not null"`
	Email    string    `json:"email" gorm:"uniqueIndex;not null"`
	Password string    `json:"-" gorm:"not null"` // Never return password in JSON
	Avatar   string    `json:"avatar"`
	Date     time.Time `json:"date"`
}
