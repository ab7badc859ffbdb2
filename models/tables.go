package models

import "time"

type User struct {
	ID           int       `gorm:"primary_key;autoIncrement" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	Email        string    `gorm:"not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // json:"-" prevents password from being exposed in API
	CreatedAt    time.Time `json:"created_at"`
}

type BlogPost struct {
	ID        int       `gorm:"primary_key;autoIncrement" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  int       `gorm:"not null;index" json:"author_id"` // auto-filled from the token subject
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID        int       `gorm:"primary_key;autoIncrement" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  int       `gorm:"not null;index" json:"author_id"`
	PostID    int       `gorm:"not null;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
