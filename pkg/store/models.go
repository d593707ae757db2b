package store

import (
	"time"

	"gorm.io/datatypes"
)

// GORM models used for persistence.
type UserModel struct {
	ID             string `gorm:"primaryKey"`
	Username       string `gorm:"not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	PasswordHash   string `gorm:"not null"`
	Role           string `gorm:"not null"`
	Gender         string
	FavoriteGenres datatypes.JSON
	Birthdate      *time.Time
	Country        string
	AvatarURL      string
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time
}

type BookModel struct {
	ID            string `gorm:"primaryKey"`
	Title         string `gorm:"not null;index"`
	Author        string `gorm:"not null;index"`
	Description   string `gorm:"type:text"`
	CoverURL      string
	PublishedYear int
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time
}

type GenreModel struct {
	ID   string `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

type BookGenreModel struct {
	BookID  string `gorm:"primaryKey;index"`
	GenreID string `gorm:"primaryKey;index"`
}

type ReviewModel struct {
	ID        string    `gorm:"primaryKey"`
	BookID    string    `gorm:"not null;index"`
	UserID    string    `gorm:"not null;index"`
	Rating    int       `gorm:"not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time
}

// ReadingStatusModel holds at most one row per (user, book); the composite
// primary key is what makes concurrent upserts collapse to a single row.
type ReadingStatusModel struct {
	UserID    string    `gorm:"primaryKey"`
	BookID    string    `gorm:"primaryKey"`
	Status    string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time
}

type ContactModel struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;index"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}
