package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps free-form input onto the closed role set.
func ParseRole(raw string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(RoleUser):
		return RoleUser, true
	case string(RoleAdmin):
		return RoleAdmin, true
	default:
		return "", false
	}
}

// ReadingStatus is a user's per-book shelf state.
type ReadingStatus string

const (
	StatusWantToRead ReadingStatus = "want_to_read"
	StatusReading    ReadingStatus = "reading"
	StatusRead       ReadingStatus = "read"
)

func ParseReadingStatus(raw string) (ReadingStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(StatusWantToRead):
		return StatusWantToRead, true
	case string(StatusReading):
		return StatusReading, true
	case string(StatusRead):
		return StatusRead, true
	default:
		return "", false
	}
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func ParseGender(raw string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(GenderMale):
		return GenderMale, true
	case string(GenderFemale):
		return GenderFemale, true
	case string(GenderOther):
		return GenderOther, true
	default:
		return "", false
	}
}

type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Role           Role       `json:"role"`
	Gender         Gender     `json:"gender,omitempty"`
	FavoriteGenres []string   `json:"favoriteGenres,omitempty"`
	Birthdate      *time.Time `json:"birthdate,omitempty"`
	Country        string     `json:"country,omitempty"`
	AvatarURL      string     `json:"avatarUrl,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   string    `json:"description,omitempty"`
	CoverURL      string    `json:"coverUrl,omitempty"`
	PublishedYear int       `json:"publishedYear,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Review struct {
	ID        string    `json:"id"`
	BookID    string    `json:"bookId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatusEntry is one (user, book) shelf row. At most one exists per pair.
type StatusEntry struct {
	UserID    string        `json:"userId"`
	BookID    string        `json:"bookId"`
	Status    ReadingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Reviewer is the public identity attached to a review.
type Reviewer struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type ReviewView struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	User      Reviewer  `json:"user"`
}

// BookView is a catalog read model: the book plus aggregated genre names,
// the average rating rounded to one decimal (0 when unreviewed), and the
// requesting user's shelf status when known.
type BookView struct {
	Book
	Genres     []string       `json:"genres"`
	Rating     float64        `json:"rating"`
	UserStatus *ReadingStatus `json:"userStatus,omitempty"`
	Reviews    []ReviewView   `json:"reviews,omitempty"`
}

// StatusView is a shelf row joined with its book.
type StatusView struct {
	StatusEntry
	Book Book `json:"book"`
}

// ContactView is a contact message joined with the submitting user.
type ContactView struct {
	ContactMessage
	User Reviewer `json:"user"`
}

// BookStats is the admin read model for one book.
type BookStats struct {
	Book
	ReviewCount   int     `json:"reviewCount"`
	AverageRating float64 `json:"averageRating"`
}

// UserStats is the admin read model for one user.
type UserStats struct {
	User
	ReviewCount int `json:"reviewCount"`
	StatusCount int `json:"statusCount"`
}

// StatusCounts aggregates a user's shelf by status.
type StatusCounts struct {
	WantToRead int `json:"wantToRead"`
	Reading    int `json:"reading"`
	Read       int `json:"read"`
}

// DashboardCounts are the admin landing-page totals.
type DashboardCounts struct {
	TotalBooks    int `json:"totalBooks"`
	TotalUsers    int `json:"totalUsers"`
	TotalReviews  int `json:"totalReviews"`
	TotalContacts int `json:"totalContacts"`
}
