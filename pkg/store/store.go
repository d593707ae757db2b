package store

import "bookreview/pkg/domain"

// Store defines persistence operations for users, the catalog, and
// per-user engagement records. Lookups return (value, found, error) so
// callers can distinguish absence from a store fault.
type Store interface {
	// users
	CreateUser(domain.User) error
	HasUserEmail(email string) (bool, error)
	GetUserByEmail(email string) (domain.User, bool, error)
	GetUserByID(id string) (domain.User, bool, error)
	UpdateUser(domain.User) error
	SetUserRole(id string, role domain.Role) (bool, error)
	ListUsersWithStats() ([]domain.UserStats, error)
	UserCount() (int, error)

	// catalog
	CreateBook(book domain.Book, genreNames []string) error
	GetBook(id string) (domain.Book, bool, error)
	GetBookView(id string) (domain.BookView, bool, error)
	ListBookViews(requesterID string) ([]domain.BookView, error)
	SearchBookViews(term, genre string) ([]domain.BookView, error)
	UpdateBook(domain.Book) (bool, error)
	DeleteBook(id string) (bool, error)
	ListBooksWithStats() ([]domain.BookStats, error)
	BookCount() (int, error)

	// reading statuses
	UpsertStatus(domain.StatusEntry) error
	GetStatus(userID, bookID string) (domain.StatusEntry, bool, error)
	UpdateStatus(userID, bookID string, status domain.ReadingStatus) (bool, error)
	DeleteStatus(userID, bookID string) (bool, error)
	ListStatusesByUser(userID string) ([]domain.StatusView, error)
	StatusCountsByUser(userID string) (domain.StatusCounts, error)

	// reviews
	CreateReview(domain.Review) error
	GetReview(id string) (domain.Review, bool, error)
	UpdateReview(domain.Review) error
	DeleteReview(id string) error
	ListReviewsByBook(bookID string) ([]domain.ReviewView, error)
	ReviewCount() (int, error)

	// contact messages
	CreateContact(domain.ContactMessage) error
	GetContact(id string) (domain.ContactMessage, bool, error)
	DeleteContact(id string) error
	ListContacts() ([]domain.ContactView, error)
	ContactCount() (int, error)
}
