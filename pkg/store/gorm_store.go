package store

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"bookreview/pkg/domain"
)

// GormStore implements Store on a relational database through GORM.
// One instance is shared process-wide and injected into the app layer.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens a Postgres database and runs auto-migrations.
func NewGormStore(dsn string) (*GormStore, error) {
	return newGormStore(postgres.Open(dsn))
}

// NewSQLiteStore opens a SQLite database (":memory:" works for tests).
func NewSQLiteStore(path string) (*GormStore, error) {
	return newGormStore(sqlite.Open(path))
}

func newGormStore(dialector gorm.Dialector) (*GormStore, error) {
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(
		&UserModel{},
		&BookModel{},
		&GenreModel{},
		&BookGenreModel{},
		&ReviewModel{},
		&ReadingStatusModel{},
		&ContactModel{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// users

func (s *GormStore) CreateUser(u domain.User) error {
	model := userToModel(u)
	return s.db.Create(&model).Error
}

func (s *GormStore) HasUserEmail(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) GetUserByEmail(email string) (domain.User, bool, error) {
	var model UserModel
	if err := s.db.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userFromModel(model), true, nil
}

func (s *GormStore) GetUserByID(id string) (domain.User, bool, error) {
	var model UserModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userFromModel(model), true, nil
}

// UpdateUser writes the profile columns of the user row keyed by id.
// Credentials and role stay untouched; role changes go through SetUserRole.
func (s *GormStore) UpdateUser(u domain.User) error {
	model := userToModel(u)
	return s.db.Model(&UserModel{}).Where("id = ?", u.ID).
		Select("username", "gender", "favorite_genres", "birthdate", "country", "avatar_url", "updated_at").
		Updates(&model).Error
}

// SetUserRole changes one user's role. Returns false when no such user
// exists.
func (s *GormStore) SetUserRole(id string, role domain.Role) (bool, error) {
	res := s.db.Model(&UserModel{}).Where("id = ?", id).
		Updates(map[string]any{
			"role":       string(role),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListUsersWithStats returns users newest-first with per-user review and
// shelf-row counts. The password hash never leaves the store here.
func (s *GormStore) ListUsersWithStats() ([]domain.UserStats, error) {
	var models []UserModel
	if err := s.db.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	reviewCounts, err := s.countsBy(&ReviewModel{}, "user_id")
	if err != nil {
		return nil, err
	}
	statusCounts, err := s.countsBy(&ReadingStatusModel{}, "user_id")
	if err != nil {
		return nil, err
	}
	res := make([]domain.UserStats, 0, len(models))
	for _, m := range models {
		u := userFromModel(m)
		u.PasswordHash = ""
		res = append(res, domain.UserStats{
			User:        u,
			ReviewCount: reviewCounts[m.ID],
			StatusCount: statusCounts[m.ID],
		})
	}
	return res, nil
}

func (s *GormStore) UserCount() (int, error) {
	return s.count(&UserModel{})
}

// catalog

// CreateBook inserts the book, upserts each genre by name, and links the
// associations, all in one transaction.
func (s *GormStore) CreateBook(b domain.Book, genreNames []string) error {
	model := bookToModel(b)
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model).Error; err != nil {
			return err
		}
		for _, name := range genreNames {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			genre := GenreModel{ID: uuid.NewString(), Name: name}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&genre).Error; err != nil {
				return err
			}
			// Re-read into a fresh value: on conflict the surviving row
			// keeps its original id, and a populated primary key on the
			// receiver would leak into the query conditions.
			var existing GenreModel
			if err := tx.Where("name = ?", name).First(&existing).Error; err != nil {
				return err
			}
			link := BookGenreModel{BookID: model.ID, GenreID: existing.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) GetBook(id string) (domain.Book, bool, error) {
	var model BookModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Book{}, false, nil
		}
		return domain.Book{}, false, err
	}
	return bookFromModel(model), true, nil
}

// GetBookView returns one book with genres, the rounded average rating,
// and its reviews newest-first with reviewer identity.
func (s *GormStore) GetBookView(id string) (domain.BookView, bool, error) {
	book, ok, err := s.GetBook(id)
	if err != nil || !ok {
		return domain.BookView{}, ok, err
	}
	genres, err := s.genreNamesByBook([]string{id})
	if err != nil {
		return domain.BookView{}, false, err
	}
	ratings, err := s.ratingAggregates([]string{id})
	if err != nil {
		return domain.BookView{}, false, err
	}
	reviews, err := s.ListReviewsByBook(id)
	if err != nil {
		return domain.BookView{}, false, err
	}
	view := domain.BookView{
		Book:    book,
		Genres:  genres[id],
		Rating:  ratings[id].avg,
		Reviews: reviews,
	}
	if view.Genres == nil {
		view.Genres = []string{}
	}
	return view, true, nil
}

// ListBookViews returns all books with genres and average rating; when
// requesterID is set, each view carries that user's shelf status.
func (s *GormStore) ListBookViews(requesterID string) ([]domain.BookView, error) {
	var models []BookModel
	if err := s.db.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return s.assembleViews(models, requesterID)
}

// SearchBookViews filters by case-insensitive substring on title/author
// and exact case-insensitive genre name. Both conditions AND together.
func (s *GormStore) SearchBookViews(term, genre string) ([]domain.BookView, error) {
	tx := s.db.Model(&BookModel{}).Order("created_at ASC")
	if term = strings.TrimSpace(term); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", pattern, pattern)
	}
	if genre = strings.TrimSpace(genre); genre != "" {
		tx = tx.Where(
			"id IN (SELECT bg.book_id FROM book_genre_models bg JOIN genre_models g ON g.id = bg.genre_id WHERE LOWER(g.name) = ?)",
			strings.ToLower(genre),
		)
	}
	var models []BookModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	return s.assembleViews(models, "")
}

func (s *GormStore) UpdateBook(b domain.Book) (bool, error) {
	model := bookToModel(b)
	res := s.db.Model(&BookModel{}).Where("id = ?", b.ID).
		Select("title", "author", "description", "cover_url", "published_year", "updated_at").
		Updates(&model)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteBook removes the book and its dependent reviews, shelf rows, and
// genre links in a single transaction.
func (s *GormStore) DeleteBook(id string) (bool, error) {
	found := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ReviewModel{}, "book_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&ReadingStatusModel{}, "book_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&BookGenreModel{}, "book_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&BookModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		found = res.RowsAffected > 0
		return nil
	})
	return found, err
}

// ListBooksWithStats returns books newest-first with review aggregates.
func (s *GormStore) ListBooksWithStats() ([]domain.BookStats, error) {
	var models []BookModel
	if err := s.db.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	ids := bookIDs(models)
	ratings, err := s.ratingAggregates(ids)
	if err != nil {
		return nil, err
	}
	res := make([]domain.BookStats, 0, len(models))
	for _, m := range models {
		agg := ratings[m.ID]
		res = append(res, domain.BookStats{
			Book:          bookFromModel(m),
			ReviewCount:   agg.count,
			AverageRating: agg.avg,
		})
	}
	return res, nil
}

func (s *GormStore) BookCount() (int, error) {
	return s.count(&BookModel{})
}

// reading statuses

// UpsertStatus creates or overwrites the (user, book) shelf row. The
// conflict target is the composite primary key, so concurrent calls for
// the same pair always resolve to exactly one row.
func (s *GormStore) UpsertStatus(e domain.StatusEntry) error {
	model := statusToModel(e)
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&model).Error
}

func (s *GormStore) GetStatus(userID, bookID string) (domain.StatusEntry, bool, error) {
	var model ReadingStatusModel
	if err := s.db.Where("user_id = ? AND book_id = ?", userID, bookID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.StatusEntry{}, false, nil
		}
		return domain.StatusEntry{}, false, err
	}
	return statusFromModel(model), true, nil
}

// UpdateStatus changes an existing row only; it never creates one.
func (s *GormStore) UpdateStatus(userID, bookID string, status domain.ReadingStatus) (bool, error) {
	res := s.db.Model(&ReadingStatusModel{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) DeleteStatus(userID, bookID string) (bool, error) {
	res := s.db.Delete(&ReadingStatusModel{}, "user_id = ? AND book_id = ?", userID, bookID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListStatusesByUser returns the user's shelf newest-first, each row
// joined with its book.
func (s *GormStore) ListStatusesByUser(userID string) ([]domain.StatusView, error) {
	var models []ReadingStatusModel
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.BookID)
	}
	books, err := s.booksByID(ids)
	if err != nil {
		return nil, err
	}
	res := make([]domain.StatusView, 0, len(models))
	for _, m := range models {
		res = append(res, domain.StatusView{
			StatusEntry: statusFromModel(m),
			Book:        books[m.BookID],
		})
	}
	return res, nil
}

func (s *GormStore) StatusCountsByUser(userID string) (domain.StatusCounts, error) {
	var rows []struct {
		Status string
		Count  int
	}
	if err := s.db.Model(&ReadingStatusModel{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return domain.StatusCounts{}, err
	}
	var counts domain.StatusCounts
	for _, row := range rows {
		switch domain.ReadingStatus(row.Status) {
		case domain.StatusWantToRead:
			counts.WantToRead = row.Count
		case domain.StatusReading:
			counts.Reading = row.Count
		case domain.StatusRead:
			counts.Read = row.Count
		}
	}
	return counts, nil
}

// reviews

func (s *GormStore) CreateReview(r domain.Review) error {
	model := reviewToModel(r)
	return s.db.Create(&model).Error
}

func (s *GormStore) GetReview(id string) (domain.Review, bool, error) {
	var model ReviewModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Review{}, false, nil
		}
		return domain.Review{}, false, err
	}
	return reviewFromModel(model), true, nil
}

func (s *GormStore) UpdateReview(r domain.Review) error {
	return s.db.Model(&ReviewModel{}).Where("id = ?", r.ID).
		Updates(map[string]any{
			"rating":     r.Rating,
			"text":       r.Text,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (s *GormStore) DeleteReview(id string) error {
	return s.db.Delete(&ReviewModel{}, "id = ?", id).Error
}

// ListReviewsByBook returns a book's reviews newest-first, each joined
// with the reviewer's public identity.
func (s *GormStore) ListReviewsByBook(bookID string) ([]domain.ReviewView, error) {
	var models []ReviewModel
	if err := s.db.Where("book_id = ?", bookID).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	userIDs := make([]string, 0, len(models))
	for _, m := range models {
		userIDs = append(userIDs, m.UserID)
	}
	reviewers, err := s.reviewersByID(userIDs)
	if err != nil {
		return nil, err
	}
	res := make([]domain.ReviewView, 0, len(models))
	for _, m := range models {
		res = append(res, domain.ReviewView{
			ID:        m.ID,
			Rating:    m.Rating,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
			User:      reviewers[m.UserID],
		})
	}
	return res, nil
}

func (s *GormStore) ReviewCount() (int, error) {
	return s.count(&ReviewModel{})
}

// contact messages

func (s *GormStore) CreateContact(c domain.ContactMessage) error {
	model := contactToModel(c)
	return s.db.Create(&model).Error
}

func (s *GormStore) GetContact(id string) (domain.ContactMessage, bool, error) {
	var model ContactModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.ContactMessage{}, false, nil
		}
		return domain.ContactMessage{}, false, err
	}
	return contactFromModel(model), true, nil
}

func (s *GormStore) DeleteContact(id string) error {
	return s.db.Delete(&ContactModel{}, "id = ?", id).Error
}

// ListContacts returns contact messages newest-first with the submitting
// user's identity.
func (s *GormStore) ListContacts() ([]domain.ContactView, error) {
	var models []ContactModel
	if err := s.db.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	userIDs := make([]string, 0, len(models))
	for _, m := range models {
		userIDs = append(userIDs, m.UserID)
	}
	users, err := s.reviewersByID(userIDs)
	if err != nil {
		return nil, err
	}
	res := make([]domain.ContactView, 0, len(models))
	for _, m := range models {
		res = append(res, domain.ContactView{
			ContactMessage: contactFromModel(m),
			User:           users[m.UserID],
		})
	}
	return res, nil
}

func (s *GormStore) ContactCount() (int, error) {
	return s.count(&ContactModel{})
}

// assembly helpers

type ratingAggregate struct {
	count int
	avg   float64
}

func (s *GormStore) assembleViews(models []BookModel, requesterID string) ([]domain.BookView, error) {
	ids := bookIDs(models)
	genres, err := s.genreNamesByBook(ids)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratingAggregates(ids)
	if err != nil {
		return nil, err
	}
	statuses := map[string]domain.ReadingStatus{}
	if requesterID != "" && len(ids) > 0 {
		var rows []ReadingStatusModel
		if err := s.db.Where("user_id = ? AND book_id IN ?", requesterID, ids).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			statuses[row.BookID] = domain.ReadingStatus(row.Status)
		}
	}
	res := make([]domain.BookView, 0, len(models))
	for _, m := range models {
		view := domain.BookView{
			Book:   bookFromModel(m),
			Genres: genres[m.ID],
			Rating: ratings[m.ID].avg,
		}
		if view.Genres == nil {
			view.Genres = []string{}
		}
		if st, ok := statuses[m.ID]; ok {
			view.UserStatus = &st
		}
		res = append(res, view)
	}
	return res, nil
}

func (s *GormStore) genreNamesByBook(ids []string) (map[string][]string, error) {
	out := map[string][]string{}
	if len(ids) == 0 {
		return out, nil
	}
	var rows []struct {
		BookID string
		Name   string
	}
	if err := s.db.Table("book_genre_models").
		Select("book_genre_models.book_id, genre_models.name").
		Joins("JOIN genre_models ON genre_models.id = book_genre_models.genre_id").
		Where("book_genre_models.book_id IN ?", ids).
		Order("genre_models.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.BookID] = append(out[row.BookID], row.Name)
	}
	return out, nil
}

func (s *GormStore) ratingAggregates(ids []string) (map[string]ratingAggregate, error) {
	out := map[string]ratingAggregate{}
	if len(ids) == 0 {
		return out, nil
	}
	var rows []struct {
		BookID  string
		Count   int
		Average float64
	}
	if err := s.db.Model(&ReviewModel{}).
		Select("book_id, COUNT(*) AS count, AVG(rating) AS average").
		Where("book_id IN ?", ids).
		Group("book_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.BookID] = ratingAggregate{
			count: row.Count,
			avg:   math.Round(row.Average*10) / 10,
		}
	}
	return out, nil
}

func (s *GormStore) booksByID(ids []string) (map[string]domain.Book, error) {
	out := map[string]domain.Book{}
	if len(ids) == 0 {
		return out, nil
	}
	var models []BookModel
	if err := s.db.Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}
	for _, m := range models {
		out[m.ID] = bookFromModel(m)
	}
	return out, nil
}

func (s *GormStore) reviewersByID(ids []string) (map[string]domain.Reviewer, error) {
	out := map[string]domain.Reviewer{}
	if len(ids) == 0 {
		return out, nil
	}
	var models []UserModel
	if err := s.db.Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}
	for _, m := range models {
		out[m.ID] = domain.Reviewer{ID: m.ID, Username: m.Username, AvatarURL: m.AvatarURL}
	}
	return out, nil
}

func (s *GormStore) count(model any) (int, error) {
	var count int64
	if err := s.db.Model(model).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *GormStore) countsBy(model any, column string) (map[string]int, error) {
	var rows []struct {
		Key   string
		Count int
	}
	if err := s.db.Model(model).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Count
	}
	return out, nil
}

func bookIDs(models []BookModel) []string {
	ids := make([]string, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}
	return ids
}

// model mapping

func userToModel(u domain.User) UserModel {
	var genres []byte
	if len(u.FavoriteGenres) > 0 {
		genres, _ = json.Marshal(u.FavoriteGenres)
	}
	return UserModel{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Role:           string(u.Role),
		Gender:         string(u.Gender),
		FavoriteGenres: genres,
		Birthdate:      u.Birthdate,
		Country:        u.Country,
		AvatarURL:      u.AvatarURL,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func userFromModel(m UserModel) domain.User {
	var genres []string
	if len(m.FavoriteGenres) > 0 {
		_ = json.Unmarshal(m.FavoriteGenres, &genres)
	}
	return domain.User{
		ID:             m.ID,
		Username:       m.Username,
		Email:          m.Email,
		PasswordHash:   m.PasswordHash,
		Role:           domain.Role(m.Role),
		Gender:         domain.Gender(m.Gender),
		FavoriteGenres: genres,
		Birthdate:      m.Birthdate,
		Country:        m.Country,
		AvatarURL:      m.AvatarURL,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func bookToModel(b domain.Book) BookModel {
	return BookModel{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		CoverURL:      b.CoverURL,
		PublishedYear: b.PublishedYear,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func bookFromModel(m BookModel) domain.Book {
	return domain.Book{
		ID:            m.ID,
		Title:         m.Title,
		Author:        m.Author,
		Description:   m.Description,
		CoverURL:      m.CoverURL,
		PublishedYear: m.PublishedYear,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func statusToModel(e domain.StatusEntry) ReadingStatusModel {
	return ReadingStatusModel{
		UserID:    e.UserID,
		BookID:    e.BookID,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func statusFromModel(m ReadingStatusModel) domain.StatusEntry {
	return domain.StatusEntry{
		UserID:    m.UserID,
		BookID:    m.BookID,
		Status:    domain.ReadingStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func reviewToModel(r domain.Review) ReviewModel {
	return ReviewModel{
		ID:        r.ID,
		BookID:    r.BookID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func reviewFromModel(m ReviewModel) domain.Review {
	return domain.Review{
		ID:        m.ID,
		BookID:    m.BookID,
		UserID:    m.UserID,
		Rating:    m.Rating,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func contactToModel(c domain.ContactMessage) ContactModel {
	return ContactModel{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func contactFromModel(m ContactModel) domain.ContactMessage {
	return domain.ContactMessage{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
