package main

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookreview/internal/config"
	"bookreview/internal/util"
	"bookreview/pkg/auth"
	"bookreview/pkg/domain"
	"bookreview/pkg/store"
)

type seedBook struct {
	book   domain.Book
	genres []string
}

func main() {
	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	util.InitLogger(cfg.LogLevel)

	var dataStore store.Store
	switch {
	case strings.TrimSpace(cfg.DatabaseURL) != "":
		dataStore, err = store.NewGormStore(cfg.DatabaseURL)
	case strings.TrimSpace(cfg.SQLitePath) != "":
		dataStore, err = store.NewSQLiteStore(cfg.SQLitePath)
	default:
		log.Fatal("database URL or sqlite path required")
	}
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}

	if err := seedAdmin(dataStore); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	if err := seedCatalog(dataStore); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	slog.Info("seed complete")
}

func seedAdmin(dataStore store.Store) error {
	const adminEmail = "admin@bookreview.local"
	exists, err := dataStore.HasUserEmail(adminEmail)
	if err != nil {
		return err
	}
	if exists {
		slog.Info("admin already present", "email", adminEmail)
		return nil
	}
	hash, err := auth.HashPassword("changeme123!")
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	admin := domain.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := dataStore.CreateUser(admin); err != nil {
		return err
	}
	slog.Info("admin user created", "email", adminEmail)
	return nil
}

func seedCatalog(dataStore store.Store) error {
	count, err := dataStore.BookCount()
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("catalog already seeded", "books", count)
		return nil
	}
	for _, entry := range starterCatalog() {
		entry.book.ID = uuid.NewString()
		now := time.Now().UTC()
		entry.book.CreatedAt = now
		entry.book.UpdatedAt = now
		if err := dataStore.CreateBook(entry.book, entry.genres); err != nil {
			return err
		}
		slog.Info("book seeded", "title", entry.book.Title)
	}
	return nil
}

func starterCatalog() []seedBook {
	return []seedBook{
		{
			book: domain.Book{
				Title:         "A Million to One",
				Author:        "Tony Faggioli",
				Description:   "A gripping tale of odds, chances, and the extraordinary moments that define our lives.",
				CoverURL:      "https://www.designforwriters.com/wp-content/uploads/2017/10/design-for-writers-book-cover-tf-2-a-million-to-one.jpg",
				PublishedYear: 2017,
			},
			genres: []string{"Fiction"},
		},
		{
			book: domain.Book{
				Title:         "The Great Gatsby",
				Author:        "F. Scott Fitzgerald",
				Description:   "A story of the mysterious Jay Gatsby and his love for Daisy Buchanan, set in the Jazz Age.",
				CoverURL:      "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1490528560i/4671.jpg",
				PublishedYear: 1925,
			},
			genres: []string{"Classic", "Fiction"},
		},
		{
			book: domain.Book{
				Title:         "To Kill a Mockingbird",
				Author:        "Harper Lee",
				Description:   "A powerful story about racial injustice in the Deep South.",
				CoverURL:      "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1553383690i/2657.jpg",
				PublishedYear: 1960,
			},
			genres: []string{"Classic", "Fiction"},
		},
		{
			book: domain.Book{
				Title:         "1984",
				Author:        "George Orwell",
				Description:   "A dystopian novel about totalitarianism and surveillance.",
				CoverURL:      "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1657781256i/61439040.jpg",
				PublishedYear: 1949,
			},
			genres: []string{"Dystopian", "Fiction"},
		},
		{
			book: domain.Book{
				Title:         "Pride and Prejudice",
				Author:        "Jane Austen",
				Description:   "A classic romance novel exploring love, society, and misunderstandings in 19th-century England.",
				CoverURL:      "https://images-na.ssl-images-amazon.com/images/S/compressed.photo.goodreads.com/books/1320399351i/1885.jpg",
				PublishedYear: 1813,
			},
			genres: []string{"Romance", "Classic"},
		},
	}
}
