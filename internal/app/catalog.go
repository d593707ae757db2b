package app

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookreview/pkg/domain"
)

// ListBooks returns the whole catalog. When requesterID is set each book
// carries that user's shelf status.
func (a *App) ListBooks(requesterID string) ([]domain.BookView, error) {
	views, err := a.store.ListBookViews(requesterID)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return views, nil
}

// GetBook returns one book with its genres, rating, and reviews.
func (a *App) GetBook(id string) (domain.BookView, error) {
	view, ok, err := a.store.GetBookView(id)
	if err != nil {
		return domain.BookView{}, fmt.Errorf("get book: %w", err)
	}
	if !ok {
		return domain.BookView{}, ErrBookNotFound
	}
	return view, nil
}

// Search filters the catalog by title/author substring and genre name.
// An empty result is ErrNoBooksMatched, not an empty success.
func (a *App) Search(term, genre string) ([]domain.BookView, error) {
	views, err := a.store.SearchBookViews(term, genre)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	if len(views) == 0 {
		return nil, ErrNoBooksMatched
	}
	return views, nil
}

// BookPayload carries book fields for create and update.
type BookPayload struct {
	Title         string
	Author        string
	Description   string
	CoverURL      string
	PublishedYear int
	Genres        []string
}

func (p BookPayload) validate() error {
	if len(strings.TrimSpace(p.Title)) < 2 {
		return validationErrorf("title must be at least 2 characters")
	}
	if len(strings.TrimSpace(p.Author)) < 2 {
		return validationErrorf("author must be at least 2 characters")
	}
	if cover := strings.TrimSpace(p.CoverURL); cover != "" {
		u, err := url.Parse(cover)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return validationErrorf("coverUrl must be a valid http(s) URL")
		}
	}
	if p.PublishedYear < 0 {
		return validationErrorf("publishedYear must be a positive integer")
	}
	for _, g := range p.Genres {
		if len(strings.TrimSpace(g)) < 2 {
			return validationErrorf("genre names must be at least 2 characters")
		}
	}
	return nil
}

// CreateBook adds a catalog entry, upserting any named genres. Admin
// gating happens at the router.
func (a *App) CreateBook(payload BookPayload) (domain.BookView, error) {
	if err := payload.validate(); err != nil {
		return domain.BookView{}, err
	}
	now := time.Now().UTC()
	book := domain.Book{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(payload.Title),
		Author:        strings.TrimSpace(payload.Author),
		Description:   strings.TrimSpace(payload.Description),
		CoverURL:      strings.TrimSpace(payload.CoverURL),
		PublishedYear: payload.PublishedYear,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := a.store.CreateBook(book, payload.Genres); err != nil {
		return domain.BookView{}, fmt.Errorf("create book: %w", err)
	}
	view, ok, err := a.store.GetBookView(book.ID)
	if err != nil {
		return domain.BookView{}, fmt.Errorf("read back book: %w", err)
	}
	if !ok {
		return domain.BookView{}, fmt.Errorf("created book missing")
	}
	return view, nil
}

// UpdateBook replaces the book's editable fields.
func (a *App) UpdateBook(id string, payload BookPayload) (domain.Book, error) {
	if err := payload.validate(); err != nil {
		return domain.Book{}, err
	}
	book := domain.Book{
		ID:            id,
		Title:         strings.TrimSpace(payload.Title),
		Author:        strings.TrimSpace(payload.Author),
		Description:   strings.TrimSpace(payload.Description),
		CoverURL:      strings.TrimSpace(payload.CoverURL),
		PublishedYear: payload.PublishedYear,
		UpdatedAt:     time.Now().UTC(),
	}
	found, err := a.store.UpdateBook(book)
	if err != nil {
		return domain.Book{}, fmt.Errorf("update book: %w", err)
	}
	if !found {
		return domain.Book{}, ErrBookNotFound
	}
	updated, ok, err := a.store.GetBook(id)
	if err != nil {
		return domain.Book{}, fmt.Errorf("read back book: %w", err)
	}
	if !ok {
		return domain.Book{}, ErrBookNotFound
	}
	return updated, nil
}

// DeleteBook removes the book together with its reviews, shelf rows, and
// genre links in one transaction.
func (a *App) DeleteBook(id string) error {
	found, err := a.store.DeleteBook(id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if !found {
		return ErrBookNotFound
	}
	return nil
}
