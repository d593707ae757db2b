package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookreview/pkg/domain"
)

// SetStatus creates or overwrites the caller's shelf entry for a book.
func (a *App) SetStatus(userID, bookID string, rawStatus string) (domain.StatusEntry, error) {
	status, ok := domain.ParseReadingStatus(rawStatus)
	if !ok {
		return domain.StatusEntry{}, validationErrorf("status must be one of want_to_read, reading, read")
	}
	if bookID == "" {
		return domain.StatusEntry{}, validationErrorf("bookId is required")
	}
	if _, found, err := a.store.GetBook(bookID); err != nil {
		return domain.StatusEntry{}, fmt.Errorf("get book: %w", err)
	} else if !found {
		return domain.StatusEntry{}, ErrBookNotFound
	}
	now := time.Now().UTC()
	entry := domain.StatusEntry{
		UserID:    userID,
		BookID:    bookID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.store.UpsertStatus(entry); err != nil {
		return domain.StatusEntry{}, fmt.Errorf("upsert status: %w", err)
	}
	saved, found, err := a.store.GetStatus(userID, bookID)
	if err != nil {
		return domain.StatusEntry{}, fmt.Errorf("read back status: %w", err)
	}
	if !found {
		return domain.StatusEntry{}, fmt.Errorf("upserted status missing")
	}
	return saved, nil
}

// EditStatus changes an existing shelf entry; it never creates one.
func (a *App) EditStatus(userID, bookID string, rawStatus string) (domain.StatusEntry, error) {
	status, ok := domain.ParseReadingStatus(rawStatus)
	if !ok {
		return domain.StatusEntry{}, validationErrorf("status must be one of want_to_read, reading, read")
	}
	if bookID == "" {
		return domain.StatusEntry{}, validationErrorf("bookId is required")
	}
	found, err := a.store.UpdateStatus(userID, bookID, status)
	if err != nil {
		return domain.StatusEntry{}, fmt.Errorf("update status: %w", err)
	}
	if !found {
		return domain.StatusEntry{}, ErrStatusNotFound
	}
	saved, _, err := a.store.GetStatus(userID, bookID)
	if err != nil {
		return domain.StatusEntry{}, fmt.Errorf("read back status: %w", err)
	}
	return saved, nil
}

// RemoveStatus deletes the caller's shelf entry for a book.
func (a *App) RemoveStatus(userID, bookID string) error {
	if bookID == "" {
		return validationErrorf("bookId is required")
	}
	found, err := a.store.DeleteStatus(userID, bookID)
	if err != nil {
		return fmt.Errorf("delete status: %w", err)
	}
	if !found {
		return ErrStatusNotFound
	}
	return nil
}

// ListStatuses returns the caller's shelf newest-first with joined books.
func (a *App) ListStatuses(userID string) ([]domain.StatusView, error) {
	views, err := a.store.ListStatusesByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	return views, nil
}

// StatusCounts aggregates the caller's shelf by status.
func (a *App) StatusCounts(userID string) (domain.StatusCounts, error) {
	counts, err := a.store.StatusCountsByUser(userID)
	if err != nil {
		return domain.StatusCounts{}, fmt.Errorf("count statuses: %w", err)
	}
	return counts, nil
}

// AddReview posts a review. Rating bounds are enforced here rather than
// trusting the caller's form control.
func (a *App) AddReview(userID, bookID string, rating int, text string) (domain.Review, error) {
	if bookID == "" {
		return domain.Review{}, validationErrorf("bookId is required")
	}
	if strings.TrimSpace(text) == "" {
		return domain.Review{}, validationErrorf("review text is required")
	}
	if rating < 1 || rating > 5 {
		return domain.Review{}, validationErrorf("rating must be an integer between 1 and 5")
	}
	if _, found, err := a.store.GetBook(bookID); err != nil {
		return domain.Review{}, fmt.Errorf("get book: %w", err)
	} else if !found {
		return domain.Review{}, ErrBookNotFound
	}
	now := time.Now().UTC()
	review := domain.Review{
		ID:        uuid.NewString(),
		BookID:    bookID,
		UserID:    userID,
		Rating:    rating,
		Text:      strings.TrimSpace(text),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.store.CreateReview(review); err != nil {
		return domain.Review{}, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

// ListReviews returns a book's reviews newest-first. Zero reviews is the
// distinct ErrNoReviews signal.
func (a *App) ListReviews(bookID string) ([]domain.ReviewView, error) {
	if bookID == "" {
		return nil, validationErrorf("bookId is required")
	}
	views, err := a.store.ListReviewsByBook(bookID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if len(views) == 0 {
		return nil, ErrNoReviews
	}
	return views, nil
}

// ReviewPatch carries the editable review fields.
type ReviewPatch struct {
	Rating int
	Text   string
}

// EditReview updates a review; only the owner may edit.
func (a *App) EditReview(reviewID, callerID string, patch ReviewPatch) (domain.Review, error) {
	if strings.TrimSpace(patch.Text) == "" {
		return domain.Review{}, validationErrorf("review text is required")
	}
	if patch.Rating < 1 || patch.Rating > 5 {
		return domain.Review{}, validationErrorf("rating must be an integer between 1 and 5")
	}
	review, found, err := a.store.GetReview(reviewID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("get review: %w", err)
	}
	if !found {
		return domain.Review{}, ErrReviewNotFound
	}
	if review.UserID != callerID {
		return domain.Review{}, ErrForbidden
	}
	review.Rating = patch.Rating
	review.Text = strings.TrimSpace(patch.Text)
	review.UpdatedAt = time.Now().UTC()
	if err := a.store.UpdateReview(review); err != nil {
		return domain.Review{}, fmt.Errorf("update review: %w", err)
	}
	return review, nil
}

// DeleteReview removes a review; the owner or an admin may delete.
func (a *App) DeleteReview(reviewID, callerID string, callerRole domain.Role) error {
	review, found, err := a.store.GetReview(reviewID)
	if err != nil {
		return fmt.Errorf("get review: %w", err)
	}
	if !found {
		return ErrReviewNotFound
	}
	if callerRole != domain.RoleAdmin && review.UserID != callerID {
		return ErrForbidden
	}
	if err := a.store.DeleteReview(reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// SubmitContact records a contact message from an authenticated user.
func (a *App) SubmitContact(userID, name, email, message string) (domain.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return domain.ContactMessage{}, validationErrorf("name, email, and message are required")
	}
	contact := domain.ContactMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.store.CreateContact(contact); err != nil {
		return domain.ContactMessage{}, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}
