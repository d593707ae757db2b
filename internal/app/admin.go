package app

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"bookreview/pkg/domain"
)

// ListBooksWithStats returns every book with its review count and
// average rating for the admin dashboard.
func (a *App) ListBooksWithStats() ([]domain.BookStats, error) {
	stats, err := a.store.ListBooksWithStats()
	if err != nil {
		return nil, fmt.Errorf("list book stats: %w", err)
	}
	return stats, nil
}

// ListUsersWithStats returns every user (password hash excluded) with
// per-user review and shelf-row counts.
func (a *App) ListUsersWithStats() ([]domain.UserStats, error) {
	stats, err := a.store.ListUsersWithStats()
	if err != nil {
		return nil, fmt.Errorf("list user stats: %w", err)
	}
	return stats, nil
}

// SetUserRole changes another account's role and returns the updated user.
func (a *App) SetUserRole(id, role string) (domain.User, error) {
	parsed, ok := domain.ParseRole(role)
	if !ok {
		return domain.User{}, validationErrorf("role must be one of user, admin")
	}
	found, err := a.store.SetUserRole(id, parsed)
	if err != nil {
		return domain.User{}, fmt.Errorf("set user role: %w", err)
	}
	if !found {
		return domain.User{}, ErrUserNotFound
	}
	user, found, err := a.store.GetUserByID(id)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}

// ListContacts returns contact messages newest-first.
func (a *App) ListContacts() ([]domain.ContactView, error) {
	contacts, err := a.store.ListContacts()
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// DeleteContact removes one contact message.
func (a *App) DeleteContact(id string) error {
	_, found, err := a.store.GetContact(id)
	if err != nil {
		return fmt.Errorf("get contact: %w", err)
	}
	if !found {
		return ErrContactNotFound
	}
	if err := a.store.DeleteContact(id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// DashboardCounts computes the four dashboard totals. The counts are
// independent, so they run concurrently.
func (a *App) DashboardCounts() (domain.DashboardCounts, error) {
	var counts domain.DashboardCounts
	var g errgroup.Group
	g.Go(func() error {
		n, err := a.store.BookCount()
		counts.TotalBooks = n
		return err
	})
	g.Go(func() error {
		n, err := a.store.UserCount()
		counts.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := a.store.ReviewCount()
		counts.TotalReviews = n
		return err
	})
	g.Go(func() error {
		n, err := a.store.ContactCount()
		counts.TotalContacts = n
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DashboardCounts{}, fmt.Errorf("dashboard counts: %w", err)
	}
	return counts, nil
}
