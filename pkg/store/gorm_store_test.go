package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"bookreview/pkg/domain"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s *GormStore, username, email string) domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.CreateUser(u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func seedBook(t *testing.T, s *GormStore, title, author string, genres ...string) domain.Book {
	t.Helper()
	now := time.Now().UTC()
	b := domain.Book{
		ID:        uuid.NewString(),
		Title:     title,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CreateBook(b, genres); err != nil {
		t.Fatalf("create book: %v", err)
	}
	return b
}

func TestUserLookupByEmail(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice", "alice@example.com")

	exists, err := s.HasUserEmail("alice@example.com")
	if err != nil {
		t.Fatalf("has user email: %v", err)
	}
	if !exists {
		t.Fatal("expected email to exist")
	}
	got, found, err := s.GetUserByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("get user by email: %v", err)
	}
	if !found || got.ID != u.ID {
		t.Fatalf("expected user %s, got found=%v id=%s", u.ID, found, got.ID)
	}
	_, found, err = s.GetUserByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("get missing user: %v", err)
	}
	if found {
		t.Fatal("expected missing user to report not found")
	}
}

func TestSetUserRolePersists(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice", "alice@example.com")

	found, err := s.SetUserRole(u.ID, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("set user role: %v", err)
	}
	if !found {
		t.Fatal("expected user to be found")
	}
	got, found, err := s.GetUserByID(u.ID)
	if err != nil || !found {
		t.Fatalf("reload user: found=%v err=%v", found, err)
	}
	if got.Role != domain.RoleAdmin {
		t.Fatalf("role after SetUserRole = %q, want admin", got.Role)
	}

	// a later profile update must not reset the role
	got.Country = "NL"
	if err := s.UpdateUser(got); err != nil {
		t.Fatalf("update user: %v", err)
	}
	again, _, err := s.GetUserByID(u.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if again.Role != domain.RoleAdmin {
		t.Fatalf("role after profile update = %q, want admin", again.Role)
	}

	found, err = s.SetUserRole("missing", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("set role on missing user: %v", err)
	}
	if found {
		t.Fatal("expected missing user to report not found")
	}
}

func TestCreateBookUpsertsGenres(t *testing.T) {
	s := newTestStore(t)
	first := seedBook(t, s, "Dune", "Frank Herbert", "Fiction", "Adventure")
	second := seedBook(t, s, "Hyperion", "Dan Simmons", "Fiction")

	views, err := s.ListBookViews("")
	if err != nil {
		t.Fatalf("list book views: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 books, got %d", len(views))
	}
	byID := map[string][]string{}
	for _, v := range views {
		byID[v.ID] = v.Genres
	}
	if len(byID[first.ID]) != 2 {
		t.Fatalf("expected 2 genres on first book, got %v", byID[first.ID])
	}
	if len(byID[second.ID]) != 1 || byID[second.ID][0] != "Fiction" {
		t.Fatalf("expected shared Fiction genre on second book, got %v", byID[second.ID])
	}

	// both books must link the one surviving Fiction row
	shared, err := s.SearchBookViews("", "fiction")
	if err != nil {
		t.Fatalf("search shared genre: %v", err)
	}
	if len(shared) != 2 {
		t.Fatalf("expected both books under the shared genre, got %d", len(shared))
	}
}

func TestUpsertStatusKeepsOneRowPerUserBook(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice", "alice@example.com")
	b := seedBook(t, s, "Dune", "Frank Herbert", "Fiction")

	now := time.Now().UTC()
	entry := domain.StatusEntry{UserID: u.ID, BookID: b.ID, Status: domain.StatusWantToRead, CreatedAt: now, UpdatedAt: now}
	if err := s.UpsertStatus(entry); err != nil {
		t.Fatalf("upsert status: %v", err)
	}
	entry.Status = domain.StatusReading
	entry.UpdatedAt = now.Add(time.Second)
	if err := s.UpsertStatus(entry); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	saved, found, err := s.GetStatus(u.ID, b.ID)
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	if !found {
		t.Fatal("expected status row")
	}
	if saved.Status != domain.StatusReading {
		t.Fatalf("expected reading after upsert, got %q", saved.Status)
	}
	views, err := s.ListStatusesByUser(u.ID)
	if err != nil {
		t.Fatalf("list statuses: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected one shelf row, got %d", len(views))
	}
	if views[0].Book.Title != "Dune" {
		t.Fatalf("expected joined book, got %q", views[0].Book.Title)
	}
}

func TestUpdateStatusReportsMissingRow(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice", "alice@example.com")
	b := seedBook(t, s, "Dune", "Frank Herbert")

	found, err := s.UpdateStatus(u.ID, b.ID, domain.StatusRead)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if found {
		t.Fatal("expected no row to update")
	}
}

func TestStatusCountsByUser(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice", "alice@example.com")
	other := seedUser(t, s, "bob", "bob@example.com")
	books := []domain.Book{
		seedBook(t, s, "Book One", "Author A"),
		seedBook(t, s, "Book Two", "Author B"),
		seedBook(t, s, "Book Three", "Author C"),
	}
	now := time.Now().UTC()
	for i, st := range []domain.ReadingStatus{domain.StatusRead, domain.StatusRead, domain.StatusReading} {
		entry := domain.StatusEntry{UserID: u.ID, BookID: books[i].ID, Status: st, CreatedAt: now, UpdatedAt: now}
		if err := s.UpsertStatus(entry); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}
	if err := s.UpsertStatus(domain.StatusEntry{UserID: other.ID, BookID: books[0].ID, Status: domain.StatusWantToRead, CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("upsert other user: %v", err)
	}

	counts, err := s.StatusCountsByUser(u.ID)
	if err != nil {
		t.Fatalf("status counts: %v", err)
	}
	if counts.Read != 2 || counts.Reading != 1 || counts.WantToRead != 0 {
		t.Fatalf("unexpected counts %+v", counts)
	}
}

func TestDeleteBookRemovesDependents(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice", "alice@example.com")
	b := seedBook(t, s, "Dune", "Frank Herbert", "Fiction")

	now := time.Now().UTC()
	if err := s.UpsertStatus(domain.StatusEntry{UserID: u.ID, BookID: b.ID, Status: domain.StatusRead, CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("upsert status: %v", err)
	}
	review := domain.Review{ID: uuid.NewString(), BookID: b.ID, UserID: u.ID, Rating: 5, Text: "great", CreatedAt: now, UpdatedAt: now}
	if err := s.CreateReview(review); err != nil {
		t.Fatalf("create review: %v", err)
	}

	found, err := s.DeleteBook(b.ID)
	if err != nil {
		t.Fatalf("delete book: %v", err)
	}
	if !found {
		t.Fatal("expected book to be deleted")
	}
	if _, found, _ := s.GetBook(b.ID); found {
		t.Fatal("book still present after delete")
	}
	if _, found, _ := s.GetStatus(u.ID, b.ID); found {
		t.Fatal("status row still present after book delete")
	}
	if _, found, _ := s.GetReview(review.ID); found {
		t.Fatal("review still present after book delete")
	}

	found, err = s.DeleteBook(b.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if found {
		t.Fatal("expected second delete to report not found")
	}
}

func TestSearchBookViews(t *testing.T) {
	s := newTestStore(t)
	gatsby := seedBook(t, s, "The Great Gatsby", "F. Scott Fitzgerald", "Classic", "Fiction")
	seedBook(t, s, "1984", "George Orwell", "Dystopian")

	byTitle, err := s.SearchBookViews("gatsby", "")
	if err != nil {
		t.Fatalf("search by title: %v", err)
	}
	if len(byTitle) != 1 || byTitle[0].ID != gatsby.ID {
		t.Fatalf("expected gatsby only, got %d results", len(byTitle))
	}

	byAuthor, err := s.SearchBookViews("orwell", "")
	if err != nil {
		t.Fatalf("search by author: %v", err)
	}
	if len(byAuthor) != 1 || byAuthor[0].Title != "1984" {
		t.Fatalf("expected 1984 only, got %d results", len(byAuthor))
	}

	byGenre, err := s.SearchBookViews("", "classic")
	if err != nil {
		t.Fatalf("search by genre: %v", err)
	}
	if len(byGenre) != 1 || byGenre[0].ID != gatsby.ID {
		t.Fatalf("expected gatsby for classic genre, got %d results", len(byGenre))
	}

	none, err := s.SearchBookViews("zzz", "")
	if err != nil {
		t.Fatalf("search with no matches: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestBookViewRatingAndUserStatus(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice", "alice@example.com")
	bob := seedUser(t, s, "bob", "bob@example.com")
	b := seedBook(t, s, "Dune", "Frank Herbert", "Fiction")

	now := time.Now().UTC()
	for i, r := range []struct {
		user   string
		rating int
	}{{alice.ID, 5}, {bob.ID, 4}} {
		review := domain.Review{
			ID:        uuid.NewString(),
			BookID:    b.ID,
			UserID:    r.user,
			Rating:    r.rating,
			Text:      "review",
			CreatedAt: now.Add(time.Duration(i) * time.Second),
			UpdatedAt: now.Add(time.Duration(i) * time.Second),
		}
		if err := s.CreateReview(review); err != nil {
			t.Fatalf("create review: %v", err)
		}
	}
	if err := s.UpsertStatus(domain.StatusEntry{UserID: alice.ID, BookID: b.ID, Status: domain.StatusReading, CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("upsert status: %v", err)
	}

	view, found, err := s.GetBookView(b.ID)
	if err != nil {
		t.Fatalf("get book view: %v", err)
	}
	if !found {
		t.Fatal("expected book view")
	}
	if view.Rating != 4.5 {
		t.Fatalf("expected rating 4.5, got %v", view.Rating)
	}
	if len(view.Reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(view.Reviews))
	}

	views, err := s.ListBookViews(alice.ID)
	if err != nil {
		t.Fatalf("list with requester: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 book, got %d", len(views))
	}
	if views[0].UserStatus == nil || *views[0].UserStatus != domain.StatusReading {
		t.Fatalf("expected requester status reading, got %v", views[0].UserStatus)
	}

	anon, err := s.ListBookViews("")
	if err != nil {
		t.Fatalf("list anonymous: %v", err)
	}
	if anon[0].UserStatus != nil {
		t.Fatal("anonymous caller must not see a shelf status")
	}
}

func TestAdminStatsListings(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice", "alice@example.com")
	b := seedBook(t, s, "Dune", "Frank Herbert", "Fiction")

	now := time.Now().UTC()
	if err := s.CreateReview(domain.Review{ID: uuid.NewString(), BookID: b.ID, UserID: u.ID, Rating: 4, Text: "good", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("create review: %v", err)
	}
	if err := s.UpsertStatus(domain.StatusEntry{UserID: u.ID, BookID: b.ID, Status: domain.StatusRead, CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("upsert status: %v", err)
	}

	books, err := s.ListBooksWithStats()
	if err != nil {
		t.Fatalf("list books with stats: %v", err)
	}
	if len(books) != 1 || books[0].ReviewCount != 1 || books[0].AverageRating != 4 {
		t.Fatalf("unexpected book stats %+v", books)
	}
	users, err := s.ListUsersWithStats()
	if err != nil {
		t.Fatalf("list users with stats: %v", err)
	}
	if len(users) != 1 || users[0].ReviewCount != 1 || users[0].StatusCount != 1 {
		t.Fatalf("unexpected user stats %+v", users)
	}
}

func TestContactsLifecycle(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice", "alice@example.com")

	c := domain.ContactMessage{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Name:      "Alice",
		Email:     "alice@example.com",
		Message:   "hello",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.CreateContact(c); err != nil {
		t.Fatalf("create contact: %v", err)
	}
	views, err := s.ListContacts()
	if err != nil {
		t.Fatalf("list contacts: %v", err)
	}
	if len(views) != 1 || views[0].User.Username != "alice" {
		t.Fatalf("unexpected contacts %+v", views)
	}
	if err := s.DeleteContact(c.ID); err != nil {
		t.Fatalf("delete contact: %v", err)
	}
	if _, found, _ := s.GetContact(c.ID); found {
		t.Fatal("contact still present after delete")
	}
}
