package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"bookreview/internal/app"
	"bookreview/pkg/domain"
)

type bookRequest struct {
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Description   string   `json:"description"`
	CoverURL      string   `json:"coverUrl"`
	PublishedYear int      `json:"publishedYear"`
	Genres        []string `json:"genres"`
}

func (s *Server) handleAdminBooks(w http.ResponseWriter, r *http.Request, user domain.User) {
	switch r.Method {
	case http.MethodGet:
		books, err := s.app.ListBooksWithStats()
		if err != nil {
			writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"books": books,
			"count": len(books),
		})
	case http.MethodPost:
		var req bookRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		book, err := s.app.CreateBook(bookPayload(req))
		if err != nil {
			writeAppError(w, r, err)
			return
		}
		s.audit(r, "admin.book.create", "success", "user_id", user.ID, "book_id", book.ID)
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "book created",
			"book":    book,
		})
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleAdminBookByID(w http.ResponseWriter, r *http.Request, user domain.User) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/books/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		var req bookRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		book, err := s.app.UpdateBook(id, bookPayload(req))
		if err != nil {
			writeAppError(w, r, err)
			return
		}
		s.audit(r, "admin.book.update", "success", "user_id", user.ID, "book_id", id)
		writeJSON(w, http.StatusOK, book)
	case http.MethodDelete:
		if err := s.app.DeleteBook(id); err != nil {
			writeAppError(w, r, err)
			return
		}
		s.audit(r, "admin.book.delete", "success", "user_id", user.ID, "book_id", id)
		writeJSON(w, http.StatusOK, map[string]string{"message": "book deleted"})
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request, _ domain.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	users, err := s.app.ListUsersWithStats()
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"users": users,
		"count": len(users),
	})
}

// handleAdminUserRole serves PUT /api/admin/users/{id}/role. Tokens issued
// before a role change keep their old role until the next login.
func (s *Server) handleAdminUserRole(w http.ResponseWriter, r *http.Request, user domain.User) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/admin/users/")
	id, ok := strings.CutSuffix(rest, "/role")
	if !ok || id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}
	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	updated, err := s.app.SetUserRole(id, req.Role)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	s.audit(r, "admin.user.role", "success", "user_id", user.ID, "target_id", id, "role", string(updated.Role))
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleAdminContacts(w http.ResponseWriter, r *http.Request, _ domain.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	contacts, err := s.app.ListContacts()
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"contacts": contacts,
		"count":    len(contacts),
	})
}

func (s *Server) handleAdminContactByID(w http.ResponseWriter, r *http.Request, user domain.User) {
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/contacts/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	if err := s.app.DeleteContact(id); err != nil {
		writeAppError(w, r, err)
		return
	}
	s.audit(r, "admin.contact.delete", "success", "user_id", user.ID, "contact_id", id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "contact deleted"})
}

func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request, _ domain.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	counts, err := s.app.DashboardCounts()
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func bookPayload(req bookRequest) app.BookPayload {
	return app.BookPayload{
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		CoverURL:      req.CoverURL,
		PublishedYear: req.PublishedYear,
		Genres:        req.Genres,
	}
}
