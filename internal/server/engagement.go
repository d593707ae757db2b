package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"bookreview/internal/app"
	"bookreview/pkg/domain"
)

type statusRequest struct {
	BookID string `json:"bookId"`
	Status string `json:"status"`
}

type reviewRequest struct {
	BookID string `json:"bookId"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// handleStatuses covers the shelf lifecycle on one route: GET lists,
// POST upserts, PATCH edits an existing row, DELETE removes it.
func (s *Server) handleStatuses(w http.ResponseWriter, r *http.Request, user domain.User) {
	switch r.Method {
	case http.MethodGet:
		statuses, err := s.app.ListStatuses(user.ID)
		if err != nil {
			writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"statuses": statuses,
			"count":    len(statuses),
		})
	case http.MethodPost:
		req, ok := decodeStatusRequest(w, r)
		if !ok {
			return
		}
		entry, err := s.app.SetStatus(user.ID, req.BookID, req.Status)
		if err != nil {
			writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "book status updated",
			"status":  entry,
		})
	case http.MethodPatch:
		req, ok := decodeStatusRequest(w, r)
		if !ok {
			return
		}
		entry, err := s.app.EditStatus(user.ID, req.BookID, req.Status)
		if err != nil {
			writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "book status edited",
			"status":  entry,
		})
	case http.MethodDelete:
		req, ok := decodeStatusRequest(w, r)
		if !ok {
			return
		}
		if err := s.app.RemoveStatus(user.ID, req.BookID); err != nil {
			writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "book status removed"})
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleStatusCounts(w http.ResponseWriter, r *http.Request, user domain.User) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	counts, err := s.app.StatusCounts(user.ID)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// handleReviews posts a review or lists a book's reviews.
func (s *Server) handleReviews(w http.ResponseWriter, r *http.Request, user domain.User) {
	switch r.Method {
	case http.MethodPost:
		var req reviewRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		review, err := s.app.AddReview(user.ID, req.BookID, req.Rating, req.Text)
		if err != nil {
			writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"review": review})
	case http.MethodGet:
		bookID := r.URL.Query().Get("bookId")
		reviews, err := s.app.ListReviews(bookID)
		if err != nil {
			writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"reviews": reviews,
			"count":   len(reviews),
		})
	default:
		methodNotAllowed(w)
	}
}

// handleReviewByID edits or deletes one review; ownership is enforced in
// the app layer so 403 and 404 stay distinct.
func (s *Server) handleReviewByID(w http.ResponseWriter, r *http.Request, user domain.User) {
	id := strings.TrimPrefix(r.URL.Path, "/api/reviews/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		var req reviewRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		review, err := s.app.EditReview(id, user.ID, reviewPatchFromRequest(req))
		if err != nil {
			writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"review": review})
	case http.MethodDelete:
		if err := s.app.DeleteReview(id, user.ID, user.Role); err != nil {
			writeAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request, user domain.User) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var req contactRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	contact, err := s.app.SubmitContact(user.ID, req.Name, req.Email, req.Message)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "your message has been sent",
		"contact": contact,
	})
}

func reviewPatchFromRequest(req reviewRequest) app.ReviewPatch {
	return app.ReviewPatch{Rating: req.Rating, Text: req.Text}
}

func decodeStatusRequest(w http.ResponseWriter, r *http.Request) (statusRequest, bool) {
	var req statusRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return statusRequest{}, false
	}
	return req, true
}
