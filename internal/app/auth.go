package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookreview/pkg/auth"
	"bookreview/pkg/domain"
)

// Register creates a new account with the default user role.
func (a *App) Register(username, email, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if len(username) < 2 {
		return domain.User{}, validationErrorf("username must be at least 2 characters")
	}
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, validationErrorf("a valid email is required")
	}
	if err := auth.ValidatePassword(password); err != nil {
		return domain.User{}, validationErrorf("%s", err.Error())
	}
	exists, err := a.store.HasUserEmail(email)
	if err != nil {
		return domain.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return domain.User{}, ErrEmailAlreadyExists
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()
	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.store.CreateUser(user); err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks credentials and issues a signed identity token.
func (a *App) Login(email, password string) (domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return domain.User{}, "", validationErrorf("email and password are required")
	}
	user, ok, err := a.store.GetUserByEmail(email)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("get user: %w", err)
	}
	if !ok || !auth.CheckPassword(password, user.PasswordHash) {
		return domain.User{}, "", ErrInvalidCredentials
	}
	token, err := a.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// GetProfile returns the caller's own account.
func (a *App) GetProfile(userID string) (domain.User, error) {
	user, ok, err := a.store.GetUserByID(userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}

// ProfilePatch carries optional profile fields; nil means "leave as is".
type ProfilePatch struct {
	Username       *string
	Gender         *string
	FavoriteGenres []string
	Birthdate      *string
	Country        *string
	AvatarURL      *string
}

// UpdateProfile applies the supplied fields to the caller's account.
func (a *App) UpdateProfile(userID string, patch ProfilePatch) (domain.User, error) {
	user, ok, err := a.store.GetUserByID(userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	if patch.Username != nil {
		name := strings.TrimSpace(*patch.Username)
		if len(name) < 2 {
			return domain.User{}, validationErrorf("name must be at least 2 characters")
		}
		user.Username = name
	}
	if patch.Gender != nil {
		gender, ok := domain.ParseGender(*patch.Gender)
		if !ok {
			return domain.User{}, validationErrorf("gender must be one of male, female, other")
		}
		user.Gender = gender
	}
	if patch.FavoriteGenres != nil {
		genres := make([]string, 0, len(patch.FavoriteGenres))
		for _, g := range patch.FavoriteGenres {
			g = strings.TrimSpace(g)
			if len(g) < 2 {
				return domain.User{}, validationErrorf("genre names must be at least 2 characters")
			}
			genres = append(genres, g)
		}
		user.FavoriteGenres = genres
	}
	if patch.Birthdate != nil {
		raw := strings.TrimSpace(*patch.Birthdate)
		parsed, err := parseDate(raw)
		if err != nil {
			return domain.User{}, validationErrorf("invalid birthdate format")
		}
		user.Birthdate = &parsed
	}
	if patch.Country != nil {
		country := strings.TrimSpace(*patch.Country)
		if len(country) < 2 {
			return domain.User{}, validationErrorf("country must be at least 2 characters")
		}
		user.Country = country
	}
	if patch.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*patch.AvatarURL)
	}
	user.UpdatedAt = time.Now().UTC()
	if err := a.store.UpdateUser(user); err != nil {
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// SaveAvatar stores an uploaded profile image and records its reference
// path on the user row.
func (a *App) SaveAvatar(ctx context.Context, userID, filename string, r io.Reader, size int64, contentType string) (string, error) {
	if a.avatars == nil {
		return "", fmt.Errorf("avatar storage not configured")
	}
	user, ok, err := a.store.GetUserByID(userID)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	if !ok {
		return "", ErrUserNotFound
	}
	name := fmt.Sprintf("%s_%d%s", userID, time.Now().UnixMilli(), extension(filename))
	ref, err := a.avatars.Save(ctx, name, r, size, contentType)
	if err != nil {
		return "", fmt.Errorf("save avatar: %w", err)
	}
	user.AvatarURL = ref
	user.UpdatedAt = time.Now().UTC()
	if err := a.store.UpdateUser(user); err != nil {
		return "", fmt.Errorf("update user: %w", err)
	}
	return ref, nil
}

func extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return filename[idx:]
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
