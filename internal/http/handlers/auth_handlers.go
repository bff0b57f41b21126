package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/nupl21/dieta-app/internal/auth"
	"github.com/nupl21/dieta-app/internal/models"
	"github.com/nupl21/dieta-app/internal/repo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// LoginHandler godoc
// @Summary Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Failure 429 {string} string "Too many requests"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByUsername(r.Context(), credentials.Username)
	if err != nil {
		if !errors.Is(err, repo.ErrUserNotFound) {
			logger.Error("user lookup failed", zap.Error(err))
		}
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, LoginResult{Token: token})
}

// SeedAdmin creates the household admin account unless it already exists.
func SeedAdmin(ctx context.Context, username, password string) error {
	if password == "" {
		return nil
	}
	if _, err := userRepo.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, repo.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = userRepo.CreateUser(ctx, models.User{Username: username, PasswordHash: string(hash), Role: "admin"})
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return nil
	}
	return err
}
