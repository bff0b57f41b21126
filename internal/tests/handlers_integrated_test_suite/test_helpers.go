package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/nupl21/dieta-app/internal/db"
	handler "github.com/nupl21/dieta-app/internal/http/handlers"
	"github.com/nupl21/dieta-app/internal/repo"
)

var (
	token     string
	sheetRepo *repo.PostgresSheetRepository
	userRepo  *repo.PostgresUserRepository
	database  *sql.DB
)

func setupTestRepos(dbUrl, password string) {
	var err error
	database, err = db.Connect(dbUrl)
	if err != nil {
		log.Fatal("could not connect to database: ", err)
	}
	if err := db.EnsureSchema(database); err != nil {
		log.Fatal("could not prepare schema: ", err)
	}

	sheetRepo = repo.NewPostgresSheetRepository(database)
	handler.SetSheetRepo(sheetRepo)

	userRepo = repo.NewPostgresUserRepository(database)
	handler.SetUserRepo(userRepo)

	handler.SetCartRepo(repo.NewInMemoryCartRepository())
	handler.SetDefaultSchedule(7, 1)

	if err := handler.SeedAdmin(context.Background(), "admin", password); err != nil {
		log.Fatal("could not seed admin: ", err)
	}
}

func clearAllWorksheets() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := sheetRepo.Clear(ctx); err != nil {
		fmt.Println(fmt.Errorf("failed to clear worksheets: %w", err))
	}
}

func clearAllUsersExceptAdmin() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := database.ExecContext(ctx, "DELETE FROM users WHERE username <> 'admin'")
	if err != nil {
		fmt.Println(fmt.Errorf("failed to delete users: %w", err))
	}
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
