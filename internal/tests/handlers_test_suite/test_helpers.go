package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"

	handler "github.com/nupl21/dieta-app/internal/http/handlers"
	rl "github.com/nupl21/dieta-app/internal/http/rate_limiter"
	"github.com/nupl21/dieta-app/internal/http/router"
	"github.com/nupl21/dieta-app/internal/planner"
	"github.com/nupl21/dieta-app/internal/repo"
)

var (
	token     string
	sheetRepo *repo.InMemorySheetRepository
	cartRepo  *repo.InMemoryCartRepository
)

func init() {
	rl.Configure(1000, 1000)
	setupTestRepos("secret")
	r := router.NewRouter(nil)

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	sheetRepo = repo.NewInMemorySheetRepository()
	handler.SetSheetRepo(sheetRepo)

	cartRepo = repo.NewInMemoryCartRepository()
	handler.SetCartRepo(cartRepo)

	handler.SetUserRepo(repo.NewInMemoryUserRepository())
	handler.SetDefaultSchedule(7, 1)

	if err := handler.SeedAdmin(context.Background(), "admin", password); err != nil {
		panic(fmt.Sprintf("error seeding admin: %v", err))
	}
}

func clearAll() {
	sheetRepo.Clear()
	cartRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", w.Code)
	}

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path string, payload any, authorized bool) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func putProducts(r http.Handler, products []handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPut, "/products", products, true)
}

func putMenu(r http.Handler, menu []handler.MenuEntryRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPut, "/menu", menu, true)
}

func createSession(r http.Handler) (string, error) {
	w := doJSON(r, http.MethodPost, "/sessions", nil, false)
	if w.Code != http.StatusCreated {
		return "", fmt.Errorf("expected 201 Created, got %d", w.Code)
	}
	var resp handler.SessionResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", err
	}
	return resp.SessionID, nil
}

func plan(r http.Handler, session string, req handler.PlanRequest) (handler.PlanResult, int) {
	w := doJSON(r, http.MethodPost, "/sessions/"+session+"/plan", req, false)
	var resp handler.PlanResult
	json.NewDecoder(w.Body).Decode(&resp)
	return resp, w.Code
}

func updateLine(r http.Handler, session, product string, u planner.LineUpdate) (handler.CartResult, int) {
	w := doJSON(r, http.MethodPatch, "/sessions/"+session+"/cart/"+url.PathEscape(product), u, false)
	var resp handler.CartResult
	json.NewDecoder(w.Body).Decode(&resp)
	return resp, w.Code
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

// seedHousehold stores a small catalog and a week of breakfasts.
func seedHousehold(r http.Handler) error {
	products := []handler.ProductRequest{
		{Name: "Avena", Price: 3, Yield: 500, Unit: "g", Tier: "mensual", Location: "Mercado", Category: "Cereales"},
		{Name: "Leche", Price: 2.5, Yield: 1, Unit: "L", Tier: "semanal", Location: "Super", Category: "Lacteos"},
	}
	if w := putProducts(r, products); w.Code != http.StatusOK {
		return fmt.Errorf("products: expected 200 OK, got %d", w.Code)
	}

	var menu []handler.MenuEntryRequest
	for day := 1; day <= 7; day++ {
		menu = append(menu, handler.MenuEntryRequest{Product: "Avena", Weekday: day, Slot: "desayuno", Quantity: 80})
	}
	menu = append(menu,
		handler.MenuEntryRequest{Product: "Leche", Weekday: 1, Slot: "Desayuno", Quantity: 0.5},
		handler.MenuEntryRequest{Product: "Leche", Weekday: 3, Slot: "Desayuno", Quantity: 0.5},
	)
	if w := putMenu(r, menu); w.Code != http.StatusOK {
		return fmt.Errorf("menu: expected 200 OK, got %d", w.Code)
	}
	return nil
}

func findLine(lines []planner.Line, product string) (planner.Line, bool) {
	for _, l := range lines {
		if l.Product == product {
			return l, true
		}
	}
	return planner.Line{}, false
}

func findCartLine(cart planner.Cart, product string) (planner.CartLine, bool) {
	for _, l := range cart.Lines {
		if l.Product == product {
			return l, true
		}
	}
	return planner.CartLine{}, false
}

func decode(body io.Reader, v any) error {
	return json.NewDecoder(body).Decode(v)
}
