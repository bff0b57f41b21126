package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/nupl21/dieta-app/docs"
	"github.com/nupl21/dieta-app/internal/http/handlers"
	mw "github.com/nupl21/dieta-app/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

func NewRouter(logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(logger))

	r.With(mw.RateLimitMiddleware).Post("/login", handlers.LoginHandler)

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/menu", handlers.GetMenuHandler)
	r.Get("/list", handlers.GetListHandler)
	r.Get("/recipes", handlers.GetRecipesHandler)
	r.Get("/worksheets/{name}/export", handlers.ExportWorksheetHandler)
	r.Get("/kitchen", handlers.KitchenHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware)
		r.Put("/products", handlers.PutProductsHandler)
		r.Put("/menu", handlers.PutMenuHandler)
		r.Put("/list", handlers.PutListHandler)
		r.Put("/recipes", handlers.PutRecipesHandler)
		r.Post("/worksheets/{name}/import", handlers.ImportWorksheetHandler)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", handlers.CreateSessionHandler)
		r.Post("/{id}/plan", handlers.PlanHandler)
		r.Post("/{id}/plan/weekly", handlers.WeeklyPlanHandler)
		r.Get("/{id}/cart", handlers.GetCartHandler)
		r.Patch("/{id}/cart/{product}", handlers.UpdateCartLineHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
