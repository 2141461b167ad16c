package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/stockpile-io/stockpile/docs"
	"github.com/stockpile-io/stockpile/internal/http/handlers"
	"github.com/stockpile-io/stockpile/internal/models"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/login", handlers.LoginHandler)
		r.Post("/refresh", handlers.RefreshHandler)
		r.Post("/logout", handlers.LogoutHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)

		r.Get("/me", handlers.MeHandler)

		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/search", handlers.FilterProductsHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Post("/products/{id}/restock", handlers.RestockHandler)
		r.Get("/products/{id}/movements", handlers.GetMovementsHandler)

		r.Get("/restock/suggestions", handlers.RestockSuggestionsHandler)
		r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)
		r.Get("/reports", handlers.GetReportHandler)
		r.Get("/reports/export", handlers.ExportReportHandler)

		r.Group(func(r chi.Router) {
			r.Use(RequireRole(models.RoleAdmin))
			r.Post("/products", handlers.CreateProductHandler)
			r.Put("/products/{id}", handlers.UpdateProductHandler)
			r.Delete("/products/{id}", handlers.DeleteProductHandler)
			r.Post("/products/import", handlers.ImportProductsHandler)
			r.Post("/admin/users", handlers.RegisterUserHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
