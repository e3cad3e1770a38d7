package router

import (
	"net/http"

	"gocart/internal/handler"
	"gocart/internal/middleware"
	"gocart/internal/token"

	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
// Only the user-detail read carries token verification; the remaining routes
// are open, matching the upstream API surface.
func New(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	favoriteHandler *handler.FavoriteHandler,
	tokens *token.Manager,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Auth routes
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/checkPassword", authHandler.CheckPassword)
	mux.HandleFunc("POST /auth/forgetPass", authHandler.ForgetPassword)
	mux.HandleFunc("POST /auth/resetPass", authHandler.ResetPassword)

	// User routes
	requireAuth := middleware.RequireAuth(tokens, logger)
	mux.HandleFunc("GET /users", userHandler.GetAll)
	mux.HandleFunc("GET /users/exclude-admin", userHandler.GetAllExcludingAdmin)
	mux.HandleFunc("GET /users/search", userHandler.Search)
	mux.Handle("GET /users/{id}", requireAuth(http.HandlerFunc(userHandler.GetByID)))
	mux.HandleFunc("PUT /users/{id}", userHandler.Update)
	mux.HandleFunc("DELETE /users/{id}", userHandler.Delete)

	// Category routes
	mux.HandleFunc("POST /categories", categoryHandler.Create)
	mux.HandleFunc("GET /categories", categoryHandler.GetAll)
	mux.HandleFunc("GET /categories/{id}", categoryHandler.GetByID)
	mux.HandleFunc("PUT /categories/{id}", categoryHandler.Update)
	mux.HandleFunc("DELETE /categories/{id}", categoryHandler.Delete)

	// Product routes
	mux.HandleFunc("POST /products", productHandler.Create)
	mux.HandleFunc("GET /products", productHandler.GetAll)
	mux.HandleFunc("GET /products/pagination", productHandler.Paginate)
	mux.HandleFunc("GET /products/search", productHandler.Search)
	mux.HandleFunc("POST /products/category", productHandler.ByCategory)
	mux.HandleFunc("DELETE /products/delete-all", productHandler.DeleteAll)
	mux.HandleFunc("GET /products/{id}", productHandler.GetByID)
	mux.HandleFunc("PUT /products/{id}", productHandler.Update)
	mux.HandleFunc("DELETE /products/{id}", productHandler.Delete)
	mux.HandleFunc("DELETE /products", productHandler.DeleteMany)

	// Favorite routes
	mux.HandleFunc("POST /favorites", favoriteHandler.Create)
	mux.HandleFunc("POST /favorites/getall", favoriteHandler.GetAllByUser)
	mux.HandleFunc("POST /favorites/createOrDelete", favoriteHandler.Toggle)
	mux.HandleFunc("GET /favorites/likes", favoriteHandler.Likes)
	mux.HandleFunc("DELETE /favorites", favoriteHandler.Delete)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
