package routes

import (
	"time"

	"cineplus-api/internal/adapters/http/handlers"
	"cineplus-api/internal/adapters/http/middleware"
	"cineplus-api/internal/adapters/persistence/repositories"
	"cineplus-api/internal/config"
	"cineplus-api/internal/core/domain"
	"cineplus-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	adminRepo := repositories.NewAdminRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	genreRepo := repositories.NewGenreRepository(db)
	movieRepo := repositories.NewMovieRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	// Initialize services
	authService := services.NewAuthService(adminRepo, customerRepo, cfg)
	adminService := services.NewAdminService(adminRepo)
	customerService := services.NewCustomerService(customerRepo)
	genreService := services.NewGenreService(genreRepo)
	movieService := services.NewMovieService(movieRepo, genreRepo, reviewRepo)
	reviewService := services.NewReviewService(reviewRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	genreHandler := handlers.NewGenreHandler(genreService)
	movieHandler := handlers.NewMovieHandler(movieService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	auth := middleware.AuthMiddleware(cfg)
	moderator := middleware.RequireLevel(domain.LevelModerator)

	// Health check & docs
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Genres
	genres := app.Group("/genres")
	genres.Get("/", middleware.CacheControl(5*time.Minute), genreHandler.List)
	genres.Post("/", genreHandler.Create)
	genres.Put("/:id", genreHandler.Update)
	genres.Delete("/:id", genreHandler.Delete)

	// Movies (search and feature routes before the :id routes)
	movies := app.Group("/movies")
	movies.Get("/search/:term", movieHandler.Search)
	movies.Get("/", middleware.CacheControl(time.Minute), movieHandler.List)
	movies.Post("/", movieHandler.Create)
	movies.Patch("/:id/feature", auth, movieHandler.ToggleFeatured)
	movies.Get("/:id", movieHandler.Get)
	movies.Put("/:id", movieHandler.Update)
	movies.Patch("/:id", movieHandler.Patch)
	movies.Delete("/:id", movieHandler.Delete)

	// Reviews (flagged/movie/customer routes before the :id routes)
	reviews := app.Group("/reviews")
	reviews.Get("/flagged", auth, moderator, reviewHandler.ListFlagged)
	reviews.Get("/movie/:movieId", reviewHandler.ListByMovie)
	reviews.Get("/customer/:customerId", reviewHandler.ListByCustomer)
	reviews.Get("/", reviewHandler.List)
	reviews.Post("/", reviewHandler.Create)
	reviews.Patch("/:id/flag", auth, reviewHandler.Flag)
	reviews.Patch("/:id", auth, reviewHandler.Reply)
	reviews.Get("/:id", reviewHandler.Get)
	reviews.Put("/:id", reviewHandler.Update)
	reviews.Delete("/:id", reviewHandler.Delete)

	// Customers
	customers := app.Group("/customers")
	customers.Post("/login", middleware.NoCacheHeaders(), authHandler.CustomerLogin)
	customers.Post("/", customerHandler.Register)
	customers.Get("/", auth, customerHandler.List)
	customers.Get("/:id", customerHandler.Get)

	// Admins
	admins := app.Group("/admins")
	admins.Post("/login", middleware.NoCacheHeaders(), authHandler.AdminLogin)
	admins.Get("/", auth, adminHandler.List)
	admins.Post("/", auth, middleware.RequireLevel(domain.LevelManager), adminHandler.Create)
	admins.Get("/:id", auth, adminHandler.Get)

	// Dashboard
	dashboard := app.Group("/dashboard", middleware.CacheControl(time.Minute))
	dashboard.Get("/general", dashboardHandler.General)
	dashboard.Get("/moviesByGenre", dashboardHandler.MoviesByGenre)
	dashboard.Get("/moviesByAccess", dashboardHandler.MoviesByAccess)
}
