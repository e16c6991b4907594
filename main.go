package main

import (
	"context"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"movie-watchlist/config"
	"movie-watchlist/controllers"
	"movie-watchlist/data_access"
	"movie-watchlist/middleware"
	"movie-watchlist/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Close(context.Background())

	// Repositories
	userRepo := data_access.NewUserRepository(mongodb)
	movieRepo := data_access.NewMovieRepository(mongodb)

	// Services
	authService := services.NewAuthService(userRepo)
	movieService := services.NewMovieService(userRepo, movieRepo)

	// Controllers
	authController := controllers.NewAuthController(authService)
	movieController := controllers.NewMovieController(movieService)

	r := gin.Default()
	r.Use(sessions.Sessions("watchlist", cookie.NewStore([]byte(cfg.SecretKey))))
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	// Open routes
	r.GET("/register", authController.RegisterPage)
	r.POST("/register", authController.Register)
	r.GET("/login", authController.LoginPage)
	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)
	r.GET("/movie/:id", movieController.MovieDetails)
	r.GET("/toggle_theme", movieController.ToggleTheme)

	// Routes that assume a logged-in caller
	protected := r.Group("")
	protected.Use(middleware.RequireLogin())
	{
		protected.GET("/", movieController.Index)
		protected.GET("/add", movieController.AddMoviePage)
		protected.POST("/add", movieController.AddMovie)
		protected.GET("/edit/:id", movieController.EditMoviePage)
		protected.POST("/edit/:id", movieController.EditMovie)
		protected.GET("/movie/:id/rate", movieController.Rate)
		protected.GET("/movie/:id/watched", movieController.MarkWatched)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
