package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "skarchitects/docs" // swagger docs

	"skarchitects/internal/auth"
	"skarchitects/internal/cache"
	"skarchitects/internal/config"
	"skarchitects/internal/db"
	"skarchitects/internal/handler"
	"skarchitects/internal/model"
	"skarchitects/internal/repository"
	"skarchitects/internal/router"
	"skarchitects/internal/service"
	"skarchitects/internal/upload"
)

// @title SK Architects API
// @version 1.0
// @description Content backend for the SK Architects marketing site: auth, portfolio projects, contact leads and image upload.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.ContactLead{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	contactRepo := repository.NewContactRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Image host is optional at startup; uploads fail cleanly without it.
	var uploader upload.Uploader
	if cfg.CloudinaryCloudName != "" {
		cld, err := upload.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.UploadFolder)
		if err != nil {
			log.Printf("cloudinary init: %v (uploads disabled)", err)
		} else {
			uploader = cld
		}
	} else {
		log.Println("CLOUDINARY_CLOUD_NAME not set, uploads disabled")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	projectService := service.NewProjectService(projectRepo, cacheClient)
	contactService := service.NewContactService(contactRepo)
	uploadService := service.NewUploadService(uploader)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	contactHandler := handler.NewContactHandler(contactService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		projectHandler,
		contactHandler,
		uploadHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
