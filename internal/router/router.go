package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"skarchitects/internal/auth"
	"skarchitects/internal/config"
	"skarchitects/internal/handler"
	"skarchitects/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	contactHandler *handler.ContactHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())

	// Advisory brute-force guard: per-process in-memory counters,
	// roughly 100 requests per 10 minutes per IP.
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(100.0 / 600.0),
			Burst:     100,
			ExpiresIn: 10 * time.Minute,
		}),
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	jwtMiddleware := auth.Middleware(cfg.JWTSecret)
	adminOnly := auth.RequireRole(model.RoleAdmin)

	// JSON routes share a small body cap; multipart upload is registered
	// outside the capped group.
	api := e.Group("/api", middleware.BodyLimit("10K"))

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/projects", projectHandler.List)
	api.POST("/contact", contactHandler.Submit)

	// Admin routes (require a bearer token with the admin role)
	admin := api.Group("", jwtMiddleware, adminOnly)
	admin.GET("/auth/users", authHandler.ListEmployees)
	admin.DELETE("/auth/users/:id", authHandler.DeleteUser)
	admin.POST("/projects", projectHandler.Create)
	admin.PUT("/projects/:id", projectHandler.Update)
	admin.DELETE("/projects/:id", projectHandler.Delete)
	admin.GET("/contact", contactHandler.ListLeads)

	e.POST("/api/upload", uploadHandler.Upload, jwtMiddleware, adminOnly)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
