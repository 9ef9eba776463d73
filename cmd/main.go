package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"keyhub/internal/config"
	"keyhub/internal/handlers"
	"keyhub/internal/middleware"
	"keyhub/internal/ratelimit"
	"keyhub/internal/repositories"
	"keyhub/internal/services"
	"keyhub/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	if err := database.Seed(ctx, pool); err != nil {
		log.Fatalf("Failed to seed defaults: %v", err)
	}

	// Create repositories
	projectRepo := repositories.NewProjectRepo(pool)
	licenseRepo := repositories.NewLicenseRepo(pool)
	bindingRepo := repositories.NewBindingRepo(pool)
	adminRepo := repositories.NewAdminRepo(pool)

	// Create services
	authService := services.NewAuthService(adminRepo, cfg.TokenSalt)
	projectService := services.NewProjectService(projectRepo)
	licenseService := services.NewLicenseService(licenseRepo, projectRepo)
	verifyService := services.NewVerifyService(licenseRepo, projectRepo, bindingRepo)
	bindingService := services.NewBindingService(bindingRepo)
	adminService := services.NewAdminService(adminRepo)

	// Create handlers
	authHandlers := handlers.NewAuthHandlers(authService)
	projectHandlers := handlers.NewProjectHandlers(projectService)
	licenseHandlers := handlers.NewLicenseHandlers(licenseService)
	verifyHandlers := handlers.NewVerifyHandlers(verifyService, cfg.VerifyMode)
	bindingHandlers := handlers.NewBindingHandlers(bindingService)
	adminHandlers := handlers.NewAdminHandlers(adminService)
	healthHandlers := handlers.NewHealthHandlers(pool)

	// Optional rate limiter for the public endpoints
	var limiter *ratelimit.Limiter
	if cfg.RedisAddr != "" {
		limiter = ratelimit.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RateLimit, cfg.RateLimitWindow)
		defer limiter.Close()
	}

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	api := e.Group("/api")

	// Public routes
	api.POST("/login", authHandlers.Login)
	public := api.Group("")
	public.Use(limiter.Middleware())
	public.POST("/register", licenseHandlers.RegisterLicense)
	public.POST("/verify", verifyHandlers.Verify)

	// Admin routes, token revalidated per request
	admin := api.Group("")
	admin.Use(middleware.AdminToken(authService))

	admin.GET("/projects", projectHandlers.ListProjects)
	admin.POST("/projects", projectHandlers.CreateProject)
	admin.PUT("/projects/:id", projectHandlers.UpdateProject)
	admin.DELETE("/projects/:id", projectHandlers.DeleteProject)

	admin.GET("/keys", licenseHandlers.ListLicenses)
	admin.POST("/keys", licenseHandlers.CreateLicense)
	admin.DELETE("/keys/:key", licenseHandlers.DeleteLicense)
	admin.PUT("/keys/:key/status", licenseHandlers.SetLicenseStatus)
	admin.PUT("/keys/:key/remarks", licenseHandlers.SetLicenseRemarks)

	if cfg.VerifyMode == config.VerifyModeMachine {
		admin.GET("/keys/:key/bindings", bindingHandlers.ListBindings)
		admin.DELETE("/bindings/:id", bindingHandlers.Unbind)
		admin.PUT("/bindings/:id/remarks", bindingHandlers.SetBindingRemarks)
	}

	admin.GET("/admin/users", adminHandlers.ListAdmins)
	admin.POST("/admin/users", adminHandlers.CreateAdmin)
	admin.PUT("/admin/users/:username", adminHandlers.RenameAdmin)
	admin.DELETE("/admin/users/:username", adminHandlers.DeleteAdmin)
	admin.PUT("/admin/users/:username/password", adminHandlers.ChangeAdminPassword)

	log.Printf("KeyHub starting on port %d (verify mode: %s)", cfg.Port, cfg.VerifyMode)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
