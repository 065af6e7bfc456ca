package routes

import (
	"campus-exchange-backend/internal/api/handlers"
	"campus-exchange-backend/internal/api/middleware"
	"campus-exchange-backend/internal/auth"
	"campus-exchange-backend/internal/config"
	"campus-exchange-backend/internal/repository"
	"campus-exchange-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	componentRepo := repository.NewComponentRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Initialize services
	authService := auth.NewService(cfg.JWTSecret)
	githubService := service.NewGitHubService(cfg.GitHubToken)
	userService := service.NewUserService(userRepo, projectRepo, componentRepo, authService, validator)
	componentService := service.NewComponentService(componentRepo, validator)
	projectService := service.NewProjectService(projectRepo, githubService, validator)
	transactionService := service.NewTransactionService(transactionRepo, componentRepo, userRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	componentHandler := handlers.NewComponentHandler(componentService)
	projectHandler := handlers.NewProjectHandler(projectService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	authMiddleware := auth.NewMiddleware(authService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Public routes
		api.POST("/users/register", userHandler.Register)
		api.POST("/users/login", userHandler.Login)
		api.POST("/users/logout", userHandler.Logout)
		api.GET("/components", componentHandler.ListComponents)
		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/projects/:id/repo", projectHandler.GetRepoInfo)

		// Authenticated routes
		authed := api.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			authed.POST("/components", componentHandler.CreateComponent)
			authed.POST("/projects", projectHandler.CreateProject)
			authed.POST("/transactions", transactionHandler.CreateRequest)
			authed.PATCH("/transactions/:id", transactionHandler.UpdateStatus)
			authed.GET("/dashboard", transactionHandler.GetDashboard)
			authed.GET("/profile", userHandler.GetProfile)
		}
	}

	return router
}
