package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/sems-dev/event-scheduling-api/internal/config"
	"github.com/sems-dev/event-scheduling-api/internal/constants"
	"github.com/sems-dev/event-scheduling-api/internal/database"
	"github.com/sems-dev/event-scheduling-api/internal/handlers"
	"github.com/sems-dev/event-scheduling-api/internal/middleware"
	"github.com/sems-dev/event-scheduling-api/internal/repository"
	"github.com/sems-dev/event-scheduling-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(database.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware. Redis is used when configured, with an
	// in-process cookie store as the single-node fallback.
	store, err := sessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	eventRepo := repository.NewEventRepository(database.GetDB())
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, cfg.PasswordHashing)
	eventService := services.NewEventService(eventRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	eventHandler := handlers.NewEventHandler(eventService)
	dashboardHandler := handlers.NewDashboardHandler(eventService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Event Scheduling API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// User management routes (protected; mostly admin-only)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth())
		{
			users.GET("", middleware.RequireAdmin(authService), userHandler.ListUsers)
			users.POST("", middleware.RequireAdmin(authService), userHandler.CreateUser)
			users.GET("/:id", middleware.RequireSelfOrAdmin(authService), userHandler.GetUser)
			users.PUT("/:id", middleware.RequireSelfOrAdmin(authService), userHandler.UpdateUser)
			users.DELETE("/:id", middleware.RequireAdmin(authService), userHandler.DeleteUser)
		}

		// Event routes (protected)
		events := api.Group("/events")
		events.Use(middleware.RequireAuth())
		{
			events.GET("", eventHandler.ListEvents)
			events.POST("", eventHandler.CreateEvent)
			events.GET("/recent", eventHandler.RecentEvents)
			events.GET("/counts", eventHandler.MonthCounts)
			events.GET("/:id", middleware.RequireEventAccess(eventService), eventHandler.GetEvent)
			events.PUT("/:id", middleware.RequireEventAccess(eventService), middleware.RequireEventOwner(authService), eventHandler.UpdateEvent)
			events.DELETE("/:id", middleware.RequireEventAccess(eventService), middleware.RequireEventOwner(authService), eventHandler.DeleteEvent)
		}

		// Dashboard (protected)
		api.GET("/dashboard", middleware.RequireAuth(), dashboardHandler.GetDashboard)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func sessionStore(cfg *config.Config) (sessions.Store, error) {
	isProduction := cfg.GinMode == "release"
	options := sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	}

	if cfg.RedisHost != "" {
		redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
		store, err := redisStore.NewStore(
			10,        // Redis pool size
			"tcp",     // network type
			redisAddr, // Redis address from config
			"",        // password (empty = no password)
			[]byte(cfg.SessionSecret), // authentication key
		)
		if err != nil {
			return nil, err
		}
		store.Options(options)
		return store, nil
	}

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(options)
	return store, nil
}
