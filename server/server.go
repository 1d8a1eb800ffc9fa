package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"admin-server/auth"
	"admin-server/cache"
	"admin-server/confs"
	"admin-server/db"
	"admin-server/docs"
	"admin-server/handlers"
	httpHandler "admin-server/handlers/http"
	"admin-server/middleware"
	"admin-server/repositories"
	"admin-server/services"
	"admin-server/usecases"
	"admin-server/ws"
)

const (
	catalogTTL      = 60 * time.Second
	janitorInterval = 5 * time.Minute
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
	log zerolog.Logger
}

func NewServer(database db.Database, cfg *confs.Config, logger zerolog.Logger) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
		log: logger,
	}
}

func (s *Server) Start() error {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})
	s.app.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Admin server is running",
			"docs":    "/api-docs",
		})
	})
	docs.Register(s.app)

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	topicRepo := repositories.NewTopicPgRepository(s.db)
	promptRepo := repositories.NewPromptPgRepository(s.db)
	engineRepo := repositories.NewChatEnginePgRepository(s.db)
	loginRepo := repositories.NewLoginRecordPgRepository(s.db)
	systemInfoRepo := repositories.NewSystemInfoPgRepository(s.db)

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo, loginRepo, s.cfg)
	userUseCase := usecases.NewUserUseCase(userRepo)
	topicUseCase := usecases.NewTopicUseCase(topicRepo)
	promptUseCase := usecases.NewPromptUseCase(promptRepo)
	engineUseCase := usecases.NewChatEngineUseCase(engineRepo)
	chatUseCase := usecases.NewChatUseCase(engineRepo, topicRepo, promptRepo, services.NewProviderClient())
	loginTrackerUseCase := usecases.NewLoginTrackerUseCase(loginRepo)

	// Public catalog cache with background sweep
	catalog := cache.NewCatalog(catalogTTL)
	catalog.StartJanitor(janitorInterval, make(chan struct{}))

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	userHandler := httpHandler.NewUserHandler(userUseCase)
	topicHandler := httpHandler.NewTopicHandler(topicUseCase, catalog)
	promptHandler := httpHandler.NewPromptHandler(promptUseCase, catalog)
	engineHandler := httpHandler.NewChatEngineHandler(engineUseCase, catalog)
	publicHandler := httpHandler.NewPublicHandler(topicUseCase, promptUseCase, engineUseCase, chatUseCase, catalog)
	loginTrackerHandler := httpHandler.NewLoginTrackerHandler(loginTrackerUseCase)
	systemInfoHandler := httpHandler.NewSystemInfoHandler(systemInfoRepo)
	cacheHandler := handlers.NewCacheHandler(catalog)

	// WebSocket manager and chat handler
	manager := ws.NewManager()
	chatWSHandler := handlers.NewChatWSHandler(manager, chatUseCase, s.log)

	authenticate := middleware.Authenticate(userRepo, s.cfg.JWTSecret)

	api := s.app.Group("/api")
	{
		// Auth routes
		authGroup := api.Group("/auth")
		{
			// Register is open; a valid App_Admin token lets the caller
			// assign elevated roles.
			authGroup.POST("/register", middleware.OptionalAuthenticate(userRepo, s.cfg.JWTSecret), authHandler.Register)
			authGroup.POST("/login", authHandler.Login)

			me := authGroup.Group("", authenticate)
			{
				me.GET("/me", authHandler.Me)
				me.PUT("/profile", authHandler.UpdateProfile)
				me.PUT("/password", authHandler.UpdatePassword)
			}
		}

		// User management routes
		users := api.Group("/users", authenticate)
		{
			users.GET("", middleware.Authorize(auth.PermManageUsers), userHandler.List)
			users.GET("/:id", middleware.Authorize(auth.PermManageUsers), userHandler.Get)

			admin := users.Group("", middleware.RequireRole(auth.RoleAppAdmin))
			{
				admin.POST("", userHandler.Create)
				admin.PUT("/:id", userHandler.Update)
				admin.DELETE("/:id", userHandler.Delete)
				admin.PATCH("/:id/role", userHandler.UpdateRole)
				admin.PATCH("/:id/status", userHandler.ToggleStatus)
			}
		}

		// Topic routes
		topics := api.Group("/topics", authenticate)
		{
			topics.GET("", middleware.Authorize(auth.PermRead), topicHandler.List)
			topics.GET("/:id", middleware.Authorize(auth.PermRead), topicHandler.Get)
			topics.POST("", middleware.Authorize(auth.PermCreate), topicHandler.Create)
			topics.PUT("/:id", middleware.Authorize(auth.PermUpdate), topicHandler.Update)
			topics.PATCH("/:id/status", middleware.Authorize(auth.PermUpdate), topicHandler.ToggleStatus)
			topics.DELETE("/:id", middleware.Authorize(auth.PermDelete), topicHandler.Delete)
		}

		// Prompt routes
		prompts := api.Group("/prompts", authenticate)
		{
			prompts.GET("", middleware.Authorize(auth.PermRead), promptHandler.List)
			prompts.GET("/:id", middleware.Authorize(auth.PermRead), promptHandler.Get)
			prompts.POST("", middleware.Authorize(auth.PermCreate), promptHandler.Create)
			prompts.PUT("/:id", middleware.Authorize(auth.PermUpdate), promptHandler.Update)
			prompts.DELETE("/:id", middleware.Authorize(auth.PermDelete), promptHandler.Delete)
		}

		// Chat engine routes
		engines := api.Group("/chat-engines", authenticate)
		{
			engines.GET("", middleware.Authorize(auth.PermRead), engineHandler.List)
			engines.GET("/:id", middleware.Authorize(auth.PermRead), engineHandler.Get)
			engines.POST("", middleware.Authorize(auth.PermCreate), engineHandler.Create)
			engines.PUT("/:id", middleware.Authorize(auth.PermUpdate), engineHandler.Update)
			engines.PATCH("/:id/status", middleware.Authorize(auth.PermUpdate), engineHandler.ToggleStatus)
			engines.DELETE("/:id", middleware.Authorize(auth.PermDelete), engineHandler.Delete)
		}

		// Login history
		api.GET("/login-tracker", authenticate, middleware.Authorize(auth.PermManageUsers), loginTrackerHandler.List)

		// System info is public
		api.GET("/system-info", systemInfoHandler.Get)

		// Cache management endpoints
		cacheGroup := api.Group("/cache", authenticate, middleware.RequireRole(auth.RoleOwner))
		{
			cacheGroup.GET("/stats", cacheHandler.GetCacheStats)
			cacheGroup.POST("/flush", cacheHandler.FlushCache)
		}

		// WebSocket-related HTTP endpoints
		api.GET("/chat/sessions", authenticate, middleware.RequireRole(auth.RoleOwner), chatWSHandler.GetConnectedSessions)

		// Public routes consumed by the client app
		public := api.Group("/public")
		{
			public.GET("/topics", publicHandler.ListTopics)
			public.GET("/prompts", publicHandler.ListPrompts)
			public.GET("/chat-engines", publicHandler.ListChatEngines)
			public.POST("/chat-prompt", publicHandler.SubmitChatPrompt)
		}
	}

	s.app.GET("/ws/chat", chatWSHandler.HandleChatWS)

	s.log.Info().Str("port", s.cfg.Port).Str("env", s.cfg.Env).Msg("starting server")
	return s.app.Run("0.0.0.0:" + s.cfg.Port)
}
