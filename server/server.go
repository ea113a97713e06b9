package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/securify-app/securify-backend/config"
	"github.com/securify-app/securify-backend/docs"
	activityHandler "github.com/securify-app/securify-backend/internal/handler/activity"
	userHandler "github.com/securify-app/securify-backend/internal/handler/user"
	"github.com/securify-app/securify-backend/internal/repository"
	activityService "github.com/securify-app/securify-backend/internal/service/activity"
	"github.com/securify-app/securify-backend/internal/service/cache"
	userService "github.com/securify-app/securify-backend/internal/service/user"
	"github.com/securify-app/securify-backend/middleware"
)

type RouterHandler struct {
	userHandler     *userHandler.UserHandler
	activityHandler *activityHandler.ActivityHandler
}

func RunServer(config *config.Config, logger *slog.Logger) {
	env := config.Env
	switch env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
		log.Println("🚀 Starting server in PRODUCTION mode")
	default:
		gin.SetMode(gin.DebugMode)
		log.Println("🔧 Starting server in DEVELOPMENT mode")
	}

	db, err := repository.NewRepository(config.DB)
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	domainRepo := repository.NewDomainRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	cacheService := cache.NewCacheService(config.Redis)

	userSrv := userService.NewUserService(userRepo)
	activitySrv := activityService.NewActivityService(userRepo, domainRepo, activityRepo, cacheService, logger)

	routerHandler := &RouterHandler{
		userHandler:     userHandler.NewUserHandler(userSrv),
		activityHandler: activityHandler.NewActivityHandler(activitySrv),
	}

	r := setupRouter(routerHandler, logger)

	srv := &http.Server{
		Addr:         ":" + config.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("✅ Server starting on port %s", config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	gracefulShutdown(srv)
}

func gracefulShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("🔄 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	select {
	case <-ctx.Done():
		log.Println("⚠️ Server shutdown timeout exceeded")
	default:
		log.Println("✅ Server gracefully stopped")
	}
}

func setupRouter(routerHandler *RouterHandler, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"service":   "securify-backend",
		})
	})

	docs.SwaggerInfo.Host = "127.0.0.1:4000"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	docs.SwaggerInfo.Title = "Securify backend API"
	docs.SwaggerInfo.Description = "Per-proxy domain activity logging and aggregation API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/"

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	userRoutes := r.Group("/user")
	{
		userRoutes.POST("/add", routerHandler.userHandler.CreateUser)
		userRoutes.GET("/:userID", routerHandler.userHandler.GetUser)
	}

	activityRoutes := r.Group("/activity")
	{
		activityRoutes.GET("/recent/:userID", routerHandler.activityHandler.GetRecent)
		activityRoutes.GET("/allTimeMostRequested/:userID", routerHandler.activityHandler.GetAllTimeMostRequested)
		activityRoutes.GET("/mostRequested/:userID", routerHandler.activityHandler.GetMostRequested)
		activityRoutes.POST("/log/:proxyID", routerHandler.activityHandler.LogActivity)
	}

	return r
}
