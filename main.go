package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medcard/catalog"
	"medcard/config"
	"medcard/database"
	submissionRepo "medcard/database/repository/submission"
	"medcard/handlers"
	"medcard/routes"
	adminSvc "medcard/services/admin"
	"medcard/services/intake"
	"medcard/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Static reference data.
	stateCatalog, err := catalog.Load(config.AppConfig.StatesFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load state catalog: %v", err)
	}

	credentialService, err := adminSvc.NewCredentialService(config.AppConfig.AdminCredentialsFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load admin credentials: %v", err)
	}

	// Submission store, backend selected by config.
	var subRepo submissionRepo.SubmissionRepository
	switch config.AppConfig.StorageBackend {
	case "mongo":
		if err := database.InitDB(); err != nil {
			logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
		}
		subRepo = submissionRepo.NewMongoSubmissionRepo(database.MongoClient.Database("medcard"))
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisSubmissionsDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			logger.Sugar().Fatalf("main: failed to connect to Redis: %v", err)
		}
		subRepo = submissionRepo.NewRedisSubmissionRepo(client)
	case "file":
		subRepo = submissionRepo.NewFileSubmissionRepo(config.AppConfig.SubmissionsFile)
	default:
		logger.Sugar().Fatalf("main: unknown storage backend %q", config.AppConfig.StorageBackend)
	}

	// Services.
	intakeService := &intake.DefaultIntakeService{
		Repo:   subRepo,
		States: stateCatalog,
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	eligibilityHandler := handlers.NewEligibilityHandler(intakeService)
	stateHandler := handlers.NewStateHandler(stateCatalog)
	adminHandler := handlers.NewAdminHandler(credentialService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SubmitEligibilityHandler: eligibilityHandler.SubmitHandler,
		ListSubmissionsHandler:   eligibilityHandler.ListHandler,
		ListStatesHandler:        stateHandler.ListHandler,
		GetStateBySlugHandler:    stateHandler.GetBySlugHandler,
		AdminLoginHandler:        adminHandler.LoginHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
