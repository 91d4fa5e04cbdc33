package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"familysync-backend/internal/api"
	"familysync-backend/internal/config"
	"familysync-backend/internal/core"
	"familysync-backend/internal/db"
	"familysync-backend/internal/middleware"
	"familysync-backend/pkg/cache"
)

func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	// --- 1. Initialize Logger (Zap) ---
	var zapLogger *zap.Logger
	var err error
	if strings.ToLower(os.Getenv("GIN_MODE")) == "release" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	// --- 2. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// --- 3. Initialize Firebase Admin SDK (Firestore, Auth, Messaging) ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirebase(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firebase Admin SDK", zap.Error(err))
	}

	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	messagingClient := db.GetMessagingClient()
	if firestoreClient == nil || firebaseAuthClient == nil || messagingClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firebase clients are nil after initialization. Application cannot start.")
	}
	zapLogger.Info("Firebase Admin SDK initialized successfully.")

	// --- 4. Optional Redis cache for membership lookups ---
	var membershipCache cache.Cache
	if appConfig.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(initCtx, cache.RedisConfig{
			Address:  appConfig.RedisAddr,
			Password: appConfig.RedisPassword,
			DB:       appConfig.RedisDB,
		})
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to Redis", zap.Error(err))
		}
		defer redisCache.Close()
		membershipCache = redisCache
		zapLogger.Info("Redis membership cache enabled", zap.String("addr", appConfig.RedisAddr))
	} else {
		zapLogger.Warn("Redis membership cache disabled: REDIS_ADDR is not configured. Every membership check hits Firestore.")
	}

	// --- 5. Initialize Repositories ---
	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	familyRepo := db.NewFirestoreFamilyRepository(firestoreClient)
	childRepo := db.NewFirestoreChildRepository(firestoreClient)
	taskRepo := db.NewFirestoreTaskRepository(firestoreClient)
	eventRepo := db.NewFirestoreEventRepository(firestoreClient)
	shoppingRepo := db.NewFirestoreShoppingRepository(firestoreClient)
	noteRepo := db.NewFirestoreNoteRepository(firestoreClient)
	zapLogger.Info("Repositories initialized successfully.")

	// --- 6. Initialize Services ---
	notifier := core.NewNotifier(userRepo, core.NewFCMSender(messagingClient), appConfig.NotifyMaxConcurrent, zapLogger)
	membershipService := core.NewMembershipService(familyRepo, membershipCache, appConfig.MembershipCacheTTL, zapLogger)
	services := api.Services{
		Profile:  core.NewProfileService(userRepo, familyRepo, zapLogger),
		Family:   core.NewFamilyService(familyRepo, membershipService, zapLogger),
		Child:    core.NewChildService(childRepo, membershipService, zapLogger),
		Task:     core.NewTaskService(taskRepo, membershipService, notifier, zapLogger),
		Calendar: core.NewCalendarService(eventRepo, membershipService, notifier, zapLogger),
		Shopping: core.NewShoppingService(shoppingRepo, membershipService, notifier, zapLogger),
		Note:     core.NewNoteService(noteRepo, membershipService, zapLogger),
		Schedule: core.NewScheduleService(eventRepo, membershipService, zapLogger),
	}
	zapLogger.Info("Core services initialized successfully.")

	// --- 7. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// --- 8. Apply Global Middleware (order matters) ---
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig.ClientURL))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured.")
	}

	// --- 9. Setup API Routes ---
	api.SetupRoutes(router, firebaseAuthClient, zapLogger, services)

	// --- 10. Configure and Start HTTP Server ---
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Port),
		Handler: router,
	}
	zapLogger.Info("Starting HTTP server...", zap.String("address", httpServer.Addr), zap.String("ginMode", gin.Mode()))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 11. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	// Let in-flight notification fan-outs drain before exiting.
	notifier.Close()

	zapLogger.Info("Server exiting gracefully.")
}
