package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-analytics/pkg/validator"

	"github.com/johnquangdev/meeting-analytics/internal/adapter/handler"
	"github.com/johnquangdev/meeting-analytics/internal/infrastructure/storage"
	analysisuse "github.com/johnquangdev/meeting-analytics/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-analytics/internal/usecase/nlp"
	"github.com/johnquangdev/meeting-analytics/internal/usecase/transcription"
	"github.com/johnquangdev/meeting-analytics/pkg/config"
	"github.com/johnquangdev/meeting-analytics/pkg/ner"
	"github.com/johnquangdev/meeting-analytics/pkg/stt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// Reject oversized uploads before they reach the pipeline
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.Upload.MaxFileSizeBytes/(1024*1024)+1)))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize upload storage
	log.Println("📦 Initializing upload storage...")
	store, err := storage.NewLocalStore(cfg.Upload, logger)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Initialize speech-to-text engine
	log.Println("🎙️  Initializing speech-to-text engine...")
	var engine stt.Engine
	switch cfg.STT.Engine {
	case "assemblyai":
		engine = stt.NewAssemblyAIEngine(cfg.STT.AssemblyAPIKey)
	default:
		engine = stt.NewWhisperClient(cfg.STT.WhisperURL, cfg.STT.RequestTimeout)
	}
	log.Printf("✅ Speech-to-text engine: %s", engine.Name())

	// Initialize NER recognizer
	log.Println("🤖 Initializing NER recognizer...")
	recognizer := ner.NewHTTPRecognizer(cfg.NER.URL, cfg.NER.RequestTimeout)

	// Initialize services
	log.Println("⚙️  Initializing services...")
	transcriptionSvc := transcription.NewService(engine, logger)
	nlpSvc := nlp.NewService(recognizer, nil, logger)
	analysisSvc := analysisuse.NewService(transcriptionSvc, nlpSvc, store, cfg.STT.WhisperModelSize, logger)

	// Initialize controller
	log.Println("🚀 Initializing analysis controller...")
	analysisController := handler.NewAnalysisController(analysisSvc, store, cfg.Server.ProcessTimeout, logger)
	log.Println("✅ Analysis controller initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, analysisController)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
