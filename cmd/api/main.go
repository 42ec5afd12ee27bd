package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fdemusso/FlashCardIA/internal/adapter/ollama"
	"github.com/fdemusso/FlashCardIA/internal/config"
	"github.com/fdemusso/FlashCardIA/internal/handler"
	"github.com/fdemusso/FlashCardIA/internal/logger"
	"github.com/fdemusso/FlashCardIA/internal/middleware"
	"github.com/fdemusso/FlashCardIA/internal/pdf"
	"github.com/fdemusso/FlashCardIA/internal/service"
	"github.com/fdemusso/FlashCardIA/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	generator, err := ollama.NewGenerator(cfg.Ollama, cfg.Generation.CardsPerWindow, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create Ollama generator", zap.Error(err))
	}
	appLogger.Info("Ollama generator initialized",
		zap.String("server_url", cfg.Ollama.ServerURL),
		zap.String("model", cfg.Ollama.Model),
	)

	extractor := pdf.NewExtractor(cfg.PDF, appLogger)

	validator := validation.New(validation.Rules{
		DefaultScore:      cfg.Validation.DefaultScore,
		MinQuestionLength: cfg.Validation.MinQuestionLength,
		MinAnswerLength:   cfg.Validation.MinAnswerLength,
		OptionCount:       cfg.Validation.OptionCount,
	}, appLogger)

	generationService := service.NewGenerationService(generator, validator, cfg.Generation)
	flashcardHandler := handler.NewFlashcardHandler(extractor, generationService, generator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/health", flashcardHandler.Health)

	apiGroup := app.Group("/api")
	apiGroup.Post("/upload-pdf", flashcardHandler.UploadPDF)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
