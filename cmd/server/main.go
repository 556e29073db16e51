// Package main is the application entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"culturebridge/internal/config"
	"culturebridge/internal/handler"
	"culturebridge/internal/middleware"
	"culturebridge/internal/model"
	"culturebridge/internal/pipeline"
	"culturebridge/internal/repository"
	"culturebridge/internal/service"
	"culturebridge/pkg/database"
	"culturebridge/pkg/embedding"
	"culturebridge/pkg/kafka"
	"culturebridge/pkg/llm"
	"culturebridge/pkg/log"
	"culturebridge/pkg/media"
	"culturebridge/pkg/speech"
	"culturebridge/pkg/storage"
	"culturebridge/pkg/token"
	"culturebridge/pkg/vector"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Configuration
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. Logger
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()
	log.Info("Logger initialized")

	// 3. Backing stores
	database.InitMySQL(cfg.Database.MySQL.DSN)
	database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)
	storage.InitMinIO(cfg.MinIO)
	kafka.InitProducer(cfg.Kafka)

	if err := database.DB.AutoMigrate(&model.Report{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// The vector store is optional; without it support search answers
	// with a configuration error instead of failing startup.
	var vectorClient *vector.Client
	if cfg.Elasticsearch.Addresses != "" {
		var err error
		vectorClient, err = vector.NewClient(cfg.Elasticsearch, cfg.Embedding.Dimensions)
		if err != nil {
			log.Fatalf("Failed to connect to the vector store: %v", err)
		}
	} else {
		log.Warnf("Vector store not configured, support search disabled")
	}

	// 4. Repositories
	conversationRepo := repository.NewConversationRepository(database.RDB)
	reportRepo := repository.NewReportRepository(database.DB)
	videoJobRepo := repository.NewVideoJobRepository(database.RDB)

	// 5. Services
	jwtManager := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpireHours, cfg.JWT.RefreshTokenExpireDays)
	llmClient := llm.NewClient(cfg.LLM)
	var embeddingClient embedding.Client
	if cfg.Embedding.APIKey != "" {
		embeddingClient = embedding.NewClient(cfg.Embedding)
	}
	mediaClient := media.NewClient(cfg.Media)
	speechClient := speech.NewClient(cfg.Speech)

	chatService := service.NewChatService(llmClient, conversationRepo)
	analysisService := service.NewAnalysisService(llmClient)
	supportService := service.NewSupportService(embeddingClient, vectorClient)
	mediaService := service.NewMediaService(mediaClient, speechClient, videoJobRepo, cfg.Media)
	authService := service.NewAuthService(cfg.Admin, jwtManager)

	// 6. Background report archiver
	processor := pipeline.NewProcessor(reportRepo)
	go kafka.StartConsumer(cfg.Kafka, processor)

	// 7. Router
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	chatHandler := handler.NewChatHandler(chatService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	supportHandler := handler.NewSupportHandler(supportService)
	reportHandler := handler.NewReportHandler(reportRepo)
	authHandler := handler.NewAuthHandler(authService)

	apiV1 := r.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refreshToken", authHandler.RefreshToken)
		}

		apiV1.POST("/chat", chatHandler.Chat)
		apiV1.GET("/chat/stream", chatHandler.StreamChat)

		apiV1.POST("/analyze", analysisHandler.Analyze)
		apiV1.POST("/evaluate", analysisHandler.Evaluate)
		apiV1.POST("/canned-similar", analysisHandler.CannedSimilar)

		apiV1.POST("/video", mediaHandler.GenerateVideo)
		apiV1.GET("/video", mediaHandler.VideoStatus)
		apiV1.POST("/simulate", mediaHandler.Simulate)
		apiV1.POST("/image", mediaHandler.GenerateImage)
		apiV1.POST("/tts", mediaHandler.Synthesize)
		apiV1.POST("/transcribe", mediaHandler.Transcribe)

		apiV1.POST("/support-search", supportHandler.Search)

		// Admin surface
		admin := apiV1.Group("/")
		admin.Use(middleware.AuthMiddleware(jwtManager), middleware.AdminAuthMiddleware())
		{
			admin.POST("/embed-centers", supportHandler.EmbedCenters)
			admin.GET("/reports", reportHandler.List)
			admin.GET("/reports/:id", reportHandler.Get)
		}
	}

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP server shutdown failed: %v", err)
	}

	log.Info("Server stopped")
}
