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

	"gliitz-backend/internal/config"
	"gliitz-backend/internal/database"
	"gliitz-backend/internal/handlers"
	"gliitz-backend/internal/middleware"
	"gliitz-backend/internal/reply"
	"gliitz-backend/internal/repository"
	"gliitz-backend/internal/router"
	"gliitz-backend/internal/services"
	"gliitz-backend/internal/websocket"
	"gliitz-backend/internal/worker"
)

func main() {
	log.Println("🚀 Starting Gliitz Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis Clients ────
	redisClients, err := database.NewRedisClients(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClients.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	userRepo := repository.NewUserRepo(pool)
	conversationRepo := repository.NewConversationRepo(pool)
	venueRepo := repository.NewVenueRepo(pool)
	bookingRepo := repository.NewBookingRepo(pool)

	// ──── Step 5: Initialize Gemini Client (optional LLM fallback) ────
	var geminiService *services.GeminiService
	if cfg.GeminiAPIKey != "" {
		geminiService, err = services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiConcurrentReqs)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer geminiService.Close()
		log.Println("✓ Gemini Flash client initialized")
	} else {
		log.Println("⚠ GEMINI_API_KEY not set, LLM fallback disabled")
	}

	// ──── Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	emailService := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	authService := services.NewAuthService(userRepo, redisClients.Queue, jwtAuth, cfg.GoogleClientID)
	selector := reply.NewSelector(reply.DefaultCatalog())
	conciergeService := services.NewConciergeService(conversationRepo, venueRepo, userRepo, selector, geminiService, redisClients.Queue)

	// ──── Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(conciergeService)
	conversationHandler := handlers.NewConversationHandler(conversationRepo)
	venueHandler := handlers.NewVenueHandler(venueRepo)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, venueRepo, redisClients.Queue)
	userHandler := handlers.NewUserHandler(userRepo, authService)

	// ──── Step 6: Start Booking Dispatch Worker Pool ────
	workerPool := worker.NewPool(
		redisClients.Queue,
		emailService,
		userRepo,
		venueRepo,
		bookingRepo,
		cfg.ConciergeEmail,
		3,
	)
	workerPool.Start()
	log.Println("✓ Worker pool started (3 goroutines)")

	// ──── Step 7: Start WebSocket Hub ────
	wsHub := websocket.NewHub(redisClients.PubSub, jwtAuth)
	log.Println("✓ WebSocket hub started")

	// ──── Step 8: Start HTTP Server ────
	r := router.New(
		jwtAuth,
		authHandler,
		chatHandler,
		conversationHandler,
		venueHandler,
		bookingHandler,
		userHandler,
		wsHub,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		workerPool.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Gliitz Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
