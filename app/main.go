package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/kelias-gh/CRM/config"
	"github.com/kelias-gh/CRM/delivery"
	"github.com/kelias-gh/CRM/middleware"
	"github.com/kelias-gh/CRM/repository"
	"github.com/kelias-gh/CRM/service"
	"github.com/kelias-gh/CRM/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system environment variables")
	}

	// Register custom validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}

	// Boot DB
	db, err := config.BootDB()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := config.SeedDemoData(db); err != nil {
			log.Fatal("Failed to seed demo data: ", err)
		}
	}

	// Redis is only needed for rate limiting; without it the limiter is a no-op
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		redisClient := config.InitRedisDB(redisAddr, os.Getenv("REDIS_PASSWORD"), 0)
		middleware.InitRateLimiter(redisClient)
	} else {
		log.Println("REDIS_ADDR not set, rate limiting disabled")
	}

	// JWT secret validation
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET not found in env")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("JWT_SECRET must be at least 32 characters. Generate one with: openssl rand -base64 32")
	}

	// Init repositories
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	contactRepo := repository.NewContactRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Init services
	customerService := service.NewCustomerService(customerRepo, orderRepo, contactRepo)
	orderService := service.NewOrderService(orderRepo)
	contactService := service.NewContactService(contactRepo)
	dashboardService := service.NewDashboardService(customerRepo, orderRepo, contactRepo)
	authService := service.NewAuthService(userRepo, jwtSecret)

	// Init Gin
	app := gin.Default()
	config.InitMiddleware(app)

	// ========================================================================
	// INIT HANDLERS
	// ========================================================================
	delivery.NewAuthHandler(app, authService)
	delivery.NewDashboardHandler(app, dashboardService)
	delivery.NewCustomerHandler(app, customerService, authService.GetAccessTokenManager())
	delivery.NewOrderHandler(app, orderService, authService.GetAccessTokenManager())
	delivery.NewContactHandler(app, contactService, authService.GetAccessTokenManager())

	// ========================================================================
	// GRACEFUL SHUTDOWN SETUP
	// ========================================================================
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	srvAddr := ":" + port

	srv := &http.Server{
		Addr:           srvAddr,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server running at http://localhost%s", srvAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
