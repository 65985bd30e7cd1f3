package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	apihttp "github.com/techchallenge/pagamentos-service/internal/adapter/primary/http"
	"github.com/techchallenge/pagamentos-service/internal/adapter/secondary/database"
	"github.com/techchallenge/pagamentos-service/internal/adapter/secondary/messaging"
	"github.com/techchallenge/pagamentos-service/internal/adapter/secondary/notification"
	"github.com/techchallenge/pagamentos-service/internal/config"
	"github.com/techchallenge/pagamentos-service/internal/constant/model/db"
	"github.com/techchallenge/pagamentos-service/internal/core/service"
)

func main() {
	cfg := config.Load()

	// Initialize secondary adapter: Database
	dbConn, err := db.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	// Initialize secondary adapters: Repository, Messaging and Notifier (implement output ports)
	paymentRepo := database.NewGormPaymentRepository(dbConn.DB)
	events, err := messaging.NewRabbitMQClient(cfg.RabbitMQURL, cfg.ExchangeName)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer events.Close()

	notifier := notification.NewHTTPNotifier(cfg.NotificationURL)

	// Initialize core service (implements input port)
	paymentService := service.NewPaymentService(paymentRepo, notifier, events, cfg.WebhookBaseURL)

	// Initialize primary adapter: HTTP handler (uses input port)
	paymentHandler := apihttp.NewPaymentHandler(paymentService)

	// Initialize Echo
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Routes
	e.POST("/pagamentos", paymentHandler.CreatePayment)
	e.GET("/pagamentos", paymentHandler.ListPayments)
	e.POST("/webhook", paymentHandler.Webhook)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting API server on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
