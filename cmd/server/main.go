package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventbooker/config"
	_ "eventbooker/docs"
	"eventbooker/internal/adapters/email"
	delivery "eventbooker/internal/delivery/http"
	"eventbooker/internal/delivery/http/controllers"
	"eventbooker/internal/delivery/http/middleware"
	"eventbooker/internal/repository/postgres"
	"eventbooker/internal/services"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title Event Booker API
// @version 1.0
// @description Event and booking management service
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := config.NewLogger()

	conn := postgres.NewConn(cfg.DBUrl)
	eventRepo := postgres.NewEventRepository(conn)
	bookingRepo := postgres.NewBookingRepository(conn)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipTLS,
		},
	}, logger)
	if err != nil {
		log.Fatalf("failed to create mailer: %v", err)
	}

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	eventService := services.NewEventService(eventRepo, serviceTimeout)
	bookingService := services.NewBookingService(bookingRepo, eventRepo, emailService, logger, serviceTimeout)

	eventController := controllers.NewEventController(logger, eventService)
	bookingController := controllers.NewBookingController(logger, bookingService)

	mux := delivery.NewRouter(eventController, bookingController)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.Logging(logger, handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	conn.Reset()
}
