package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"tradie-receptionist/internal/api"
	"tradie-receptionist/internal/auth"
	"tradie-receptionist/internal/calllog"
	"tradie-receptionist/internal/config"
	"tradie-receptionist/internal/dispatch"
	"tradie-receptionist/internal/metrics"
	"tradie-receptionist/internal/model"
	"tradie-receptionist/internal/registry"
	"tradie-receptionist/internal/sms"
)

// @title Tradie AI Receptionist API
// @version 1.0
// @description Webhook receiver routing voice-platform call events to per-tradie prompts and SMS notifications
// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// Init Metrics
	metrics.Init()

	// Load Configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded")

	// Setup JWT Secret
	auth.SetSecret(cfg.Secrets.JWTSecret)

	// Load Tenant Registry
	reg, err := registry.Load(cfg.Tenants.File)
	if err != nil {
		log.Fatalf("Failed to load tenants: %v", err)
	}
	metrics.TenantsLoaded.Set(float64(reg.Len()))
	log.Printf("📞 Managing %d tradies", reg.Len())

	// Init SMS client + Notification Dispatcher
	smsClient := sms.NewClient(
		cfg.Secrets.TwilioAccountSID,
		cfg.Secrets.TwilioAuthToken,
		cfg.Secrets.TwilioSMSFrom,
		cfg.SMSTimeout(),
	)
	calls := calllog.NewStore()
	dispatcher := dispatch.NewDispatcher(smsClient, calls, cfg.Workers)
	dispatcher.Start()

	// Init API
	apiHandler := api.NewAPI(reg, dispatcher, calls, cfg)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: apiHandler.Router(),
	}

	// Graceful Shutdown Setup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Background loop for the daily spam summary at 6pm tenant-local time
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				var due []model.Tenant
				for _, t := range reg.Tenants() {
					if localNow(t.Timezone).Hour() == 18 && localNow(t.Timezone).Minute() == 0 {
						due = append(due, t)
					}
				}
				if len(due) > 0 {
					dispatcher.FlushSpamReports(due)
				}
			}
		}
	}()

	go func() {
		log.Printf("🎙️  Tradie AI Receptionist running on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done() // Wait for interrupt signal
	log.Println("Shutdown initiated...")

	// Shutdown sequence
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Stop HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}

	// Drain in-flight notifications
	dispatcher.Stop()

	log.Println("Graceful shutdown complete")
}

func localNow(tz string) time.Time {
	if tz == "" {
		tz = "Australia/Melbourne"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Now()
	}
	return time.Now().In(loc)
}
