package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/multierr"
	"golang.org/x/time/rate"

	"sara-web/internal/api"
	"sara-web/internal/cache"
	"sara-web/internal/config"
	"sara-web/internal/controllers"
	"sara-web/internal/logger"
	"sara-web/internal/middleware"
	"sara-web/internal/service"
	"sara-web/internal/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	// Token and flash store: Redis when configured, in-process otherwise
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		var err error
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Warnf("Failed to connect to Redis (%v). Continuing without cache, sessions will not survive a restart.", err)
		} else {
			log.Info("Connected to Redis cache")
		}
	}
	if cacheClient == nil {
		cacheClient = cache.NewMemoryCache()
	}

	store := session.NewStore(cacheClient, cfg.SessionTTL)

	// Backend client and services
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	authService := service.NewAuthService(client, store)
	appointmentService := service.NewAppointmentService(client, store)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	defer generalRateLimiter.Stop()
	defer authRateLimiter.Stop()

	router, err := controllers.NewRouter(controllers.RouterConfig{
		AuthService:        authService,
		AppointmentService: appointmentService,
		Store:              store,
		Log:                log,
		Session: middleware.SessionOptions{
			MaxAge: cfg.SessionTTL,
			Secure: cfg.CookieSecure,
		},
		GeneralLimiter: generalRateLimiter,
		AuthLimiter:    authRateLimiter,
	})
	if err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("Server starting on http://localhost:%s (backend %s)", cfg.Port, cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := multierr.Combine(srv.Shutdown(ctx), cacheClient.Close()); err != nil {
		log.Errorf("Shutdown finished with errors: %v", err)
		return
	}
	log.Info("Server stopped")
}
