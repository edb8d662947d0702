package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/clinicore/clinic-api/internal/config"
	"github.com/clinicore/clinic-api/internal/handler"
	appointmentHandler "github.com/clinicore/clinic-api/internal/handler/appointment"
	authHandler "github.com/clinicore/clinic-api/internal/handler/auth"
	billingHandler "github.com/clinicore/clinic-api/internal/handler/billing"
	medicalHandler "github.com/clinicore/clinic-api/internal/handler/medical"
	patientHandler "github.com/clinicore/clinic-api/internal/handler/patient"
	reportHandler "github.com/clinicore/clinic-api/internal/handler/report"
	userHandler "github.com/clinicore/clinic-api/internal/handler/user"
	"github.com/clinicore/clinic-api/internal/repository/sqlite"
	"github.com/clinicore/clinic-api/internal/router"
	appointmentService "github.com/clinicore/clinic-api/internal/service/appointment"
	authService "github.com/clinicore/clinic-api/internal/service/auth"
	billingService "github.com/clinicore/clinic-api/internal/service/billing"
	medicalService "github.com/clinicore/clinic-api/internal/service/medical"
	patientService "github.com/clinicore/clinic-api/internal/service/patient"
	reportService "github.com/clinicore/clinic-api/internal/service/report"
	userService "github.com/clinicore/clinic-api/internal/service/user"
	"github.com/clinicore/clinic-api/pkg/logger"
	"github.com/clinicore/clinic-api/pkg/security"
	"github.com/clinicore/clinic-api/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{
		Level:      parseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		Pretty:     cfg.Log.Pretty,
	})

	db, err := sqlite.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to open database")
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		log.Fatal(err, "failed to migrate database")
	}

	hasher := security.NewBcryptHasher(security.DefaultCost)
	if err := sqlite.SeedAdmin(context.Background(), db, hasher, cfg.Session.AdminSeed); err != nil {
		log.Fatal(err, "failed to seed admin user")
	}

	// Session store: in-process by default, redis when configured.
	var sessions session.Store
	if cfg.Redis.Enabled {
		sessions, err = session.NewRedisStore(session.RedisConfig{
			URL:          cfg.Redis.URL,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err != nil {
			log.Fatal(err, "failed to connect to redis")
		}
		log.Info("using redis session store")
	} else {
		sessions = session.NewMemoryStore(cfg.Session.TTL, 10*time.Minute)
	}

	// Repositories
	userRepo := sqlite.NewUserRepository(db)
	patientRepo := sqlite.NewPatientRepository(db)
	appointmentRepo := sqlite.NewAppointmentRepository(db)
	medicalRepo := sqlite.NewMedicalRecordRepository(db)
	billRepo := sqlite.NewBillRepository(db)
	reportRepo := sqlite.NewReportRepository(db)

	// Services
	authSvc := authService.NewService(userRepo, sessions, hasher, cfg.Session.Secret, cfg.Session.TTL, log)
	userSvc := userService.NewService(userRepo, hasher, log)
	patientSvc := patientService.NewService(patientRepo, log)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, log)
	medicalSvc := medicalService.NewService(medicalRepo, patientRepo, log)
	billingSvc := billingService.NewService(billRepo, patientRepo, log)
	reportSvc := reportService.NewService(reportRepo, appointmentRepo, log)

	// Router
	r := router.NewRouter(
		authSvc,
		authHandler.NewHandler(authSvc),
		handler.NewHealthHandler(db),
		log,
		router.Config{
			RateLimit:     rate.Limit(cfg.Server.RateLimitRPS),
			RateBurst:     cfg.Server.RateLimitBurst,
			MetricsPrefix: "clinic_api",
		},
		userHandler.NewHandler(userSvc),
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		medicalHandler.NewHandler(medicalSvc),
		billingHandler.NewHandler(billingSvc),
		reportHandler.NewHandler(reportSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info("server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}

func parseLevel(s string) logger.Level {
	switch s {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}
