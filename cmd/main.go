package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/temmu/temmu-api/docs"
	"github.com/temmu/temmu-api/internal/facades"
	"github.com/temmu/temmu-api/internal/handlers"
	"github.com/temmu/temmu-api/internal/jwt"
	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/middlewares"
	"github.com/temmu/temmu-api/internal/migrations"
	"github.com/temmu/temmu-api/internal/repositories"
	"github.com/temmu/temmu-api/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title temmu-api
// @version 1.0.0
// @description Fighter roster API with JWT authentication
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// run initializes the logger, database, optional Redis, Kafka and gRPC health server, and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.LogLevel)

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Connect to PostgreSQL
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.dsn())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if cfg.PGAutoMigrate {
		if err := migrations.Run(cfg.dsn()); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	// Optional Redis cache
	var fighterCache services.FighterCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		fighterCache = repositories.NewFighterCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
		logger.Log.Infow("fighter cache enabled", "addr", rdb.Options().Addr)
	}

	// Optional Kafka events
	var fighterEvents services.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher := facades.NewFighterEventPublisher(facades.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaFighterTopic))
		defer publisher.Close()
		fighterEvents = publisher
		logger.Log.Infow("fighter events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaFighterTopic)
	}

	// Optional gRPC health server
	errChan := make(chan error, 2)
	if cfg.GRPCHealthPort != "" {
		lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.AppHost, cfg.GRPCHealthPort))
		if err != nil {
			return fmt.Errorf("failed to listen for gRPC health: %w", err)
		}
		grpcServer := grpc.NewServer()
		healthServer := health.NewServer()
		healthpb.RegisterHealthServer(grpcServer, healthServer)
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		defer grpcServer.GracefulStop()

		go func() {
			logger.Log.Infow("gRPC health server listening", "addr", lis.Addr().String())
			if err := grpcServer.Serve(lis); err != nil {
				errChan <- fmt.Errorf("gRPC health server failed: %w", err)
			}
		}()
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithAudience(cfg.JWTAudience),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	fighterRepo := repositories.NewFighterRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	fighterService := services.NewFighterService(fighterRepo, fighterCache, fighterEvents)

	r := newRouter(db, tokens, authService, fighterService)

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	go func() {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires the public auth routes and the protected fighter routes.
func newRouter(
	db *sqlx.DB,
	tokens middlewares.Tokener,
	authService *services.AuthService,
	fighterService *services.FighterService,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
	})

	// Protected routes with JWT middleware, one unit of work per request
	r.Route("/api/fighters", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.Use(middlewares.TxMiddleware(db))

		r.Get("/", handlers.NewListFightersHandler(fighterService))
		r.Post("/", handlers.NewCreateFighterHandler(fighterService))
		r.Get("/{id}", handlers.NewGetFighterHandler(fighterService))
		r.Put("/{id}", handlers.NewUpdateFighterHandler(fighterService))
		r.Delete("/{id}", handlers.NewDeleteFighterHandler(fighterService))
	})

	return r
}
