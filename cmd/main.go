package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/dino-pet-server/internal/handlers"
	"github.com/sbilibin2017/dino-pet-server/internal/logger"
	"github.com/sbilibin2017/dino-pet-server/internal/middlewares"
	"github.com/sbilibin2017/dino-pet-server/internal/migrations"
	"github.com/sbilibin2017/dino-pet-server/internal/repositories"
	"github.com/sbilibin2017/dino-pet-server/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title dino-pet-server API
// @version 1.0.0
// @description Backend for the browser dino pet game: accounts, sessions and save documents
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, appEnv, publicOrigin,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		sessionTTLHours, attemptMax, attemptWindowSeconds,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, appEnv, publicOrigin,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisAddr, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		sessionTTLHours, attemptMax, attemptWindowSeconds,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka and auth configuration.
// Redis and Kafka are optional: empty addresses disable them.
func parseConfig(path string) (
	appHost, appPort, logLevel, appEnv, publicOrigin string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	sessionTTLHours, attemptMax, attemptWindowSeconds int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	appEnv = getEnv("APP_ENV", "development")
	publicOrigin = getEnv("APP_PUBLIC_ORIGIN", "")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "dinopet")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config (attempt limiter)
	redisAddr = getEnv("REDIS_ADDR", "")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}

	// Kafka config (auth audit events)
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "auth-events")

	// Auth config
	if sessionTTLHours, err = strconv.Atoi(getEnv("SESSION_TTL_HOURS", "168")); err != nil {
		return
	}
	if attemptMax, err = strconv.Atoi(getEnv("AUTH_ATTEMPT_MAX", "10")); err != nil {
		return
	}
	if attemptWindowSeconds, err = strconv.Atoi(getEnv("AUTH_ATTEMPT_WINDOW_SECONDS", "60")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, optional Redis and Kafka clients,
// and the HTTP server. It applies migrations, sets up routes and middleware,
// and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, appEnv, publicOrigin string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisAddr string, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	sessionTTLHours, attemptMax, attemptWindowSeconds int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	secureCookies := appEnv == "production"

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "err", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	// Apply migrations
	if err := migrations.Up(ctx, db.DB); err != nil {
		logger.Log.Errorw("migrations failed", "err", err)
		return err
	}

	// Connect to Redis (optional; the limiter degrades gracefully without it)
	var limiter services.AttemptLimiter
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "err", err)
			return err
		}
		defer rdb.Close()
		limiter = repositories.NewAttemptLimitRepository(rdb, attemptMax, time.Duration(attemptWindowSeconds)*time.Second)
	} else {
		logger.Log.Info("Redis not configured, attempt limiting disabled")
	}

	// Connect to Kafka (optional)
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Info("Kafka not configured, auth audit events disabled")
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	sessionReadRepo := repositories.NewSessionReadRepository(db)
	sessionWriteRepo := repositories.NewSessionWriteRepository(db)
	saveReadRepo := repositories.NewSaveReadRepository(db)
	saveWriteRepo := repositories.NewSaveWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(
		userReadRepo, userWriteRepo,
		sessionReadRepo, sessionWriteRepo,
		limiter, kafkaWriter,
		time.Duration(sessionTTLHours)*time.Hour,
	)
	saveService := services.NewSaveService(saveReadRepo, saveWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService, secureCookies)
	loginHandler := handlers.NewLoginHandler(authService, secureCookies)
	logoutHandler := handlers.NewLogoutHandler(authService, secureCookies)
	meHandler := handlers.NewMeHandler()
	csrfHandler := handlers.NewCsrfHandler()
	loadHandler := handlers.NewLoadHandler(saveService)
	saveHandler := handlers.NewSaveHandler(saveService)
	activeHandler := handlers.NewActiveDinoHandler(saveService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.SessionMiddleware(authService, secureCookies))
	r.Use(middlewares.CsrfMiddleware(publicOrigin, secureCookies))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", registerHandler)
		r.Post("/auth/login", loginHandler)
		r.Post("/auth/logout", logoutHandler)
		r.Get("/me", meHandler)
		r.Get("/csrf", csrfHandler)
		r.Get("/load", loadHandler)
		r.Post("/save", saveHandler)
		r.Post("/active", activeHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
