package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-stock-service/docs"
	"github.com/sbilibin2017/gw-stock-service/internal/grpcserver"
	"github.com/sbilibin2017/gw-stock-service/internal/handlers"
	"github.com/sbilibin2017/gw-stock-service/internal/logger"
	"github.com/sbilibin2017/gw-stock-service/internal/middlewares"
	"github.com/sbilibin2017/gw-stock-service/internal/repositories"
	"github.com/sbilibin2017/gw-stock-service/internal/services"
	pb "github.com/sbilibin2017/gw-stock-service/pkg/stock"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Supported STORE_BACKEND values.
const (
	backendDynamoDB = "dynamodb"
	backendRedis    = "redis"
	backendPostgres = "postgres"
)

// config holds everything read from the environment.
type config struct {
	GRPCHost string
	GRPCPort string

	HTTPEnabled bool
	AppHost     string
	AppPort     string
	LogLevel    string

	StoreBackend    string
	StoreCollection string

	AWSRegion           string
	DynamoDBEndpoint    string
	DynamoDBCreateTable bool

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	TransactionCount     float64
	TransactionCreatedAt string // integer literal or "now"
}

// transactionStore is implemented by every repository backend.
type transactionStore interface {
	services.TransactionWriter
	services.TransactionReader
}

// @title gw-stock-service API
// @version 1.0.0
// @description Microservice recording stock purchase transactions
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
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
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the service configuration.
// A missing file is not an error.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// gRPC config
	cfg.GRPCHost = getEnv("GRPC_HOST", "localhost")
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")

	// HTTP gateway config
	if cfg.HTTPEnabled, err = strconv.ParseBool(getEnv("HTTP_ENABLED", "true")); err != nil {
		return
	}
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// Store config
	cfg.StoreBackend = strings.ToLower(getEnv("STORE_BACKEND", backendDynamoDB))
	switch cfg.StoreBackend {
	case backendDynamoDB, backendRedis, backendPostgres:
	default:
		err = fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
		return
	}
	cfg.StoreCollection = getEnv("STORE_COLLECTION", repositories.DefaultCollection)

	// DynamoDB config
	cfg.AWSRegion = getEnv("AWS_REGION", "us-east-1")
	cfg.DynamoDBEndpoint = getEnv("DYNAMODB_ENDPOINT", "")
	if cfg.DynamoDBCreateTable, err = strconv.ParseBool(getEnv("DYNAMODB_CREATE_TABLE", "false")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "stock-transactions")

	// Server-assigned transaction fields
	if cfg.TransactionCount, err = strconv.ParseFloat(getEnv("TRANSACTION_COUNT", "5000"), 64); err != nil {
		return
	}
	if math.IsNaN(cfg.TransactionCount) || math.IsInf(cfg.TransactionCount, 0) || cfg.TransactionCount < 0 {
		err = fmt.Errorf("TRANSACTION_COUNT must be a finite non-negative number, got %v", cfg.TransactionCount)
		return
	}
	cfg.TransactionCreatedAt = getEnv("TRANSACTION_CREATED_AT", "5000")
	if _, err = newClock(cfg.TransactionCreatedAt); err != nil {
		return
	}

	return
}

// newClock turns TRANSACTION_CREATED_AT into a created_at source.
func newClock(value string) (func() int64, error) {
	if strings.EqualFold(value, "now") {
		return services.UnixClock, nil
	}
	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("TRANSACTION_CREATED_AT must be an integer or \"now\": %w", err)
	}
	return services.FixedClock(ts), nil
}

// newStore connects to the configured backend. The returned func releases its resources.
func newStore(ctx context.Context, cfg config) (transactionStore, func(), error) {
	switch cfg.StoreBackend {
	case backendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("redis connection error: %w", err)
		}
		return repositories.NewTransactionRedisRepository(rdb, cfg.StoreCollection), func() { rdb.Close() }, nil

	case backendPostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres connection error: %w", err)
		}
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)

		repo := repositories.NewTransactionPostgresRepository(db, cfg.StoreCollection)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, func() { db.Close() }, nil

	default:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, nil, fmt.Errorf("load aws config: %w", err)
		}
		client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.DynamoDBEndpoint != "" {
				o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
			}
		})

		repo := repositories.NewTransactionDynamoDBRepository(client, cfg.StoreCollection)
		if cfg.DynamoDBCreateTable {
			if err := repo.EnsureTable(ctx, 2*time.Minute); err != nil {
				return nil, nil, err
			}
		}
		return repo, func() {}, nil
	}
}

// newRouter builds the HTTP gateway over the transaction service.
func newRouter(svc handlers.TransactionService, appHost, appPort string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/transactions", handlers.NewCreateTransactionHandler(svc))
		r.Get("/transactions", handlers.NewListTransactionsHandler(svc))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	return r
}

// run initializes the logger, the store, Kafka, the gRPC server and the HTTP gateway.
// It blocks until a shutdown signal or a server failure.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel, "gw-stock-service", "version", buildVersion); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Connect to the store
	logger.Log.Infow("connecting to store", "backend", cfg.StoreBackend, "collection", cfg.StoreCollection)
	store, closeStore, err := newStore(ctxShutdown, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
		defer kw.Close()
		kafkaWriter = kw
		logger.Log.Infow("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	clock, err := newClock(cfg.TransactionCreatedAt)
	if err != nil {
		return err
	}

	// Initialize services
	svc := services.NewTransactionService(store, store, kafkaWriter,
		services.WithCount(cfg.TransactionCount),
		services.WithClock(clock),
	)

	// gRPC server
	grpcAddr := fmt.Sprintf("%s:%s", cfg.GRPCHost, cfg.GRPCPort)
	gs := grpcserver.New(grpcAddr, grpc.ChainUnaryInterceptor(middlewares.UnaryLoggingInterceptor))
	handlers.RegisterStockServer(gs.Server, handlers.NewStockServer(svc))
	gs.SetServing("")
	gs.SetServing(pb.StockService_ServiceDesc.ServiceName)

	errChan := make(chan error, 2)

	go func() {
		logger.Log.Infof("gRPC server listening on %s", grpcAddr)
		if err := gs.Start(); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	// HTTP gateway
	var srv *http.Server
	if cfg.HTTPEnabled {
		srv = &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
			Handler: newRouter(svc, cfg.AppHost, cfg.AppPort),
		}
		go func() {
			logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- fmt.Errorf("HTTP server failed: %w", err)
			}
		}()
	}

	var serveErr error
	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr = <-errChan:
		logger.Log.Errorw("server failed, shutting down", "error", serveErr)
	}

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
		}
	}
	gs.Stop()

	logger.Log.Info("servers stopped")
	return serveErr
}
