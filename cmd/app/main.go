package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"aims/api"
	"aims/cmd"
	"aims/internal/adapters/out/kafka"
	"aims/internal/adapters/out/payment"
	"aims/internal/adapters/out/postgres"
	"aims/internal/adapters/out/redislock"
	"aims/internal/core/ports"
	"aims/internal/jobs"
	"aims/internal/pkg/keylock"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment")
	}
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// run returns only after its deferred cleanup has finished.
	if err := run(configs, logger); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(configs cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := cmd.SetupTracing("aims", configs.OtelStdout)
	if err != nil {
		return fmt.Errorf("error setting up tracing: %w", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	if err := postgres.AutoMigrate(gormDB); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	policy, err := cmd.LoadDeliveryPolicy(configs.DeliveryPolicyFile)
	if err != nil {
		return fmt.Errorf("error loading delivery policy: %w", err)
	}
	location, err := configs.Location()
	if err != nil {
		return fmt.Errorf("error loading timezone: %w", err)
	}

	locker, closeLocker, err := newLocker(configs, logger)
	if err != nil {
		return fmt.Errorf("error creating redis locker: %w", err)
	}
	defer closeLocker()

	publisher := kafka.NewOrderEventPublisher(configs.KafkaBrokers(), configs.KafkaOrderChangedTopic)
	defer func() { _ = publisher.Close() }()

	app := cmd.NewCompositionRoot(configs, gormDB, policy, location, cmd.Dependencies{
		Locker:    locker,
		Payment:   payment.NewSimulatedGateway(0),
		Publisher: publisher,
		Logger:    logger,
	})

	jobManager := jobs.NewJobManager(
		app.CreateRelayOutboxCommandHandler(),
		configs.OutboxRelaySchedule,
		configs.OutboxBatchSize,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		return fmt.Errorf("error starting jobs: %w", err)
	}
	defer jobManager.StopAll()

	srv, err := cmd.NewHTTPServer(app, api.OpenAPI, fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort), logger)
	if err != nil {
		return fmt.Errorf("error building HTTP server: %w", err)
	}
	return serve(ctx, srv, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT", "8080"),
		DBHost:                 goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:                 goDotEnvVariable("DB_PORT", "5432"),
		DBUser:                 goDotEnvVariable("DB_USER", ""),
		DBPassword:             goDotEnvVariable("DB_PASSWORD", ""),
		DBName:                 goDotEnvVariable("DB_NAME", ""),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE", "disable"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST", "localhost:9092"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		RedisAddr:              goDotEnvVariable("REDIS_ADDR", ""),
		DeliveryPolicyFile:     goDotEnvVariable("DELIVERY_POLICY_FILE", ""),
		Timezone:               goDotEnvVariable("TIMEZONE", "Asia/Ho_Chi_Minh"),
		OutboxRelaySchedule:    goDotEnvVariable("OUTBOX_RELAY_SCHEDULE", "*/2 * * * * *"),
	}

	var err error
	if config.PaymentTimeout, err = time.ParseDuration(goDotEnvVariable("PAYMENT_TIMEOUT", "10s")); err != nil {
		log.Fatalf("Error parsing PAYMENT_TIMEOUT: %v", err)
	}
	if config.OutboxBatchSize, err = strconv.Atoi(goDotEnvVariable("OUTBOX_BATCH_SIZE", "100")); err != nil {
		log.Fatalf("Error parsing OUTBOX_BATCH_SIZE: %v", err)
	}
	if config.OtelStdout, err = strconv.ParseBool(goDotEnvVariable("OTEL_STDOUT", "false")); err != nil {
		log.Fatalf("Error parsing OTEL_STDOUT: %v", err)
	}
	return config
}

func goDotEnvVariable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func newLocker(configs cmd.Config, logger *slog.Logger) (ports.Locker, func(), error) {
	if configs.RedisAddr == "" {
		return keylock.New(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	locker, err := redislock.NewLocker(client, redislock.Options{}, logger.With("component", "redislock"))
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return locker, func() { _ = client.Close() }, nil
}

// serve blocks until ctx is cancelled and the server has shut down, or the
// listener fails.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	<-shutdownDone
	return nil
}
