package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockpulse-backend/internal/archive"
	"github.com/goodnatureofminers/blockpulse-backend/internal/ethrpc"
	"github.com/goodnatureofminers/blockpulse-backend/internal/ingest"
	"github.com/goodnatureofminers/blockpulse-backend/internal/metrics"
	"github.com/goodnatureofminers/blockpulse-backend/internal/publisher"
	"github.com/goodnatureofminers/blockpulse-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockpulse-backend/internal/repository/redis"
	"github.com/goodnatureofminers/blockpulse-backend/internal/snapshot"
	"github.com/goodnatureofminers/blockpulse-backend/internal/stats"
	"github.com/goodnatureofminers/blockpulse-backend/internal/transport"
	"github.com/goodnatureofminers/blockpulse-backend/pkg/batcher"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	HTTPAddr string `long:"http-addr" env:"EXPLORER_HTTP_ADDR" description:"HTTP listen address" default:":4000"`
	GRPCAddr string `long:"grpc-addr" env:"EXPLORER_GRPC_ADDR" description:"gRPC health listen address" default:":4001"`
	Timezone string `long:"timezone" env:"EXPLORER_TIMEZONE" description:"zone used for history chart labels" default:"Local"`

	RPCURL     string `long:"rpc-url" env:"EXPLORER_RPC_URL" description:"upstream EVM JSON-RPC URL; proxy routes are disabled when empty"`
	RPCNetwork string `long:"rpc-network" env:"EXPLORER_RPC_NETWORK" description:"network label for rpc metrics" default:"monad-testnet"`

	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"EXPLORER_CLICKHOUSE_DSN" description:"ClickHouse DSN; archive is disabled when empty"`
	ArchiveBatchSize     int           `long:"archive-batch-size" env:"EXPLORER_ARCHIVE_BATCH_SIZE" description:"blocks per archive insert" default:"50"`
	ArchiveFlushInterval time.Duration `long:"archive-flush-interval" env:"EXPLORER_ARCHIVE_FLUSH_INTERVAL" description:"max delay before a partial archive batch is written" default:"2s"`
	ArchiveRPS           int           `long:"archive-rps" env:"EXPLORER_ARCHIVE_RPS" description:"max archive flushes per second, 0 for unlimited" default:"10"`

	RedisAddr        string        `long:"redis-addr" env:"EXPLORER_REDIS_ADDR" description:"Redis address; snapshots are disabled when empty"`
	RedisPassword    string        `long:"redis-password" env:"EXPLORER_REDIS_PASSWORD" description:"Redis password"`
	RedisDB          int           `long:"redis-db" env:"EXPLORER_REDIS_DB" description:"Redis database" default:"0"`
	SnapshotInterval time.Duration `long:"snapshot-interval" env:"EXPLORER_SNAPSHOT_INTERVAL" description:"stats snapshot period" default:"30s"`

	KafkaBrokers string `long:"kafka-brokers" env:"EXPLORER_KAFKA_BROKERS" description:"comma separated Kafka brokers; publishing is disabled when empty"`
	KafkaTopic   string `long:"kafka-topic" env:"EXPLORER_KAFKA_TOPIC" description:"Kafka topic for block summaries" default:"blockpulse.stat-blocks"`

	SinkTimeout time.Duration `long:"sink-timeout" env:"EXPLORER_SINK_TIMEOUT" description:"max time a webhook waits on the archive or publisher" default:"2s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env", zap.Error(err))
	}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("explorer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	buffer := stats.NewBuffer(
		stats.WithLocation(loc),
		stats.WithLogger(logger.Named("stats")),
		stats.WithMetrics(metrics.NewStatsBuffer()),
	)

	g, ctx := errgroup.WithContext(ctx)

	feed := transport.NewFeed(metrics.NewFeed(), logger.Named("feed"))
	defer feed.Close()
	opts := []ingest.Option{ingest.WithBroadcaster(feed), ingest.WithSinkTimeout(cfg.SinkTimeout)}

	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init clickhouse repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		if err := repo.Ping(ctx); err != nil {
			return fmt.Errorf("ping clickhouse: %w", err)
		}

		writer := archive.NewWriter(logger.Named("archive"), repo, batcher.Config{
			Size:     cfg.ArchiveBatchSize,
			Interval: cfg.ArchiveFlushInterval,
			RPS:      cfg.ArchiveRPS,
		}, time.Now)
		writer.Start(ctx)
		defer writer.Stop()
		opts = append(opts, ingest.WithArchive(writer))
	}

	if cfg.KafkaBrokers != "" {
		producer, err := publisher.NewKafka(splitList(cfg.KafkaBrokers), cfg.KafkaTopic, metrics.NewPublisher(cfg.KafkaTopic))
		if err != nil {
			return fmt.Errorf("init kafka publisher: %w", err)
		}
		defer func() {
			_ = producer.Close()
		}()
		opts = append(opts, ingest.WithPublisher(producer))
	}

	if cfg.RedisAddr != "" {
		store := redis.NewSnapshotStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, metrics.NewSnapshotStore())
		defer func() {
			_ = store.Close()
		}()
		if err := store.Ping(ctx); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}

		snapshots, err := snapshot.NewService(buffer, store, cfg.SnapshotInterval, logger.Named("snapshot"))
		if err != nil {
			return err
		}
		if err := snapshots.Restore(ctx); err != nil {
			logger.Warn("stats snapshot not restored", zap.Error(err))
		}
		g.Go(func() error {
			return snapshots.Run(ctx)
		})
	}

	handlerOpts := []transport.HandlerOption{transport.WithFeed(feed)}
	if cfg.RPCURL != "" {
		upstream, err := ethrpc.Dial(ctx, cfg.RPCURL, metrics.NewRPCClient(cfg.RPCNetwork))
		if err != nil {
			return fmt.Errorf("dial upstream rpc: %w", err)
		}
		defer upstream.Close()
		handlerOpts = append(handlerOpts, transport.WithUpstream(upstream))
	}

	svc, err := ingest.NewService(buffer, metrics.NewIngest(), logger.Named("ingest"), opts...)
	if err != nil {
		return err
	}
	handler, err := transport.NewExplorerHandler(svc, buffer, logger.Named("http"), handlerOpts...)
	if err != nil {
		return err
	}

	gw := gwruntime.NewServeMux()
	if err := handler.Register(gw); err != nil {
		return fmt.Errorf("register routes: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	g.Go(func() error {
		logger.Info("starting HTTP server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	grpcServer, health := transport.NewGRPCServer(logger.Named("grpc"))
	socket, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	g.Go(func() error {
		logger.Info("starting gRPC server", zap.String("addr", cfg.GRPCAddr))
		return grpcServer.Serve(socket)
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		health.Shutdown()
		grpcServer.GracefulStop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
