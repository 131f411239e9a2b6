package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	car2datapb "github.com/dfmora/car2data/gen/proto/car2data/v1"
	"github.com/dfmora/car2data/internal/async"
	"github.com/dfmora/car2data/internal/common"
	"github.com/dfmora/car2data/internal/extraction/gemini"
	"github.com/dfmora/car2data/internal/pipeline"
	"github.com/dfmora/car2data/internal/render"
	repo "github.com/dfmora/car2data/internal/repository"
	svc "github.com/dfmora/car2data/internal/server"
	"github.com/dfmora/car2data/internal/storage"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewStore(cfg.Paths.UploadsDir, cfg.Paths.GeneratedFormsDir, logger)
	if err != nil {
		logger.Error("failed to prepare storage directories", "error", err)
		os.Exit(1)
	}

	extractor, err := gemini.NewClient(ctx, gemini.Config{
		Model:          cfg.Extractor.Model,
		APIKey:         cfg.Extractor.APIKey,
		AttemptTimeout: cfg.Extractor.AttemptTimeout,
		MaxAttempts:    cfg.Extractor.MaxAttempts,
		RetryBackoff:   cfg.Extractor.RetryBackoff,
	}, logger)
	if err != nil {
		logger.Error("failed to create extraction client", "error", err)
		os.Exit(1)
	}
	if err := extractor.TestConnection(ctx); err != nil {
		// the server still starts; uploads will fail over to the error
		// status until connectivity returns
		logger.Warn("extraction model unreachable at startup", "error", err)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	vehiclesRepo := repo.NewVehicleRepository(entc, logger)
	personsRepo := repo.NewPersonRepository(entc, logger)
	formsRepo := repo.NewGeneratedFormRepository(entc, logger)

	processor := pipeline.NewProcessor(logger, docsRepo, store, extractor)
	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)

	renderer := render.NewRenderer(cfg.Paths.TemplatesDir, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	documentsService := svc.NewDocumentsService(docsRepo, store, queue, extractor, logger)
	car2datapb.RegisterDocumentsServiceServer(grpcServer, documentsService)
	formsService := svc.NewFormsService(docsRepo, formsRepo, vehiclesRepo, personsRepo, store, renderer, logger)
	car2datapb.RegisterFormsServiceServer(grpcServer, formsService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("car2datad listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
