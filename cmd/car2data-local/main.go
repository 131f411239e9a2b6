package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dfmora/car2data/internal/common"
	"github.com/dfmora/car2data/internal/extraction/gemini"
	"github.com/dfmora/car2data/internal/pipeline"
	repo "github.com/dfmora/car2data/internal/repository"
	"github.com/dfmora/car2data/internal/storage"
	"github.com/google/uuid"
)

// car2data-local runs one PDF through the extraction pipeline against a
// local SQLite file, for working on extraction without a server:
//
//	GEMINI_API_KEY=... car2data-local -db car2data.db tarjeta.pdf
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		dbPath  = flag.String("db", "car2data.db", "sqlite database file")
		dataDir = flag.String("data", "./data", "storage directory")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "car2data-local [-db file] [-data dir] <pdf>")
		os.Exit(2)
	}
	pdfPath := flag.Arg(0)

	cfg := common.LoadConfig()
	if cfg.Extractor.APIKey == "" {
		logger.Error("GEMINI_API_KEY is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, err := repo.OpenSQLite("file:"+*dbPath+"?_pragma=foreign_keys(1)", logger)
	if err != nil {
		logger.Error("open sqlite", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}()

	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("migrate schema", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewStore(filepath.Join(*dataDir, "uploads"), filepath.Join(*dataDir, "generated_forms"), logger)
	if err != nil {
		logger.Error("prepare storage", "error", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(pdfPath)
	if err != nil {
		logger.Error("read pdf", "path", pdfPath, "error", err)
		os.Exit(1)
	}

	ownerID := uuid.New()
	path, hash, err := store.SaveUpload(ownerID, filepath.Base(pdfPath), data)
	if err != nil {
		logger.Error("store pdf", "error", err)
		os.Exit(1)
	}

	docsRepo := repo.NewDocumentRepository(entc, logger)
	doc, err := docsRepo.Create(ctx, &repo.CreateDocumentRequest{
		OwnerID:     ownerID,
		Name:        filepath.Base(pdfPath),
		SourcePath:  path,
		ContentHash: hash,
	})
	if err != nil {
		logger.Error("register document", "error", err)
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
		logger.Error("create extraction client", "error", err)
		os.Exit(1)
	}

	proc := pipeline.NewProcessor(logger, docsRepo, store, extractor)
	if err := proc.ProcessDocument(ctx, doc.ID); err != nil {
		logger.Error("process document", "document_id", doc.ID, "error", err)
		os.Exit(1)
	}

	final, err := docsRepo.GetByID(ctx, doc.ID)
	if err != nil {
		logger.Error("load result", "error", err)
		os.Exit(1)
	}

	logger.Info("document processed",
		"document_id", final.ID,
		"status", final.Status,
		"doc_type", final.DocType,
	)
	if len(final.ExtractedJSON) > 0 {
		os.Stdout.Write(final.ExtractedJSON)
		os.Stdout.Write([]byte("\n"))
	}
}
