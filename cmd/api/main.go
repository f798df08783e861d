package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/sebok-dev/sebok/internal/config"
	"github.com/sebok-dev/sebok/internal/database"
	sebokHttp "github.com/sebok-dev/sebok/internal/http"
	importHandler "github.com/sebok-dev/sebok/internal/http/importxlsx"
	txHandler "github.com/sebok-dev/sebok/internal/http/transaction"
	"github.com/sebok-dev/sebok/internal/importer"
	"github.com/sebok-dev/sebok/internal/importer/seb"
	"github.com/sebok-dev/sebok/internal/transaction"
	txStore "github.com/sebok-dev/sebok/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	brief, err := config.ParseBool(cfg.SEB.Brief)
	if err != nil {
		slog.Error("invalid SEB_BRIEF setting", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	importService, err := importer.NewService(seb.Options{
		Locale: cfg.SEB.Locale,
		Brief:  brief,
	})
	if err != nil {
		slog.Error("failed to build importers", "error", err)
		os.Exit(1)
	}

	transactionService := transaction.NewService(txStore.New(db))

	router := sebokHttp.New(
		importHandler.NewHandler(importService, transactionService),
		txHandler.NewHandler(transactionService),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
