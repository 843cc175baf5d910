package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/ipdledger/internal/admission"
	admissionStore "github.com/MrJamesThe3rd/ipdledger/internal/admission/store"
	"github.com/MrJamesThe3rd/ipdledger/internal/bed"
	bedStore "github.com/MrJamesThe3rd/ipdledger/internal/bed/store"
	"github.com/MrJamesThe3rd/ipdledger/internal/billing"
	"github.com/MrJamesThe3rd/ipdledger/internal/catalog"
	"github.com/MrJamesThe3rd/ipdledger/internal/config"
	"github.com/MrJamesThe3rd/ipdledger/internal/database"
	ipdHttp "github.com/MrJamesThe3rd/ipdledger/internal/http"
	admissionHandler "github.com/MrJamesThe3rd/ipdledger/internal/http/admission"
	bedHandler "github.com/MrJamesThe3rd/ipdledger/internal/http/bed"
	catalogHandler "github.com/MrJamesThe3rd/ipdledger/internal/http/catalog"
	ledgerHandler "github.com/MrJamesThe3rd/ipdledger/internal/http/ledger"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
	ledgerStore "github.com/MrJamesThe3rd/ipdledger/internal/ledger/store"
	patientStore "github.com/MrJamesThe3rd/ipdledger/internal/patient/store"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ipdledger",
		Short:         "In-patient admission billing ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	return rootCmd
}

func serveCmd() *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the billing API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), !skipMigrate)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not apply the schema on startup")

	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := setup()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			slog.Info("schema applied", "database", cfg.DB.Name)

			return nil
		},
	}
}

func setup() (*config.Config, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	return cfg, db, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	return catalog.LoadFile(path)
}

func runServer(ctx context.Context, migrate bool) error {
	cfg, db, err := setup()
	if err != nil {
		return err
	}
	defer db.Close()

	if migrate {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
	}

	cat, err := loadCatalog(cfg.Billing.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	var (
		ledgerService = ledger.NewService(ledgerStore.New(db))
		bedRegistry   = bed.NewRegistry(bedStore.New(db))
		patients      = patientStore.New(db)
		orderer       = catalog.NewOrderer(cat, ledgerService)
		engine        = billing.NewEngine(ledgerService)
	)

	controller := admission.NewController(admission.Deps{
		Repo:       admissionStore.New(db),
		Beds:       bedRegistry,
		Patients:   patients,
		Ledger:     ledgerService,
		Orders:     orderer,
		Reconciler: engine,
		Tx:         database.NewTransactor(db),
	}, admission.Policy{
		AllowPostDischargePayments: cfg.Billing.AllowPostDischargePayments,
	})

	router := ipdHttp.New(
		cfg.Server.CORSOrigins,
		admissionHandler.NewHandler(controller),
		bedHandler.NewHandler(bedRegistry),
		catalogHandler.NewHandler(cat),
		ledgerHandler.NewHandler(controller),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr, "catalog_items", len(cat.List()))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	slog.Info("server stopped")

	return nil
}
