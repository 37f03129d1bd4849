package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hospital-triage/internal/config"
	"hospital-triage/internal/db"
	httpserver "hospital-triage/internal/http"
	"hospital-triage/internal/llm"
	"hospital-triage/internal/triage"

	_ "github.com/lib/pq"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "triage-server",
		Short: "Symptom-to-specialization triage API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the triage API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetBool("seed")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dbConn, err := openDB(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer dbConn.Close()

			ctx := context.Background()
			if err := db.Migrate(ctx, dbConn); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			if seed {
				if err := db.SeedHospitals(ctx, dbConn); err != nil {
					return fmt.Errorf("seeding failed: %w", err)
				}
			}
			fmt.Println("schema applied")
			return nil
		},
	}
	cmd.Flags().Bool("seed", false, "Insert demo hospital records")
	return cmd
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	dbConn, err := openDB(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(context.Background(), dbConn); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	repo := db.NewRepository(dbConn)
	classifier := llm.NewOpenAIClassifier(cfg.OpenAIAPIKey, cfg.ClassifyModel)
	svc := triage.NewService(classifier, repo, cfg.TopK)

	e := httpserver.NewServer(svc, dbConn, logger)
	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("listening")
	return e.Start(addr)
}

// openDB opens and verifies a Postgres connection.
func openDB(url string) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbConn.PingContext(ctx); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return dbConn, nil
}
