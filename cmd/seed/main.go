// Command seed creates the churches listed in a YAML manifest and grants
// their first members. Existing churches are matched by slug.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"church-admin/internal/config"
	"church-admin/internal/database"
	"church-admin/internal/provision"
	"church-admin/internal/repositories"
	"church-admin/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	path := flag.String("manifest", "db/seeds/churches.yaml", "path to the churches manifest")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(*path, cfg, logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(path string, cfg *config.Config, logger *slog.Logger) error {
	manifest, err := provision.LoadManifest(path)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, err = seed(ctx, db, manifest, logger)
	return err
}

func seed(ctx context.Context, db *database.DB, manifest *provision.Manifest, logger *slog.Logger) (*provision.Result, error) {
	churchRepo := repositories.NewChurchRepository(db.DB)
	membershipRepo := repositories.NewMembershipRepository(db.DB)
	auditService := services.NewAuditService(
		repositories.NewAuditLogRepository(db.DB),
		membershipRepo,
		services.WithLogger(logger),
	)

	res, err := provision.NewProvisioner(churchRepo, membershipRepo, auditService, logger).Apply(ctx, manifest)
	if err != nil {
		return nil, fmt.Errorf("provisioning failed: %w", err)
	}

	logger.Info("seed complete",
		"churches_created", res.ChurchesCreated,
		"churches_existing", res.ChurchesExisting,
		"members_upserted", res.MembersUpserted)
	return res, nil
}
