package app

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"

	"akorfa/internal/archive"
	"akorfa/internal/config"
	"akorfa/internal/repository/assessment"
	"akorfa/internal/repository/history"
)

type appStores struct {
	assessment assessment.Store
	history    history.Store
	archiver   archive.Archiver
}

func initStores(cfg *config.Config) (*appStores, error) {
	archiver, err := chooseArchiver(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseURL != "" {
		// Both stores share one pool.
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open db: %w", err)
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping db: %w", err)
		}
		assessmentStore, err := assessment.NewPostgresStoreDB(db)
		if err != nil {
			return nil, fmt.Errorf("failed to init assessment store: %w", err)
		}
		log.Printf("stores: postgres")
		return &appStores{
			assessment: assessmentStore,
			history:    history.NewPostgresStoreDB(db),
			archiver:   archiver,
		}, nil
	}

	log.Printf("stores: in-memory (DATABASE_URL is unset)")
	return &appStores{
		assessment: assessment.NewMemoryStore(),
		history:    history.NewMemoryStore(),
		archiver:   archiver,
	}, nil
}

func chooseArchiver(cfg *config.Config) (archive.Archiver, error) {
	if !cfg.Archive.Enabled || !cfg.Archive.CanUseS3() {
		return archive.Nop{}, nil
	}
	s3, err := archive.NewS3Archive(archive.S3Config{
		Endpoint:  cfg.Archive.Endpoint,
		Region:    cfg.Archive.Region,
		AccessKey: cfg.Archive.AccessKey,
		SecretKey: cfg.Archive.SecretKey,
		Bucket:    cfg.Archive.Bucket,
		UseSSL:    cfg.Archive.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transcript archive: %w", err)
	}
	log.Printf("transcript archive: s3 bucket=%s endpoint=%s", cfg.Archive.Bucket, cfg.Archive.Endpoint)
	return s3, nil
}
