package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/syno-backup/internal/adapter"
	"github.com/MKhiriev/syno-backup/internal/archive"
	"github.com/MKhiriev/syno-backup/internal/config"
	"github.com/MKhiriev/syno-backup/internal/logger"
	"github.com/MKhiriev/syno-backup/internal/service"
	"github.com/MKhiriev/syno-backup/models"
	"github.com/google/uuid"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("syno-backup").WithRunID(uuid.NewString())

	cfg, err := config.GetBackupConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("config: error getting configs")
	}

	station := adapter.NewFileStationAdapter(cfg.Adapter, log)
	archiver := archive.NewArchiver(log)
	backup := service.NewBackupService(station, archiver, log)

	req := models.BackupRequest{
		Host:       cfg.NAS.Host,
		Port:       cfg.NAS.Port,
		Username:   cfg.NAS.Username,
		Password:   cfg.NAS.Password,
		ShareName:  cfg.NAS.ShareName,
		SourcePath: cfg.Backup.SourcePath,
	}

	if err = backup.Run(context.Background(), req); err != nil {
		log.Fatal().Err(err).Msg("backup run failed")
	}

	log.Info().Msg("backup run finished")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
