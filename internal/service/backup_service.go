// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/syno-backup/internal/adapter"
	"github.com/MKhiriev/syno-backup/internal/logger"
	"github.com/MKhiriev/syno-backup/models"
)

// BackupService runs the archive-and-upload pipeline for one
// [models.BackupRequest].
type BackupService struct {
	station  adapter.FileStation
	archiver Archiver
	logger   *logger.Logger

	// now supplies the timestamp embedded in the remote file name;
	// swapped out in tests.
	now func() time.Time
}

// NewBackupService wires the FileStation transport and the archiver into
// a ready-to-run service.
func NewBackupService(station adapter.FileStation, archiver Archiver, log *logger.Logger) *BackupService {
	return &BackupService{
		station:  station,
		archiver: archiver,
		logger:   log,
		now:      time.Now,
	}
}

// Run executes one backup end to end. The pipeline is strictly linear:
// compress, connect, login, resolve share, upload, logout. There are no
// retries; the first failure aborts the run with a stage-tagged error.
//
// The local archive is written before any network activity and is left on
// disk no matter how the rest of the run ends, so an auth or transfer
// failure still leaves a fresh local copy behind.
func (s *BackupService) Run(ctx context.Context, req models.BackupRequest) error {
	archivePath, err := s.archiver.Compress(req.SourcePath)
	if err != nil {
		return fmt.Errorf("archive: %w", err)
	}

	if err = s.station.Connect(ctx, req.Host, req.Port); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	if err = s.station.Login(ctx, req.Username, req.Password); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	defer func() {
		// The session is closed even when the upload fails. The parent
		// context may already be cancelled at that point, hence
		// WithoutCancel.
		if logoutErr := s.station.Logout(context.WithoutCancel(ctx)); logoutErr != nil {
			s.logger.Warn().Err(logoutErr).Msg("file station logout failed")
		}
	}()

	share, err := s.findShare(ctx, req.ShareName)
	if err != nil {
		return fmt.Errorf("transfer: %w", err)
	}

	name := remoteName(archivePath, s.now())

	archiveFile, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("transfer: open archive: %w", err)
	}
	defer archiveFile.Close()

	if err = s.station.Upload(ctx, share.Path, name, archiveFile); err != nil {
		return fmt.Errorf("transfer: %w", err)
	}

	s.logger.Info().
		Str("archive", archivePath).
		Str("share", share.Name).
		Str("remote_name", name).
		Msg("backup uploaded")

	return nil
}

// findShare resolves the configured share name to the shared folder
// descriptor DSM reports, including the absolute path uploads are
// addressed to.
func (s *BackupService) findShare(ctx context.Context, name string) (models.SharedFolder, error) {
	shares, err := s.station.ListShares(ctx)
	if err != nil {
		return models.SharedFolder{}, err
	}

	for _, share := range shares {
		if share.Name == name {
			return share, nil
		}
	}

	return models.SharedFolder{}, fmt.Errorf("%w: %q", ErrShareNotFound, name)
}
