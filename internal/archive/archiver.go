// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package archive produces the zip container that gets uploaded to the
// NAS. One source file in, one sibling .zip out; the archive is left on
// disk after the run so the last local copy is always inspectable.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/syno-backup/internal/logger"
)

// Archiver compresses a single local file into a zip archive placed next
// to it.
type Archiver struct {
	logger *logger.Logger
}

// NewArchiver constructs an Archiver that logs through log.
func NewArchiver(log *logger.Logger) *Archiver {
	return &Archiver{logger: log}
}

// Compress writes sourcePath + ".zip" containing exactly the file at
// sourcePath, stored under its base name with deflate compression, and
// returns the archive path. An existing archive from a previous run is
// overwritten.
//
// Returns [ErrSourceFile] (wrapped) if the source does not exist, cannot
// be opened, or is a directory, and [ErrArchiveWrite] (wrapped) if the
// destination cannot be created or written.
func (a *Archiver) Compress(sourcePath string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceFile, err)
	}
	defer src.Close()

	fi, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceFile, err)
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrSourceFile, sourcePath)
	}

	archivePath := sourcePath + ".zip"
	out, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrArchiveWrite, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	header, err := zip.FileInfoHeader(fi)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrArchiveWrite, err)
	}
	header.Name = filepath.Base(sourcePath)
	header.Method = zip.Deflate

	entry, err := zw.CreateHeader(header)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrArchiveWrite, err)
	}

	written, err := io.Copy(entry, src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrArchiveWrite, err)
	}

	if err = zw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrArchiveWrite, err)
	}
	if err = out.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrArchiveWrite, err)
	}

	a.logger.Debug().
		Str("source", sourcePath).
		Str("archive", archivePath).
		Int64("bytes", written).
		Msg("source file compressed")

	return archivePath, nil
}
