// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/syno-backup/internal/adapter"
	"github.com/MKhiriev/syno-backup/internal/archive"
	"github.com/MKhiriev/syno-backup/internal/logger"
	"github.com/MKhiriev/syno-backup/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStation is a hand-rolled [adapter.FileStation] that records the call
// sequence and captures what would have been uploaded.
type stubStation struct {
	connectErr error
	loginErr   error
	logoutErr  error
	listErr    error
	uploadErr  error

	shares []models.SharedFolder

	calls        []string
	uploadedPath string
	uploadedName string
	uploadedBody []byte
}

func (s *stubStation) Connect(_ context.Context, host string, port int) error {
	s.calls = append(s.calls, "connect")
	return s.connectErr
}

func (s *stubStation) Login(_ context.Context, account, password string) error {
	s.calls = append(s.calls, "login")
	return s.loginErr
}

func (s *stubStation) Logout(_ context.Context) error {
	s.calls = append(s.calls, "logout")
	return s.logoutErr
}

func (s *stubStation) ListShares(_ context.Context) ([]models.SharedFolder, error) {
	s.calls = append(s.calls, "list_share")
	return s.shares, s.listErr
}

func (s *stubStation) Upload(_ context.Context, sharePath, remoteName string, archive io.Reader) error {
	s.calls = append(s.calls, "upload")
	s.uploadedPath = sharePath
	s.uploadedName = remoteName
	body, err := io.ReadAll(archive)
	if err != nil {
		return err
	}
	s.uploadedBody = body
	return s.uploadErr
}

var fixedNow = time.Date(2026, 8, 23, 15, 30, 12, 0, time.Local)

func newTestService(station *stubStation) *BackupService {
	svc := NewBackupService(station, archive.NewArchiver(logger.Nop()), logger.Nop())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func testRequest(sourcePath string) models.BackupRequest {
	return models.BackupRequest{
		Host:       "diskstation.local",
		Port:       5001,
		Username:   "backup",
		Password:   "hunter2",
		ShareName:  "backups",
		SourcePath: sourcePath,
	}
}

// ── Run, happy path ─────────────────────────────────────────────────────────

func TestRun_Success(t *testing.T) {
	src := writeSource(t, "db.sqlite", "precious data")
	station := &stubStation{
		shares: []models.SharedFolder{
			{Name: "homes", Path: "/volume1/homes"},
			{Name: "backups", Path: "/volume1/backups"},
		},
	}

	err := newTestService(station).Run(context.Background(), testRequest(src))

	require.NoError(t, err)
	assert.Equal(t, []string{"connect", "login", "list_share", "upload", "logout"}, station.calls)
	assert.Equal(t, "/volume1/backups", station.uploadedPath)
	assert.Equal(t, "db.sqlite_260823_153012.zip", station.uploadedName)

	// the uploaded bytes are exactly the local archive
	localArchive, err := os.ReadFile(src + ".zip")
	require.NoError(t, err)
	assert.Equal(t, localArchive, station.uploadedBody)
}

func TestRun_ArchiveLeftOnDisk(t *testing.T) {
	src := writeSource(t, "notes.txt", "keep me")
	station := &stubStation{shares: []models.SharedFolder{{Name: "backups", Path: "/volume1/backups"}}}

	require.NoError(t, newTestService(station).Run(context.Background(), testRequest(src)))

	_, err := os.Stat(src + ".zip")
	assert.NoError(t, err, "archive must remain after a successful run")
}

// ── Run, failure stages ─────────────────────────────────────────────────────

func TestRun_MissingSource(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.txt")
	station := &stubStation{}

	err := newTestService(station).Run(context.Background(), testRequest(missing))

	require.Error(t, err)
	assert.ErrorIs(t, err, archive.ErrSourceFile)
	assert.Contains(t, err.Error(), "archive:")
	assert.Empty(t, station.calls, "no network activity before the archive exists")

	_, statErr := os.Stat(missing + ".zip")
	assert.True(t, os.IsNotExist(statErr), "no archive for a missing source")
}

func TestRun_ConnectFailure(t *testing.T) {
	src := writeSource(t, "db.sqlite", "data")
	station := &stubStation{connectErr: adapter.ErrConnection}

	err := newTestService(station).Run(context.Background(), testRequest(src))

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrConnection)
	assert.Contains(t, err.Error(), "connect:")
	assert.Equal(t, []string{"connect"}, station.calls)

	_, statErr := os.Stat(src + ".zip")
	assert.NoError(t, statErr, "archive survives a connect failure")
}

func TestRun_AuthFailure(t *testing.T) {
	src := writeSource(t, "db.sqlite", "data")
	station := &stubStation{loginErr: adapter.ErrAuthFailed}

	err := newTestService(station).Run(context.Background(), testRequest(src))

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrAuthFailed)
	assert.Contains(t, err.Error(), "auth:")
	// no session was opened, so there is nothing to log out of and
	// nothing must have been uploaded
	assert.Equal(t, []string{"connect", "login"}, station.calls)
}

func TestRun_ShareNotFound(t *testing.T) {
	src := writeSource(t, "db.sqlite", "data")
	station := &stubStation{shares: []models.SharedFolder{{Name: "homes", Path: "/volume1/homes"}}}

	err := newTestService(station).Run(context.Background(), testRequest(src))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShareNotFound)
	assert.Contains(t, err.Error(), "transfer:")
	assert.Equal(t, []string{"connect", "login", "list_share", "logout"}, station.calls)
}

func TestRun_UploadFailure(t *testing.T) {
	src := writeSource(t, "db.sqlite", "data")
	station := &stubStation{
		shares:    []models.SharedFolder{{Name: "backups", Path: "/volume1/backups"}},
		uploadErr: adapter.ErrUploadFailed,
	}

	err := newTestService(station).Run(context.Background(), testRequest(src))

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUploadFailed)
	assert.Contains(t, err.Error(), "transfer:")
	// the session is closed even though the transfer failed
	assert.Equal(t, []string{"connect", "login", "list_share", "upload", "logout"}, station.calls)
}

func TestRun_LogoutFailureDoesNotMaskSuccess(t *testing.T) {
	src := writeSource(t, "db.sqlite", "data")
	station := &stubStation{
		shares:    []models.SharedFolder{{Name: "backups", Path: "/volume1/backups"}},
		logoutErr: adapter.ErrConnection,
	}

	err := newTestService(station).Run(context.Background(), testRequest(src))

	assert.NoError(t, err, "a failed logout after a successful upload is only logged")
}
