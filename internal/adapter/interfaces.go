// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the Synology
// DSM web API (FileStation).
//
// The primary abstraction is [FileStation], which decouples the backup
// service from the HTTP wire format. The shipped implementation
// ([NewFileStationAdapter]) uses resty with a cookie jar: DSM issues the
// session as a cookie on login (format=cookie) and expects it back on every
// FileStation call.
//
// Error values defined in errors.go are mapped from Synology numeric error
// codes by the mapper functions in errors_mapper.go so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrAuthFailed]
// for rejected credentials, [ErrConnection] for an unreachable NAS).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/syno-backup/models"
)

// FileStation defines the DSM operations the backup run needs, in the
// order it needs them. Implementations are responsible for session cookie
// management and for mapping Synology error codes to the sentinel values
// defined in this package.
type FileStation interface {
	// Connect points the adapter at host:port and queries SYNO.API.Info
	// for the cgi paths and supported version ranges of the APIs used by
	// the remaining methods. It must be called before any other method.
	// Returns [ErrConnection] (wrapped) if the NAS is unreachable and
	// [ErrAPIUnavailable] if a required API or version is not offered.
	Connect(ctx context.Context, host string, port int) error

	// Login opens a DSM session with the given account credentials.
	// The session cookie is stored in the adapter's cookie jar. Returns
	// [ErrAuthFailed] (wrapped) when DSM rejects the credentials.
	Login(ctx context.Context, account, password string) error

	// Logout closes the DSM session. It is safe to call after a failed
	// upload; the run always logs out once login has succeeded.
	Logout(ctx context.Context) error

	// ListShares returns all shared folders visible to the session,
	// including the absolute path uploads must be addressed to.
	ListShares(ctx context.Context) ([]models.SharedFolder, error)

	// Upload streams archive into the folder at sharePath under
	// remoteName, creating parent folders and overwriting an existing
	// file of the same name. Returns [ErrUploadFailed] (wrapped) when
	// DSM rejects the write (quota, permissions, read-only file system).
	Upload(ctx context.Context, sharePath, remoteName string, archive io.Reader) error
}
