// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BackupRequest is the single unit of work for one run: which NAS to talk
// to, how to authenticate, and which local file goes into which share.
// It is built once from the merged configuration and lives only for the
// duration of the process; credentials are never persisted or logged.
type BackupRequest struct {
	// Host is the network address of the NAS, without port.
	Host string
	// Port is the TCP port of the FileStation web API (DSM).
	Port int
	// Username and Password authenticate the DSM session.
	Username string
	Password string
	// ShareName is the target shared folder on the NAS.
	ShareName string
	// SourcePath is the local file to back up. The archive is written
	// next to it as SourcePath + ".zip".
	SourcePath string
}
