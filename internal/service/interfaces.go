// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service orchestrates one backup run: compress the source file,
// open a DSM session, resolve the target share, upload the archive under a
// timestamped name, and log out whether or not the transfer succeeded.
//
// Every failure is terminal for the run. Errors are wrapped with the name
// of the failing stage (archive / connect / auth / transfer) so the
// process boundary can report where the pipeline stopped.
package service

// Archiver produces the local zip that gets uploaded. Implemented by
// archive.Archiver.
type Archiver interface {
	// Compress writes sourcePath + ".zip" containing the single file at
	// sourcePath and returns the archive path.
	Compress(sourcePath string) (string, error)
}
