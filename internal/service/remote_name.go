package service

import (
	"path/filepath"
	"strings"
	"time"
)

// remoteTimestampLayout renders local time as YYMMDD_HHMMSS, zero-padded,
// 24-hour clock.
const remoteTimestampLayout = "060102_150405"

// remoteName derives the name the archive is stored under on the NAS:
// the archive's base name with "_YYMMDD_HHMMSS" inserted before the
// extension, so "db.sqlite.zip" becomes "db.sqlite_260823_153012.zip".
// A name without an extension just gets the suffix appended. Uploading the
// same archive in two different seconds therefore never collides remotely,
// while the local archive path stays fixed.
func remoteName(archivePath string, now time.Time) string {
	base := filepath.Base(archivePath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	// Dotfiles like ".env" report themselves as all extension; treat the
	// whole name as the stem instead.
	if stem == "" {
		stem = ext
		ext = ""
	}

	return stem + "_" + now.Format(remoteTimestampLayout) + ext
}
