// Package config provides configuration loading, merging, and validation
// facilities for syno-backup.
//
// Configuration is assembled from two sources (earlier sources win for
// non-zero fields):
//  1. Environment variables
//  2. config.json next to the executable (path overridable via CONFIG)
//
// The binary itself takes no flags; an external job runner is expected to
// invoke it as-is, so everything an operator can tune lives in the JSON
// file, with env variables as the override mechanism for wrappers and
// containers. The main entry point is [GetBackupConfig].
package config
